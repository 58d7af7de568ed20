package events

// SpaceCreated is emitted when a new space is created.
type SpaceCreated struct {
	DomainEvent
	SpaceID    string `json:"space_id"`
	SpaceName  string `json:"space_name"`
	OwnerID    string `json:"owner_id"`
	Visibility string `json:"visibility"`
}

func NewSpaceCreated(spaceID, tenantID, spaceName, ownerID, visibility string) (SpaceCreated, error) {
	op := "events.new_space_created"
	base, err := newDomainEvent("SpaceCreated", spaceID, tenantID)
	if err != nil {
		return SpaceCreated{}, err
	}
	if err := requireNonEmpty(op, "space_id", spaceID); err != nil {
		return SpaceCreated{}, err
	}
	if err := requireBounded(op, "space_name", spaceName, 200); err != nil {
		return SpaceCreated{}, err
	}
	if err := requireNonEmpty(op, "owner_id", ownerID); err != nil {
		return SpaceCreated{}, err
	}
	if err := requireNonEmpty(op, "visibility", visibility); err != nil {
		return SpaceCreated{}, err
	}
	return SpaceCreated{
		DomainEvent: base,
		SpaceID:     spaceID,
		SpaceName:   spaceName,
		OwnerID:     ownerID,
		Visibility:  visibility,
	}, nil
}

// DocumentAdded is emitted when a document is added to a space.
type DocumentAdded struct {
	DomainEvent
	SpaceID      string `json:"space_id"`
	DocumentID   string `json:"document_id"`
	DocumentName string `json:"document_name"`
	DocumentType string `json:"document_type"`
	SizeBytes    int64  `json:"size_bytes"`
	UploadedBy   string `json:"uploaded_by"`
}

func NewDocumentAdded(spaceID, tenantID, documentID, documentName, documentType string, sizeBytes int64, uploadedBy string) (DocumentAdded, error) {
	op := "events.new_document_added"
	base, err := newDomainEvent("DocumentAdded", spaceID, tenantID)
	if err != nil {
		return DocumentAdded{}, err
	}
	if err := requireNonEmpty(op, "space_id", spaceID); err != nil {
		return DocumentAdded{}, err
	}
	if err := requireNonEmpty(op, "document_id", documentID); err != nil {
		return DocumentAdded{}, err
	}
	if err := requireBounded(op, "document_name", documentName, 255); err != nil {
		return DocumentAdded{}, err
	}
	if err := requireNonEmpty(op, "document_type", documentType); err != nil {
		return DocumentAdded{}, err
	}
	if err := requirePositive64(op, "size_bytes", sizeBytes); err != nil {
		return DocumentAdded{}, err
	}
	if err := requireNonEmpty(op, "uploaded_by", uploadedBy); err != nil {
		return DocumentAdded{}, err
	}
	return DocumentAdded{
		DomainEvent:  base,
		SpaceID:      spaceID,
		DocumentID:   documentID,
		DocumentName: documentName,
		DocumentType: documentType,
		SizeBytes:    sizeBytes,
		UploadedBy:   uploadedBy,
	}, nil
}

// MemberAdded is emitted when a member is added to a space.
type MemberAdded struct {
	DomainEvent
	SpaceID string `json:"space_id"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	AddedBy string `json:"added_by"`
}

func NewMemberAdded(spaceID, tenantID, userID, role, addedBy string) (MemberAdded, error) {
	op := "events.new_member_added"
	base, err := newDomainEvent("MemberAdded", spaceID, tenantID)
	if err != nil {
		return MemberAdded{}, err
	}
	if err := requireNonEmpty(op, "space_id", spaceID); err != nil {
		return MemberAdded{}, err
	}
	if err := requireNonEmpty(op, "user_id", userID); err != nil {
		return MemberAdded{}, err
	}
	if err := requireNonEmpty(op, "role", role); err != nil {
		return MemberAdded{}, err
	}
	if err := requireNonEmpty(op, "added_by", addedBy); err != nil {
		return MemberAdded{}, err
	}
	return MemberAdded{
		DomainEvent: base,
		SpaceID:     spaceID,
		UserID:      userID,
		Role:        role,
		AddedBy:     addedBy,
	}, nil
}
