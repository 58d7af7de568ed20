package spaces

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
	"github.com/evasuite/eva-core/internal/domain/events"
)

type SpaceVisibility string

const (
	SpaceVisibilityPrivate SpaceVisibility = "private" // only owner
	SpaceVisibilityShared  SpaceVisibility = "shared"  // owner + explicit members
	SpaceVisibilityPublic  SpaceVisibility = "public"  // all users in tenant
)

func (v SpaceVisibility) valid() bool {
	switch v {
	case SpaceVisibilityPrivate, SpaceVisibilityShared, SpaceVisibilityPublic:
		return true
	}
	return false
}

type SpaceStatus string

const (
	SpaceStatusActive   SpaceStatus = "active"
	SpaceStatusArchived SpaceStatus = "archived"
)

type MemberRole string

const (
	MemberRoleViewer      MemberRole = "viewer"
	MemberRoleContributor MemberRole = "contributor"
	MemberRoleOwner       MemberRole = "owner"
)

func (r MemberRole) valid() bool {
	switch r {
	case MemberRoleViewer, MemberRoleContributor, MemberRoleOwner:
		return true
	}
	return false
}

// SpaceMember is a user granted access to a space with a specific role.
type SpaceMember struct {
	UserID  uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	Role    MemberRole `gorm:"column:role;not null;default:'viewer'" json:"role"`
	AddedAt time.Time  `gorm:"column:added_at;not null" json:"added_at"`
	AddedBy uuid.UUID  `gorm:"type:uuid;not null" json:"added_by"`
}

// Space is the workspace aggregate: a container for documents and
// conversations owned by one user within one tenant. It tracks child
// content by counters, not containment; children are separate aggregates
// linked by id + tenant id.
type Space struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name              string          `gorm:"column:name;not null" json:"name"`
	Description       string          `gorm:"column:description" json:"description"`
	Visibility        SpaceVisibility `gorm:"column:visibility;not null;default:'private'" json:"visibility"`
	Status            SpaceStatus     `gorm:"column:status;not null;default:'active'" json:"status"`
	OwnerID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Members           []SpaceMember   `gorm:"serializer:json" json:"members"`
	DocumentCount     int             `gorm:"column:document_count;not null;default:0" json:"document_count"`
	ConversationCount int             `gorm:"column:conversation_count;not null;default:0" json:"conversation_count"`
	TotalSizeBytes    int64           `gorm:"column:total_size_bytes;not null;default:0" json:"total_size_bytes"`
	CreatedAt         time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null;default:now()" json:"updated_at"`
	LastActivityAt    time.Time       `gorm:"column:last_activity_at;not null" json:"last_activity_at"`
	Tags              []string        `gorm:"serializer:json" json:"tags"`

	// pending domain events, owned by the space until drained
	events []events.Event
}

func (Space) TableName() string { return "space" }

type NewSpaceParams struct {
	TenantID    uuid.UUID
	Name        string
	Description string
	Visibility  SpaceVisibility // defaults to private
	OwnerID     uuid.UUID
	Members     []SpaceMember
	Tags        []string
}

func NewSpace(p NewSpaceParams) (*Space, error) {
	op := "spaces.new_space"
	if p.TenantID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "tenant_id is required")
	}
	name := strings.TrimSpace(p.Name)
	if name == "" || len(name) > 200 {
		return nil, aggregates.ValidationError(op, "name must be 1-200 characters")
	}
	if len(p.Description) > 2000 {
		return nil, aggregates.ValidationError(op, "description must be at most 2000 characters")
	}
	visibility := p.Visibility
	if visibility == "" {
		visibility = SpaceVisibilityPrivate
	}
	if !visibility.valid() {
		return nil, aggregates.ValidationError(op, fmt.Sprintf("unknown visibility %q", visibility))
	}
	if p.OwnerID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "owner_id is required")
	}
	if err := validateMembers(p.Members); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Space{
		ID:             uuid.New(),
		TenantID:       p.TenantID,
		Name:           name,
		Description:    p.Description,
		Visibility:     visibility,
		Status:         SpaceStatusActive,
		OwnerID:        p.OwnerID,
		Members:        append([]SpaceMember(nil), p.Members...),
		CreatedAt:      now,
		UpdatedAt:      now,
		LastActivityAt: now,
		Tags:           append([]string(nil), p.Tags...),
	}, nil
}

func validateMembers(members []SpaceMember) error {
	seen := make(map[uuid.UUID]struct{}, len(members))
	for _, m := range members {
		if _, dup := seen[m.UserID]; dup {
			return aggregates.ConflictError("spaces.validate_members", fmt.Sprintf("duplicate member %s", m.UserID))
		}
		seen[m.UserID] = struct{}{}
	}
	return nil
}

// HasMember reports whether the user is the owner or an explicit member.
func (s *Space) HasMember(userID uuid.UUID) bool {
	if userID == s.OwnerID {
		return true
	}
	for _, m := range s.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// MemberRole resolves the user's role: the owner is always "owner",
// members carry their stored role, everyone else has none.
func (s *Space) MemberRole(userID uuid.UUID) (MemberRole, bool) {
	if userID == s.OwnerID {
		return MemberRoleOwner, true
	}
	for _, m := range s.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// CanAddDocument is true for owner and contributor roles.
func (s *Space) CanAddDocument(userID uuid.UUID) bool {
	role, ok := s.MemberRole(userID)
	if !ok {
		return false
	}
	return role == MemberRoleOwner || role == MemberRoleContributor
}

// AddMember appends a member. Duplicates are rejected; the owner cannot
// be added as an explicit member.
func (s *Space) AddMember(userID uuid.UUID, role MemberRole, addedBy uuid.UUID) error {
	op := "spaces.add_member"
	if userID == uuid.Nil {
		return aggregates.ValidationError(op, "user_id is required")
	}
	if role == "" {
		role = MemberRoleViewer
	}
	if !role.valid() {
		return aggregates.ValidationError(op, fmt.Sprintf("unknown member role %q", role))
	}
	if s.HasMember(userID) {
		return aggregates.ConflictError(op, fmt.Sprintf("duplicate member %s", userID))
	}
	s.Members = append(s.Members, SpaceMember{
		UserID:  userID,
		Role:    role,
		AddedAt: time.Now().UTC(),
		AddedBy: addedBy,
	})
	s.touch()
	return nil
}

// AddDocument records an added document in the space counters. It does
// not check permission; callers gate on CanAddDocument first.
func (s *Space) AddDocument(documentID uuid.UUID, sizeBytes int64) {
	_ = documentID // counted by reference only
	s.DocumentCount++
	s.TotalSizeBytes += sizeBytes
	s.touch()
}

// AddConversation records an added conversation in the space counters.
func (s *Space) AddConversation() {
	s.ConversationCount++
	s.touch()
}

func (s *Space) Archive() {
	s.Status = SpaceStatusArchived
	s.touch()
}

func (s *Space) touch() {
	now := time.Now().UTC()
	s.LastActivityAt = now
	s.UpdatedAt = now
}

// EmitSpaceCreated buffers a SpaceCreated event built from current state.
func (s *Space) EmitSpaceCreated() error {
	ev, err := events.NewSpaceCreated(s.ID.String(), s.TenantID.String(), s.Name, s.OwnerID.String(), string(s.Visibility))
	if err != nil {
		return err
	}
	s.events = append(s.events, ev)
	return nil
}

// EmitDocumentAdded buffers a DocumentAdded event.
func (s *Space) EmitDocumentAdded(documentID uuid.UUID, documentName, documentType string, sizeBytes int64, uploadedBy uuid.UUID) error {
	ev, err := events.NewDocumentAdded(s.ID.String(), s.TenantID.String(), documentID.String(), documentName, documentType, sizeBytes, uploadedBy.String())
	if err != nil {
		return err
	}
	s.events = append(s.events, ev)
	return nil
}

// EmitMemberAdded buffers a MemberAdded event.
func (s *Space) EmitMemberAdded(userID uuid.UUID, role MemberRole, addedBy uuid.UUID) error {
	ev, err := events.NewMemberAdded(s.ID.String(), s.TenantID.String(), userID.String(), string(role), addedBy.String())
	if err != nil {
		return err
	}
	s.events = append(s.events, ev)
	return nil
}

// CollectEvents drains the pending event buffer. Ownership of the
// returned events transfers to the caller; a second call returns nothing.
func (s *Space) CollectEvents() []events.Event {
	out := s.events
	s.events = nil
	return out
}
