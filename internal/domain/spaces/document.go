package spaces

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

type DocumentStatus string

const (
	DocumentStatusPending    DocumentStatus = "pending"    // uploaded, not yet indexed
	DocumentStatusProcessing DocumentStatus = "processing" // being chunked/embedded
	DocumentStatusIndexed    DocumentStatus = "indexed"    // ready for queries
	DocumentStatusFailed     DocumentStatus = "failed"     // processing failed
	DocumentStatusDeleted    DocumentStatus = "deleted"    // soft-deleted
)

type DocumentType string

const (
	DocumentTypePolicy        DocumentType = "policy"
	DocumentTypeJurisprudence DocumentType = "jurisprudence"
	DocumentTypeGuidance      DocumentType = "guidance"
	DocumentTypeFAQ           DocumentType = "faq"
	DocumentTypeOther         DocumentType = "other"
)

func (t DocumentType) valid() bool {
	switch t {
	case DocumentTypePolicy, DocumentTypeJurisprudence, DocumentTypeGuidance, DocumentTypeFAQ, DocumentTypeOther:
		return true
	}
	return false
}

var allowedExtensions = []string{".pdf", ".docx", ".txt", ".md"}

// DocumentMetadata is extracted during indexing.
type DocumentMetadata struct {
	Author          string            `gorm:"column:author" json:"author,omitempty"`
	PublicationDate *time.Time        `gorm:"column:publication_date" json:"publication_date,omitempty"`
	EffectiveDate   *time.Time        `gorm:"column:effective_date" json:"effective_date,omitempty"`
	Language        string            `gorm:"column:language" json:"language"`
	PageCount       int               `gorm:"column:page_count" json:"page_count,omitempty"`
	Tags            []string          `gorm:"serializer:json" json:"tags"`
	CustomFields    datatypes.JSONMap `gorm:"column:custom_fields" json:"custom_fields"`
}

// Document is a file uploaded to a space. Content identity is the
// SHA-256 of the raw bytes, used for dedup within a tenant.
type Document struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	SpaceID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"space_id"`
	TenantID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Filename     string           `gorm:"column:filename;not null" json:"filename"`
	ContentType  string           `gorm:"column:content_type;not null" json:"content_type"`
	SizeBytes    int64            `gorm:"column:size_bytes;not null" json:"size_bytes"`
	ContentHash  string           `gorm:"column:content_hash;not null;index" json:"content_hash"`
	BlobURL      string           `gorm:"column:blob_url" json:"blob_url"`
	DocumentType DocumentType     `gorm:"column:document_type;not null;default:'other'" json:"document_type"`
	Status       DocumentStatus   `gorm:"column:status;not null;default:'pending'" json:"status"`
	Metadata     DocumentMetadata `gorm:"embedded;embeddedPrefix:meta_" json:"metadata"`
	ChunkCount   int              `gorm:"column:chunk_count;not null;default:0" json:"chunk_count"`
	IndexedAt    *time.Time       `gorm:"column:indexed_at" json:"indexed_at,omitempty"`
	UploadedBy   uuid.UUID        `gorm:"type:uuid;not null" json:"uploaded_by"`
	CreatedAt    time.Time        `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"not null;default:now()" json:"updated_at"`
}

func (Document) TableName() string { return "document" }

type NewDocumentParams struct {
	SpaceID      uuid.UUID
	TenantID     uuid.UUID
	Filename     string
	ContentType  string // defaults to application/pdf
	SizeBytes    int64
	ContentHash  string
	BlobURL      string
	DocumentType DocumentType // defaults to other
	UploadedBy   uuid.UUID
}

func NewDocument(p NewDocumentParams) (*Document, error) {
	op := "spaces.new_document"
	if p.SpaceID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "space_id is required")
	}
	if p.TenantID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "tenant_id is required")
	}
	filename := strings.TrimSpace(p.Filename)
	if filename == "" || len(filename) > 255 {
		return nil, aggregates.ValidationError(op, "filename must be 1-255 characters")
	}
	if !allowedExtension(filename) {
		return nil, aggregates.ValidationError(op, fmt.Sprintf("invalid file extension, allowed: %s", strings.Join(allowedExtensions, " ")))
	}
	if p.SizeBytes <= 0 {
		return nil, aggregates.ValidationError(op, "size_bytes must be positive")
	}
	if strings.TrimSpace(p.ContentHash) == "" {
		return nil, aggregates.ValidationError(op, "content_hash is required")
	}
	contentType := p.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	docType := p.DocumentType
	if docType == "" {
		docType = DocumentTypeOther
	}
	if !docType.valid() {
		return nil, aggregates.ValidationError(op, fmt.Sprintf("unknown document type %q", docType))
	}
	if p.UploadedBy == uuid.Nil {
		return nil, aggregates.ValidationError(op, "uploaded_by is required")
	}
	now := time.Now().UTC()
	return &Document{
		ID:           uuid.New(),
		SpaceID:      p.SpaceID,
		TenantID:     p.TenantID,
		Filename:     filename,
		ContentType:  contentType,
		SizeBytes:    p.SizeBytes,
		ContentHash:  p.ContentHash,
		BlobURL:      p.BlobURL,
		DocumentType: docType,
		Status:       DocumentStatusPending,
		Metadata:     DocumentMetadata{Language: "en", CustomFields: datatypes.JSONMap{}},
		UploadedBy:   p.UploadedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func allowedExtension(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ComputeContentHash returns the SHA-256 digest of content as a hex
// string. Used at upload time and for dedup lookup.
func ComputeContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// IsDuplicate reports whether the document carries the same content hash.
func (d *Document) IsDuplicate(otherHash string) bool {
	return d.ContentHash == otherHash
}

// MarkAsProcessing flags the document as being chunked/embedded.
func (d *Document) MarkAsProcessing() {
	d.Status = DocumentStatusProcessing
	d.UpdatedAt = time.Now().UTC()
}

// MarkAsIndexed records successful indexing. The transition is
// unconditional: no guard is enforced at this layer.
func (d *Document) MarkAsIndexed(chunkCount int) {
	now := time.Now().UTC()
	d.Status = DocumentStatusIndexed
	d.ChunkCount = chunkCount
	d.IndexedAt = &now
	d.UpdatedAt = now
}

// MarkAsFailed records a processing failure.
func (d *Document) MarkAsFailed() {
	d.Status = DocumentStatusFailed
	d.UpdatedAt = time.Now().UTC()
}

// MarkAsDeleted soft-deletes the document. Reachable from any status.
func (d *Document) MarkAsDeleted() {
	d.Status = DocumentStatusDeleted
	d.UpdatedAt = time.Now().UTC()
}
