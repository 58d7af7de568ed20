package qa

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

type ConversationStatus string

const (
	ConversationStatusActive   ConversationStatus = "active"
	ConversationStatusArchived ConversationStatus = "archived"
)

// Conversation groups related queries into a thread within a space.
type Conversation struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	SpaceID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"space_id"`
	TenantID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Title       string             `gorm:"column:title;not null" json:"title"`
	Description string             `gorm:"column:description" json:"description"`
	Status      ConversationStatus `gorm:"column:status;not null;default:'active'" json:"status"`
	QueryCount  int                `gorm:"column:query_count;not null;default:0" json:"query_count"`
	LastQueryAt *time.Time         `gorm:"column:last_query_at" json:"last_query_at,omitempty"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time          `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"not null;default:now()" json:"updated_at"`
}

func (Conversation) TableName() string { return "conversation" }

type NewConversationParams struct {
	SpaceID     uuid.UUID
	TenantID    uuid.UUID
	Title       string
	Description string
	UserID      uuid.UUID
}

func NewConversation(p NewConversationParams) (*Conversation, error) {
	op := "qa.new_conversation"
	if p.SpaceID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "space_id is required")
	}
	if p.TenantID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "tenant_id is required")
	}
	title := strings.TrimSpace(p.Title)
	if title == "" || len(title) > 200 {
		return nil, aggregates.ValidationError(op, "title must be 1-200 characters")
	}
	if len(p.Description) > 1000 {
		return nil, aggregates.ValidationError(op, "description must be at most 1000 characters")
	}
	if p.UserID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "user_id is required")
	}
	now := time.Now().UTC()
	return &Conversation{
		ID:          uuid.New(),
		SpaceID:     p.SpaceID,
		TenantID:    p.TenantID,
		Title:       title,
		Description: p.Description,
		Status:      ConversationStatusActive,
		UserID:      p.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AddQuery records a query attached to this conversation.
func (c *Conversation) AddQuery(queryID uuid.UUID) {
	_ = queryID // tracked by count only; queries link back by conversation_id
	now := time.Now().UTC()
	c.QueryCount++
	c.LastQueryAt = &now
	c.UpdatedAt = now
}

func (c *Conversation) Archive() {
	c.Status = ConversationStatusArchived
	c.UpdatedAt = time.Now().UTC()
}
