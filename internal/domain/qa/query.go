package qa

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
	"github.com/evasuite/eva-core/internal/domain/events"
)

type QueryStatus string

const (
	QueryStatusPending    QueryStatus = "pending"    // submitted, not yet processed
	QueryStatusProcessing QueryStatus = "processing" // answer generation in flight
	QueryStatusCompleted  QueryStatus = "completed"  // answer generated
	QueryStatusFailed     QueryStatus = "failed"     // error occurred
)

// Citation links an answer back to a source document chunk.
type Citation struct {
	DocumentID     uuid.UUID `gorm:"type:uuid;not null" json:"document_id"`
	ChunkID        string    `gorm:"column:chunk_id;not null" json:"chunk_id"`
	DocumentName   string    `gorm:"column:document_name;not null" json:"document_name"`
	PageNumber     int       `gorm:"column:page_number" json:"page_number,omitempty"`
	RelevanceScore float64   `gorm:"column:relevance_score;not null" json:"relevance_score"`
	Excerpt        string    `gorm:"column:excerpt" json:"excerpt"`
}

// NewCitation validates the citation constraints: relevance in [0,1],
// excerpt at most 500 characters.
func NewCitation(documentID uuid.UUID, chunkID, documentName string, pageNumber int, relevanceScore float64, excerpt string) (Citation, error) {
	op := "qa.new_citation"
	if documentID == uuid.Nil {
		return Citation{}, aggregates.ValidationError(op, "document_id is required")
	}
	if strings.TrimSpace(chunkID) == "" {
		return Citation{}, aggregates.ValidationError(op, "chunk_id is required")
	}
	if strings.TrimSpace(documentName) == "" {
		return Citation{}, aggregates.ValidationError(op, "document_name is required")
	}
	if relevanceScore < 0 || relevanceScore > 1 {
		return Citation{}, aggregates.ValidationError(op, "relevance_score must be within [0, 1]")
	}
	if len(excerpt) > 500 {
		return Citation{}, aggregates.ValidationError(op, "excerpt must be at most 500 characters")
	}
	return Citation{
		DocumentID:     documentID,
		ChunkID:        chunkID,
		DocumentName:   documentName,
		PageNumber:     pageNumber,
		RelevanceScore: relevanceScore,
		Excerpt:        excerpt,
	}, nil
}

// Query is a single user question within a space, optionally grouped
// under a conversation. Answers and citations are produced by the
// external answer-generation pipeline and recorded here.
type Query struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SpaceID          uuid.UUID   `gorm:"type:uuid;not null;index" json:"space_id"`
	TenantID         uuid.UUID   `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ConversationID   *uuid.UUID  `gorm:"type:uuid;index" json:"conversation_id,omitempty"`
	Question         string      `gorm:"column:question;not null" json:"question"`
	Language         string      `gorm:"column:language;not null;default:'en'" json:"language"`
	Answer           string      `gorm:"column:answer" json:"answer,omitempty"`
	Citations        []Citation  `gorm:"serializer:json" json:"citations"`
	Status           QueryStatus `gorm:"column:status;not null;default:'pending'" json:"status"`
	ErrorMessage     string      `gorm:"column:error_message" json:"error_message,omitempty"`
	ProcessingTimeMS int         `gorm:"column:processing_time_ms" json:"processing_time_ms,omitempty"`
	TokensUsed       int         `gorm:"column:tokens_used" json:"tokens_used,omitempty"`
	UserID           uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt        time.Time   `gorm:"not null;default:now()" json:"created_at"`
	CompletedAt      *time.Time  `gorm:"column:completed_at" json:"completed_at,omitempty"`

	events []events.Event
}

func (Query) TableName() string { return "query" }

type NewQueryParams struct {
	SpaceID        uuid.UUID
	TenantID       uuid.UUID
	ConversationID *uuid.UUID
	Question       string
	Language       string // defaults to en
	UserID         uuid.UUID
}

func NewQuery(p NewQueryParams) (*Query, error) {
	op := "qa.new_query"
	if p.SpaceID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "space_id is required")
	}
	if p.TenantID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "tenant_id is required")
	}
	question := strings.TrimSpace(p.Question)
	if question == "" || len(question) > 2000 {
		return nil, aggregates.ValidationError(op, "question must be 1-2000 characters")
	}
	language := p.Language
	if language == "" {
		language = "en"
	}
	if p.UserID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "user_id is required")
	}
	return &Query{
		ID:             uuid.New(),
		SpaceID:        p.SpaceID,
		TenantID:       p.TenantID,
		ConversationID: p.ConversationID,
		Question:       question,
		Language:       language,
		Status:         QueryStatusPending,
		UserID:         p.UserID,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// MarkAsProcessing flags the query as handed to the pipeline.
func (q *Query) MarkAsProcessing() {
	q.Status = QueryStatusProcessing
}

// MarkAsCompleted records the pipeline result. Unconditional: no
// transition guard at this layer.
func (q *Query) MarkAsCompleted(answer string, citations []Citation, processingTimeMS int) {
	now := time.Now().UTC()
	q.Answer = answer
	q.Citations = citations
	q.Status = QueryStatusCompleted
	q.ProcessingTimeMS = processingTimeMS
	q.CompletedAt = &now
}

// MarkAsFailed records a pipeline failure. Unconditional.
func (q *Query) MarkAsFailed(errorMessage string) {
	now := time.Now().UTC()
	q.Status = QueryStatusFailed
	q.ErrorMessage = errorMessage
	q.CompletedAt = &now
}

// RecordTokensUsed stores the token count reported by the pipeline.
func (q *Query) RecordTokensUsed(tokens int) {
	q.TokensUsed = tokens
}

// EmitQueryExecuted buffers a QueryExecuted event.
func (q *Query) EmitQueryExecuted() error {
	ev, err := events.NewQueryExecuted(q.ID.String(), q.TenantID.String(), q.SpaceID.String(), q.Question, q.UserID.String())
	if err != nil {
		return err
	}
	q.events = append(q.events, ev)
	return nil
}

// EmitQueryCompleted buffers a QueryCompleted event. The query must
// already be completed with a non-empty answer: events describe facts,
// so the transition has to happen first.
func (q *Query) EmitQueryCompleted() error {
	op := "qa.emit_query_completed"
	if q.Status != QueryStatusCompleted || q.Answer == "" {
		return aggregates.PreconditionError(op, "cannot emit QueryCompleted: query not completed")
	}
	ev, err := events.NewQueryCompleted(q.ID.String(), q.TenantID.String(), len(q.Answer), len(q.Citations), q.ProcessingTimeMS, q.TokensUsed)
	if err != nil {
		return err
	}
	q.events = append(q.events, ev)
	return nil
}

// EmitQueryFailed buffers a QueryFailed event. The failure must already
// be recorded.
func (q *Query) EmitQueryFailed() error {
	op := "qa.emit_query_failed"
	if q.Status != QueryStatusFailed || q.ErrorMessage == "" {
		return aggregates.PreconditionError(op, "cannot emit QueryFailed: query not in failed state")
	}
	ev, err := events.NewQueryFailed(q.ID.String(), q.TenantID.String(), "processing_error", q.ErrorMessage)
	if err != nil {
		return err
	}
	q.events = append(q.events, ev)
	return nil
}

// CollectEvents drains the pending event buffer; a second call returns
// nothing.
func (q *Query) CollectEvents() []events.Event {
	out := q.events
	q.events = nil
	return out
}
