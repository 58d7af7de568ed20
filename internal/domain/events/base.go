package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

// DomainEvent is the base record shared by every domain event: an
// immutable fact about a completed state transition, scoped to a tenant.
// Events are buffered on the emitting entity until a caller drains them
// for downstream dispatch.
type DomainEvent struct {
	EventID     string             `gorm:"column:event_id;primaryKey" json:"event_id"`
	EventType   string             `gorm:"column:event_type;not null" json:"event_type"`
	AggregateID string             `gorm:"column:aggregate_id;not null;index" json:"aggregate_id"`
	TenantID    string             `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Timestamp   time.Time          `gorm:"column:timestamp;not null" json:"timestamp"`
	Metadata    datatypes.JSONMap  `gorm:"column:metadata" json:"metadata"`
}

// Event is implemented by every concrete domain event.
type Event interface {
	Base() DomainEvent
}

func (e DomainEvent) Base() DomainEvent { return e }

func newDomainEvent(eventType, aggregateID, tenantID string) (DomainEvent, error) {
	op := "events.new"
	eventType = strings.TrimSpace(eventType)
	aggregateID = strings.TrimSpace(aggregateID)
	tenantID = strings.TrimSpace(tenantID)
	if err := requireBounded(op, "event_type", eventType, 100); err != nil {
		return DomainEvent{}, err
	}
	if err := requireNonEmpty(op, "aggregate_id", aggregateID); err != nil {
		return DomainEvent{}, err
	}
	if err := requireNonEmpty(op, "tenant_id", tenantID); err != nil {
		return DomainEvent{}, err
	}
	return DomainEvent{
		EventID:     uuid.NewString(),
		EventType:   eventType,
		AggregateID: aggregateID,
		TenantID:    tenantID,
		Timestamp:   time.Now().UTC(),
		Metadata:    datatypes.JSONMap{},
	}, nil
}

func requireNonEmpty(op, field, v string) error {
	if strings.TrimSpace(v) == "" {
		return aggregates.ValidationError(op, field+" must not be empty")
	}
	return nil
}

func requireBounded(op, field, v string, max int) error {
	if err := requireNonEmpty(op, field, v); err != nil {
		return err
	}
	if len(v) > max {
		return aggregates.ValidationError(op, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}

func requireNonNegative(op, field string, v int) error {
	if v < 0 {
		return aggregates.ValidationError(op, field+" must not be negative")
	}
	return nil
}

func requirePositive(op, field string, v int) error {
	if v <= 0 {
		return aggregates.ValidationError(op, field+" must be positive")
	}
	return nil
}

func requirePositive64(op, field string, v int64) error {
	if v <= 0 {
		return aggregates.ValidationError(op, field+" must be positive")
	}
	return nil
}
