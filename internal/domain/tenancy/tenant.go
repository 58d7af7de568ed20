package tenancy

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusArchived  TenantStatus = "archived"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// TenantQuotas holds per-tenant resource limits.
type TenantQuotas struct {
	MaxUsers             int `gorm:"column:max_users" json:"max_users"`
	MaxSpaces            int `gorm:"column:max_spaces" json:"max_spaces"`
	MaxDocumentsPerSpace int `gorm:"column:max_documents_per_space" json:"max_documents_per_space"`
	MaxStorageGB         int `gorm:"column:max_storage_gb" json:"max_storage_gb"`
	MaxQueriesPerMonth   int `gorm:"column:max_queries_per_month" json:"max_queries_per_month"`
}

func DefaultTenantQuotas() TenantQuotas {
	return TenantQuotas{
		MaxUsers:             100,
		MaxSpaces:            50,
		MaxDocumentsPerSpace: 10000,
		MaxStorageGB:         100,
		MaxQueriesPerMonth:   10000,
	}
}

// Tenant is the multi-tenancy boundary: an organization or department.
// Every other aggregate carries its tenant id and every cross-entity
// lookup is scoped by it.
type Tenant struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string       `gorm:"column:name;not null" json:"name"`
	Slug      string       `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Status    TenantStatus `gorm:"column:status;not null;default:'active'" json:"status"`
	Quotas    TenantQuotas `gorm:"embedded;embeddedPrefix:quota_" json:"quotas"`
	CreatedAt time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:now()" json:"updated_at"`
	CreatedBy uuid.UUID    `gorm:"type:uuid;not null" json:"created_by"`
}

func (Tenant) TableName() string { return "tenant" }

// NewTenant validates and builds a tenant with default active status and
// default quotas.
func NewTenant(name, slug string, createdBy uuid.UUID) (*Tenant, error) {
	op := "tenancy.new_tenant"
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(slug)
	if name == "" || len(name) > 200 {
		return nil, aggregates.ValidationError(op, "name must be 1-200 characters")
	}
	if !slugPattern.MatchString(slug) {
		return nil, aggregates.ValidationError(op, "slug must match ^[a-z0-9-]+$")
	}
	if createdBy == uuid.Nil {
		return nil, aggregates.ValidationError(op, "created_by is required")
	}
	now := time.Now().UTC()
	return &Tenant{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug,
		Status:    TenantStatusActive,
		Quotas:    DefaultTenantQuotas(),
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: createdBy,
	}, nil
}

// IsQuotaExceeded reports whether current use of a resource has reached
// the configured limit. Reaching the limit counts as exceeded. Unknown
// resources are unlimited.
func (t *Tenant) IsQuotaExceeded(resource string, currentCount int) bool {
	max, ok := t.maxFor(resource)
	if !ok {
		return false
	}
	return currentCount >= max
}

func (t *Tenant) maxFor(resource string) (int, bool) {
	switch resource {
	case "users":
		return t.Quotas.MaxUsers, true
	case "spaces":
		return t.Quotas.MaxSpaces, true
	case "documents_per_space":
		return t.Quotas.MaxDocumentsPerSpace, true
	case "storage_gb":
		return t.Quotas.MaxStorageGB, true
	case "queries_per_month":
		return t.Quotas.MaxQueriesPerMonth, true
	}
	return 0, false
}

// Suspend and Archive switch the tenant status. No transition guard is
// enforced between statuses.
func (t *Tenant) Suspend() {
	t.Status = TenantStatusSuspended
	t.UpdatedAt = time.Now().UTC()
}

func (t *Tenant) Archive() {
	t.Status = TenantStatusArchived
	t.UpdatedAt = time.Now().UTC()
}
