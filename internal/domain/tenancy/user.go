package tenancy

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
	"github.com/evasuite/eva-core/internal/domain/pii"
)

type UserRole string

const (
	UserRoleViewer  UserRole = "viewer"
	UserRoleAnalyst UserRole = "analyst"
	UserRoleAdmin   UserRole = "admin"
	UserRoleSystem  UserRole = "system"
)

func (r UserRole) valid() bool {
	switch r {
	case UserRoleViewer, UserRoleAnalyst, UserRoleAdmin, UserRoleSystem:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusDeleted   UserStatus = "deleted"
)

// UserPreferences holds UI and notification settings.
type UserPreferences struct {
	Locale             string `gorm:"column:locale" json:"locale"`
	Timezone           string `gorm:"column:timezone" json:"timezone"`
	EmailNotifications bool   `gorm:"column:email_notifications" json:"email_notifications"`
	Theme              string `gorm:"column:theme" json:"theme"`
	ResultsPerPage     int    `gorm:"column:results_per_page" json:"results_per_page"`
}

func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		Locale:             "en-CA",
		Timezone:           "America/Toronto",
		EmailNotifications: true,
		Theme:              "auto",
		ResultsPerPage:     20,
	}
}

// User is a person using the product. Tenant membership is immutable and
// is the context for every authorization check.
type User struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Email        string          `gorm:"column:email;not null;index" json:"email"`
	Name         string          `gorm:"column:name;not null" json:"name"`
	Role         UserRole        `gorm:"column:role;not null;default:'viewer'" json:"role"`
	Status       UserStatus      `gorm:"column:status;not null;default:'active'" json:"status"`
	AuthProvider string          `gorm:"column:auth_provider;not null" json:"auth_provider"`
	AuthSub      string          `gorm:"column:auth_sub;not null;index" json:"auth_sub"`
	Preferences  UserPreferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	CreatedAt    time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;default:now()" json:"updated_at"`
	LastLoginAt  *time.Time      `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`
}

func (User) TableName() string { return "app_user" }

type NewUserParams struct {
	TenantID     uuid.UUID
	Email        string
	Name         string
	Role         UserRole // defaults to viewer
	AuthProvider string   // defaults to entra_id
	AuthSub      string
	CreatedBy    uuid.UUID
}

func NewUser(p NewUserParams) (*User, error) {
	op := "tenancy.new_user"
	if p.TenantID == uuid.Nil {
		return nil, aggregates.ValidationError(op, "tenant_id is required")
	}
	email, err := pii.NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(p.Name)
	if name == "" || len(name) > 200 {
		return nil, aggregates.ValidationError(op, "name must be 1-200 characters")
	}
	role := p.Role
	if role == "" {
		role = UserRoleViewer
	}
	if !role.valid() {
		return nil, aggregates.ValidationError(op, fmt.Sprintf("unknown role %q", role))
	}
	provider := strings.TrimSpace(p.AuthProvider)
	if provider == "" {
		provider = "entra_id"
	}
	authSub := strings.TrimSpace(p.AuthSub)
	if authSub == "" {
		return nil, aggregates.ValidationError(op, "auth_sub is required")
	}
	if p.CreatedBy == uuid.Nil {
		return nil, aggregates.ValidationError(op, "created_by is required")
	}
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		TenantID:     p.TenantID,
		Email:        email.Value,
		Name:         name,
		Role:         role,
		Status:       UserStatusActive,
		AuthProvider: provider,
		AuthSub:      authSub,
		Preferences:  DefaultUserPreferences(),
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    p.CreatedBy,
	}, nil
}

// CanAccessSpace applies the tenant isolation boundary and the admin
// rule. Ownership-based access is resolved by the caller against the
// space itself, not here.
func (u *User) CanAccessSpace(spaceOwnerID, spaceTenantID uuid.UUID) bool {
	if u.TenantID != spaceTenantID {
		return false
	}
	if u.Role == UserRoleAdmin {
		return true
	}
	return false
}

// EnsureSameTenant guards trust boundaries: any mismatch is a tenant
// isolation violation.
func (u *User) EnsureSameTenant(otherTenantID uuid.UUID) error {
	if u.TenantID != otherTenantID {
		return aggregates.InvariantError("tenancy.ensure_same_tenant",
			fmt.Sprintf("tenant isolation violation: user tenant %s does not match %s", u.TenantID, otherTenantID))
	}
	return nil
}

// MaskPII returns a copy with email and name masked for logging and
// telemetry. The receiver is never mutated.
func (u *User) MaskPII() *User {
	masked := *u
	if u.LastLoginAt != nil {
		at := *u.LastLoginAt
		masked.LastLoginAt = &at
	}
	masked.Email = pii.MaskEmailString(u.Email)
	masked.Name = maskName(u.Name)
	return &masked
}

// maskName masks each whitespace-separated token as first rune + "***".
func maskName(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		runes := []rune(part)
		parts[i] = string(runes[0]) + "***"
	}
	return strings.Join(parts, " ")
}

// RecordLogin stamps a successful login.
func (u *User) RecordLogin() {
	now := time.Now().UTC()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// Suspend and MarkDeleted switch the account status (soft delete keeps
// the audit trail).
func (u *User) Suspend() {
	u.Status = UserStatusSuspended
	u.UpdatedAt = time.Now().UTC()
}

func (u *User) MarkDeleted() {
	u.Status = UserStatusDeleted
	u.UpdatedAt = time.Now().UTC()
}
