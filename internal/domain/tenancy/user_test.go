package tenancy

import (
	"testing"

	"github.com/google/uuid"

	"github.com/evasuite/eva-core/internal/domain/aggregates"
)

func newTestUser(t *testing.T, tenantID uuid.UUID, role UserRole) *User {
	t.Helper()
	u, err := NewUser(NewUserParams{
		TenantID:  tenantID,
		Email:     "john.doe@canada.ca",
		Name:      "John Doe",
		Role:      role,
		AuthSub:   "sub-123",
		CreatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return u
}

func TestNewUserDefaults(t *testing.T) {
	u, err := NewUser(NewUserParams{
		TenantID:  uuid.New(),
		Email:     "analyst@example.com",
		Name:      "Ada Analyst",
		AuthSub:   "sub-1",
		CreatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if u.Role != UserRoleViewer {
		t.Fatalf("role default: want=viewer got=%s", u.Role)
	}
	if u.Status != UserStatusActive {
		t.Fatalf("status default: want=active got=%s", u.Status)
	}
	if u.AuthProvider != "entra_id" {
		t.Fatalf("auth_provider default: want=entra_id got=%s", u.AuthProvider)
	}
	if u.Preferences != DefaultUserPreferences() {
		t.Fatalf("preferences: want defaults got=%+v", u.Preferences)
	}
}

func TestNewUserValidation(t *testing.T) {
	base := NewUserParams{
		TenantID:  uuid.New(),
		Email:     "a@b.ca",
		Name:      "A",
		AuthSub:   "sub",
		CreatedBy: uuid.New(),
	}

	p := base
	p.TenantID = uuid.Nil
	if _, err := NewUser(p); err == nil {
		t.Fatalf("nil tenant should be rejected")
	}

	p = base
	p.Email = "not-an-email"
	if _, err := NewUser(p); err == nil {
		t.Fatalf("bad email should be rejected")
	}

	p = base
	p.Name = ""
	if _, err := NewUser(p); err == nil {
		t.Fatalf("empty name should be rejected")
	}

	p = base
	p.Role = UserRole("superuser")
	if _, err := NewUser(p); err == nil {
		t.Fatalf("unknown role should be rejected")
	}

	p = base
	p.AuthSub = "  "
	if _, err := NewUser(p); err == nil {
		t.Fatalf("blank auth_sub should be rejected")
	}
}

func TestCanAccessSpace(t *testing.T) {
	tenant := uuid.New()
	otherTenant := uuid.New()
	owner := uuid.New()

	admin := newTestUser(t, tenant, UserRoleAdmin)
	analyst := newTestUser(t, tenant, UserRoleAnalyst)

	// Tenant mismatch is a hard boundary, even for admins.
	if admin.CanAccessSpace(owner, otherTenant) {
		t.Fatalf("cross-tenant access granted to admin")
	}
	if admin.CanAccessSpace(admin.ID, otherTenant) {
		t.Fatalf("cross-tenant access granted to owner-admin")
	}
	if !admin.CanAccessSpace(owner, tenant) {
		t.Fatalf("same-tenant admin should access any space")
	}
	// Non-admins resolve ownership at the caller, so this is false even
	// when the user owns the space.
	if analyst.CanAccessSpace(analyst.ID, tenant) {
		t.Fatalf("non-admin should not be granted access here")
	}
}

func TestEnsureSameTenant(t *testing.T) {
	tenant := uuid.New()
	u := newTestUser(t, tenant, UserRoleViewer)

	if err := u.EnsureSameTenant(tenant); err != nil {
		t.Fatalf("same tenant: %v", err)
	}
	err := u.EnsureSameTenant(uuid.New())
	if err == nil {
		t.Fatalf("expected isolation violation")
	}
	if !aggregates.IsCode(err, aggregates.CodeInvariantViolation) {
		t.Fatalf("expected invariant_violation code, got %q (%v)", aggregates.CodeOf(err), err)
	}
}

func TestMaskPII(t *testing.T) {
	u := newTestUser(t, uuid.New(), UserRoleAnalyst)
	u.RecordLogin()

	masked := u.MaskPII()
	if masked.Email != "j***e@c*****a" {
		t.Fatalf("masked email: want=j***e@c*****a got=%s", masked.Email)
	}
	if masked.Name != "J*** D***" {
		t.Fatalf("masked name: want=J*** D*** got=%s", masked.Name)
	}
	if masked.ID != u.ID || masked.TenantID != u.TenantID {
		t.Fatalf("identity fields should be preserved")
	}

	// The receiver is untouched, including the shared pointer field.
	if u.Email != "john.doe@canada.ca" || u.Name != "John Doe" {
		t.Fatalf("original mutated: %s / %s", u.Email, u.Name)
	}
	if masked.LastLoginAt == u.LastLoginAt {
		t.Fatalf("last_login_at pointer should be copied")
	}
	if !masked.LastLoginAt.Equal(*u.LastLoginAt) {
		t.Fatalf("last_login_at value should match")
	}
}

func TestMaskPIISingleToken(t *testing.T) {
	u := newTestUser(t, uuid.New(), UserRoleViewer)
	u.Name = "Plato"
	if got := u.MaskPII().Name; got != "P***" {
		t.Fatalf("masked name: want=P*** got=%s", got)
	}
}

func TestRecordLogin(t *testing.T) {
	u := newTestUser(t, uuid.New(), UserRoleViewer)
	if u.LastLoginAt != nil {
		t.Fatalf("last_login_at should start unset")
	}
	u.RecordLogin()
	if u.LastLoginAt == nil {
		t.Fatalf("last_login_at not set")
	}
}
