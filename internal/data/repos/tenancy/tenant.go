package tenancy

import (
	"context"
	"sort"

	"github.com/google/uuid"

	types "github.com/evasuite/eva-core/internal/domain"
	"github.com/evasuite/eva-core/internal/pkg/logger"
)

type TenantRepo interface {
	Save(ctx context.Context, tenant *types.Tenant) (*types.Tenant, error)
	Get(ctx context.Context, tenantID uuid.UUID) (*types.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*types.Tenant, error)
	List(ctx context.Context, skip, limit int) ([]*types.Tenant, error)
	ListActive(ctx context.Context, skip, limit int) ([]*types.Tenant, error)
	Delete(ctx context.Context, tenantID uuid.UUID) (bool, error)
}

type tenantRepo struct {
	byID map[uuid.UUID]*types.Tenant
	log  *logger.Logger
}

func NewInMemoryTenantRepo(baseLog *logger.Logger) TenantRepo {
	repoLog := baseLog.With("repo", "TenantRepo")
	return &tenantRepo{byID: map[uuid.UUID]*types.Tenant{}, log: repoLog}
}

func (tr *tenantRepo) Save(ctx context.Context, tenant *types.Tenant) (*types.Tenant, error) {
	stored := *tenant
	tr.byID[tenant.ID] = &stored
	return tenant, nil
}

func (tr *tenantRepo) Get(ctx context.Context, tenantID uuid.UUID) (*types.Tenant, error) {
	stored, ok := tr.byID[tenantID]
	if !ok {
		return nil, nil
	}
	result := *stored
	return &result, nil
}

func (tr *tenantRepo) GetBySlug(ctx context.Context, slug string) (*types.Tenant, error) {
	for _, stored := range tr.byID {
		if stored.Slug == slug {
			result := *stored
			return &result, nil
		}
	}
	return nil, nil
}

func (tr *tenantRepo) List(ctx context.Context, skip, limit int) ([]*types.Tenant, error) {
	return tr.collect(func(*types.Tenant) bool { return true }, skip, limit), nil
}

func (tr *tenantRepo) ListActive(ctx context.Context, skip, limit int) ([]*types.Tenant, error) {
	return tr.collect(func(t *types.Tenant) bool {
		return t.Status == types.TenantStatusActive
	}, skip, limit), nil
}

func (tr *tenantRepo) Delete(ctx context.Context, tenantID uuid.UUID) (bool, error) {
	if _, ok := tr.byID[tenantID]; !ok {
		return false, nil
	}
	delete(tr.byID, tenantID)
	return true, nil
}

func (tr *tenantRepo) collect(match func(*types.Tenant) bool, skip, limit int) []*types.Tenant {
	var results []*types.Tenant
	for _, stored := range tr.byID {
		if match(stored) {
			result := *stored
			results = append(results, &result)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.Before(results[j].CreatedAt)
		}
		return results[i].ID.String() < results[j].ID.String()
	})
	return window(results, skip, limit)
}

// window slices results by skip/limit; an out-of-range skip yields an
// empty page rather than an error.
func window[T any](results []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(results) {
		return []T{}
	}
	results = results[skip:]
	if limit >= 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}
