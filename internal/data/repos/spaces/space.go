package spaces

import (
	"context"
	"sort"

	"github.com/google/uuid"

	types "github.com/evasuite/eva-core/internal/domain"
	"github.com/evasuite/eva-core/internal/pkg/logger"
)

type SpaceRepo interface {
	Save(ctx context.Context, space *types.Space) (*types.Space, error)
	Get(ctx context.Context, spaceID uuid.UUID) (*types.Space, error)
	List(ctx context.Context, skip, limit int) ([]*types.Space, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, skip, limit int) ([]*types.Space, error)
	ListByOwner(ctx context.Context, ownerID, tenantID uuid.UUID, skip, limit int) ([]*types.Space, error)
	ListByMember(ctx context.Context, userID, tenantID uuid.UUID, skip, limit int) ([]*types.Space, error)
	Delete(ctx context.Context, spaceID uuid.UUID) (bool, error)
}

type spaceRepo struct {
	byID map[uuid.UUID]*types.Space
	log  *logger.Logger
}

func NewInMemorySpaceRepo(baseLog *logger.Logger) SpaceRepo {
	repoLog := baseLog.With("repo", "SpaceRepo")
	return &spaceRepo{byID: map[uuid.UUID]*types.Space{}, log: repoLog}
}

func (sr *spaceRepo) Save(ctx context.Context, space *types.Space) (*types.Space, error) {
	sr.byID[space.ID] = copySpace(space)
	return space, nil
}

func (sr *spaceRepo) Get(ctx context.Context, spaceID uuid.UUID) (*types.Space, error) {
	stored, ok := sr.byID[spaceID]
	if !ok {
		return nil, nil
	}
	return copySpace(stored), nil
}

func (sr *spaceRepo) List(ctx context.Context, skip, limit int) ([]*types.Space, error) {
	return sr.collect(func(*types.Space) bool { return true }, skip, limit), nil
}

func (sr *spaceRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, skip, limit int) ([]*types.Space, error) {
	return sr.collect(func(s *types.Space) bool { return s.TenantID == tenantID }, skip, limit), nil
}

func (sr *spaceRepo) ListByOwner(ctx context.Context, ownerID, tenantID uuid.UUID, skip, limit int) ([]*types.Space, error) {
	return sr.collect(func(s *types.Space) bool {
		return s.TenantID == tenantID && s.OwnerID == ownerID
	}, skip, limit), nil
}

// ListByMember matches spaces where the user appears in the explicit
// members list. Ownership alone does not qualify.
func (sr *spaceRepo) ListByMember(ctx context.Context, userID, tenantID uuid.UUID, skip, limit int) ([]*types.Space, error) {
	return sr.collect(func(s *types.Space) bool {
		if s.TenantID != tenantID {
			return false
		}
		for _, m := range s.Members {
			if m.UserID == userID {
				return true
			}
		}
		return false
	}, skip, limit), nil
}

func (sr *spaceRepo) Delete(ctx context.Context, spaceID uuid.UUID) (bool, error) {
	if _, ok := sr.byID[spaceID]; !ok {
		return false, nil
	}
	delete(sr.byID, spaceID)
	return true, nil
}

func (sr *spaceRepo) collect(match func(*types.Space) bool, skip, limit int) []*types.Space {
	var results []*types.Space
	for _, stored := range sr.byID {
		if match(stored) {
			results = append(results, copySpace(stored))
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

func copySpace(stored *types.Space) *types.Space {
	result := *stored
	result.Members = append([]types.SpaceMember(nil), stored.Members...)
	result.Tags = append([]string(nil), stored.Tags...)
	return &result
}

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
