package tenancy

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	types "github.com/evasuite/eva-core/internal/domain"
	"github.com/evasuite/eva-core/internal/pkg/logger"
)

type UserRepo interface {
	Save(ctx context.Context, user *types.User) (*types.User, error)
	Get(ctx context.Context, userID uuid.UUID) (*types.User, error)
	GetByEmail(ctx context.Context, email string, tenantID uuid.UUID) (*types.User, error)
	GetByAuthSub(ctx context.Context, authSub, authProvider string) (*types.User, error)
	List(ctx context.Context, skip, limit int) ([]*types.User, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, skip, limit int) ([]*types.User, error)
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}

type userRepo struct {
	byID map[uuid.UUID]*types.User
	log  *logger.Logger
}

func NewInMemoryUserRepo(baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{byID: map[uuid.UUID]*types.User{}, log: repoLog}
}

func (ur *userRepo) Save(ctx context.Context, user *types.User) (*types.User, error) {
	stored := *user
	if user.LastLoginAt != nil {
		at := *user.LastLoginAt
		stored.LastLoginAt = &at
	}
	ur.byID[user.ID] = &stored
	return user, nil
}

func (ur *userRepo) Get(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	stored, ok := ur.byID[userID]
	if !ok {
		return nil, nil
	}
	return copyUser(stored), nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, email string, tenantID uuid.UUID) (*types.User, error) {
	email = strings.TrimSpace(email)
	for _, stored := range ur.byID {
		if stored.TenantID == tenantID && stored.Email == email {
			return copyUser(stored), nil
		}
	}
	return nil, nil
}

func (ur *userRepo) GetByAuthSub(ctx context.Context, authSub, authProvider string) (*types.User, error) {
	for _, stored := range ur.byID {
		if stored.AuthSub == authSub && stored.AuthProvider == authProvider {
			return copyUser(stored), nil
		}
	}
	return nil, nil
}

func (ur *userRepo) List(ctx context.Context, skip, limit int) ([]*types.User, error) {
	return ur.collect(func(*types.User) bool { return true }, skip, limit), nil
}

func (ur *userRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, skip, limit int) ([]*types.User, error) {
	return ur.collect(func(u *types.User) bool { return u.TenantID == tenantID }, skip, limit), nil
}

func (ur *userRepo) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	if _, ok := ur.byID[userID]; !ok {
		return false, nil
	}
	delete(ur.byID, userID)
	return true, nil
}

func (ur *userRepo) collect(match func(*types.User) bool, skip, limit int) []*types.User {
	var results []*types.User
	for _, stored := range ur.byID {
		if match(stored) {
			results = append(results, copyUser(stored))
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

func copyUser(stored *types.User) *types.User {
	result := *stored
	if stored.LastLoginAt != nil {
		at := *stored.LastLoginAt
		result.LastLoginAt = &at
	}
	return &result
}
