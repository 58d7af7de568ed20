package qa

import (
	"context"
	"sort"

	"github.com/google/uuid"

	types "github.com/evasuite/eva-core/internal/domain"
	"github.com/evasuite/eva-core/internal/pkg/logger"
)

type QueryRepo interface {
	Save(ctx context.Context, query *types.Query) (*types.Query, error)
	Get(ctx context.Context, queryID uuid.UUID) (*types.Query, error)
	List(ctx context.Context, skip, limit int) ([]*types.Query, error)
	ListBySpace(ctx context.Context, spaceID, tenantID uuid.UUID, skip, limit int) ([]*types.Query, error)
	ListByUser(ctx context.Context, userID, tenantID uuid.UUID, skip, limit int) ([]*types.Query, error)
	ListByConversation(ctx context.Context, conversationID, tenantID uuid.UUID, skip, limit int) ([]*types.Query, error)
	Delete(ctx context.Context, queryID uuid.UUID) (bool, error)
}

type queryRepo struct {
	byID map[uuid.UUID]*types.Query
	log  *logger.Logger
}

func NewInMemoryQueryRepo(baseLog *logger.Logger) QueryRepo {
	repoLog := baseLog.With("repo", "QueryRepo")
	return &queryRepo{byID: map[uuid.UUID]*types.Query{}, log: repoLog}
}

func (qr *queryRepo) Save(ctx context.Context, query *types.Query) (*types.Query, error) {
	qr.byID[query.ID] = copyQuery(query)
	return query, nil
}

func (qr *queryRepo) Get(ctx context.Context, queryID uuid.UUID) (*types.Query, error) {
	stored, ok := qr.byID[queryID]
	if !ok {
		return nil, nil
	}
	return copyQuery(stored), nil
}

func (qr *queryRepo) List(ctx context.Context, skip, limit int) ([]*types.Query, error) {
	return qr.collect(func(*types.Query) bool { return true }, skip, limit), nil
}

func (qr *queryRepo) ListBySpace(ctx context.Context, spaceID, tenantID uuid.UUID, skip, limit int) ([]*types.Query, error) {
	return qr.collect(func(q *types.Query) bool {
		return q.TenantID == tenantID && q.SpaceID == spaceID
	}, skip, limit), nil
}

func (qr *queryRepo) ListByUser(ctx context.Context, userID, tenantID uuid.UUID, skip, limit int) ([]*types.Query, error) {
	return qr.collect(func(q *types.Query) bool {
		return q.TenantID == tenantID && q.UserID == userID
	}, skip, limit), nil
}

func (qr *queryRepo) ListByConversation(ctx context.Context, conversationID, tenantID uuid.UUID, skip, limit int) ([]*types.Query, error) {
	return qr.collect(func(q *types.Query) bool {
		return q.TenantID == tenantID &&
			q.ConversationID != nil && *q.ConversationID == conversationID
	}, skip, limit), nil
}

func (qr *queryRepo) Delete(ctx context.Context, queryID uuid.UUID) (bool, error) {
	if _, ok := qr.byID[queryID]; !ok {
		return false, nil
	}
	delete(qr.byID, queryID)
	return true, nil
}

func (qr *queryRepo) collect(match func(*types.Query) bool, skip, limit int) []*types.Query {
	var results []*types.Query
	for _, stored := range qr.byID {
		if match(stored) {
			results = append(results, copyQuery(stored))
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

func copyQuery(stored *types.Query) *types.Query {
	result := *stored
	result.Citations = append([]types.Citation(nil), stored.Citations...)
	if stored.ConversationID != nil {
		id := *stored.ConversationID
		result.ConversationID = &id
	}
	if stored.CompletedAt != nil {
		at := *stored.CompletedAt
		result.CompletedAt = &at
	}
	return &result
}
