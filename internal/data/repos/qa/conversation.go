package qa

import (
	"context"
	"sort"

	"github.com/google/uuid"

	types "github.com/evasuite/eva-core/internal/domain"
	"github.com/evasuite/eva-core/internal/pkg/logger"
)

type ConversationRepo interface {
	Save(ctx context.Context, conv *types.Conversation) (*types.Conversation, error)
	Get(ctx context.Context, conversationID uuid.UUID) (*types.Conversation, error)
	List(ctx context.Context, skip, limit int) ([]*types.Conversation, error)
	ListBySpace(ctx context.Context, spaceID, tenantID uuid.UUID, skip, limit int) ([]*types.Conversation, error)
	ListByUser(ctx context.Context, userID, tenantID uuid.UUID, skip, limit int) ([]*types.Conversation, error)
	Delete(ctx context.Context, conversationID uuid.UUID) (bool, error)
}

type conversationRepo struct {
	byID map[uuid.UUID]*types.Conversation
	log  *logger.Logger
}

func NewInMemoryConversationRepo(baseLog *logger.Logger) ConversationRepo {
	repoLog := baseLog.With("repo", "ConversationRepo")
	return &conversationRepo{byID: map[uuid.UUID]*types.Conversation{}, log: repoLog}
}

func (cr *conversationRepo) Save(ctx context.Context, conv *types.Conversation) (*types.Conversation, error) {
	cr.byID[conv.ID] = copyConversation(conv)
	return conv, nil
}

func (cr *conversationRepo) Get(ctx context.Context, conversationID uuid.UUID) (*types.Conversation, error) {
	stored, ok := cr.byID[conversationID]
	if !ok {
		return nil, nil
	}
	return copyConversation(stored), nil
}

func (cr *conversationRepo) List(ctx context.Context, skip, limit int) ([]*types.Conversation, error) {
	return cr.collect(func(*types.Conversation) bool { return true }, skip, limit), nil
}

func (cr *conversationRepo) ListBySpace(ctx context.Context, spaceID, tenantID uuid.UUID, skip, limit int) ([]*types.Conversation, error) {
	return cr.collect(func(c *types.Conversation) bool {
		return c.TenantID == tenantID && c.SpaceID == spaceID
	}, skip, limit), nil
}

func (cr *conversationRepo) ListByUser(ctx context.Context, userID, tenantID uuid.UUID, skip, limit int) ([]*types.Conversation, error) {
	return cr.collect(func(c *types.Conversation) bool {
		return c.TenantID == tenantID && c.UserID == userID
	}, skip, limit), nil
}

func (cr *conversationRepo) Delete(ctx context.Context, conversationID uuid.UUID) (bool, error) {
	if _, ok := cr.byID[conversationID]; !ok {
		return false, nil
	}
	delete(cr.byID, conversationID)
	return true, nil
}

func (cr *conversationRepo) collect(match func(*types.Conversation) bool, skip, limit int) []*types.Conversation {
	var results []*types.Conversation
	for _, stored := range cr.byID {
		if match(stored) {
			results = append(results, copyConversation(stored))
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

func copyConversation(stored *types.Conversation) *types.Conversation {
	result := *stored
	if stored.LastQueryAt != nil {
		at := *stored.LastQueryAt
		result.LastQueryAt = &at
	}
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
