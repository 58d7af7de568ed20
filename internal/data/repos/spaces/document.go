package spaces

import (
	"context"
	"sort"

	"github.com/google/uuid"

	types "github.com/evasuite/eva-core/internal/domain"
	"github.com/evasuite/eva-core/internal/pkg/logger"
)

type DocumentRepo interface {
	Save(ctx context.Context, doc *types.Document) (*types.Document, error)
	Get(ctx context.Context, documentID uuid.UUID) (*types.Document, error)
	GetByContentHash(ctx context.Context, contentHash string, tenantID uuid.UUID) (*types.Document, error)
	List(ctx context.Context, skip, limit int) ([]*types.Document, error)
	ListBySpace(ctx context.Context, spaceID, tenantID uuid.UUID, skip, limit int) ([]*types.Document, error)
	ListPendingIndexing(ctx context.Context, tenantID uuid.UUID, limit int) ([]*types.Document, error)
	Delete(ctx context.Context, documentID uuid.UUID) (bool, error)
}

type documentRepo struct {
	byID map[uuid.UUID]*types.Document
	log  *logger.Logger
}

func NewInMemoryDocumentRepo(baseLog *logger.Logger) DocumentRepo {
	repoLog := baseLog.With("repo", "DocumentRepo")
	return &documentRepo{byID: map[uuid.UUID]*types.Document{}, log: repoLog}
}

func (dr *documentRepo) Save(ctx context.Context, doc *types.Document) (*types.Document, error) {
	dr.byID[doc.ID] = copyDocument(doc)
	return doc, nil
}

func (dr *documentRepo) Get(ctx context.Context, documentID uuid.UUID) (*types.Document, error) {
	stored, ok := dr.byID[documentID]
	if !ok {
		return nil, nil
	}
	return copyDocument(stored), nil
}

// GetByContentHash is the dedup lookup. Hash collisions across tenants
// are expected (same file uploaded by different tenants) and must not
// leak between them.
func (dr *documentRepo) GetByContentHash(ctx context.Context, contentHash string, tenantID uuid.UUID) (*types.Document, error) {
	for _, stored := range dr.byID {
		if stored.TenantID == tenantID && stored.ContentHash == contentHash {
			return copyDocument(stored), nil
		}
	}
	return nil, nil
}

func (dr *documentRepo) List(ctx context.Context, skip, limit int) ([]*types.Document, error) {
	return dr.collect(func(*types.Document) bool { return true }, skip, limit), nil
}

func (dr *documentRepo) ListBySpace(ctx context.Context, spaceID, tenantID uuid.UUID, skip, limit int) ([]*types.Document, error) {
	return dr.collect(func(d *types.Document) bool {
		return d.TenantID == tenantID && d.SpaceID == spaceID
	}, skip, limit), nil
}

func (dr *documentRepo) ListPendingIndexing(ctx context.Context, tenantID uuid.UUID, limit int) ([]*types.Document, error) {
	return dr.collect(func(d *types.Document) bool {
		return d.TenantID == tenantID && d.Status == types.DocumentStatusPending
	}, 0, limit), nil
}

func (dr *documentRepo) Delete(ctx context.Context, documentID uuid.UUID) (bool, error) {
	if _, ok := dr.byID[documentID]; !ok {
		return false, nil
	}
	delete(dr.byID, documentID)
	return true, nil
}

func (dr *documentRepo) collect(match func(*types.Document) bool, skip, limit int) []*types.Document {
	var results []*types.Document
	for _, stored := range dr.byID {
		if match(stored) {
			results = append(results, copyDocument(stored))
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

func copyDocument(stored *types.Document) *types.Document {
	result := *stored
	if stored.IndexedAt != nil {
		at := *stored.IndexedAt
		result.IndexedAt = &at
	}
	return &result
}
