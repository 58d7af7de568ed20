package qa

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/evasuite/eva-core/internal/data/repos/testutil"
	domqa "github.com/evasuite/eva-core/internal/domain/qa"
)

func TestQueryRepo(t *testing.T) {
	repo := NewInMemoryQueryRepo(testutil.Logger(t))
	ctx := context.Background()

	spaceID := uuid.New()
	tenantID := uuid.New()
	userID := uuid.New()
	query := testutil.SeedQuery(t, spaceID, tenantID, userID, nil)
	if _, err := repo.Save(ctx, query); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, query.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.ID != query.ID {
		t.Fatalf("Get: unexpected result: %+v", got)
	}

	ok, err := repo.Delete(ctx, query.ID)
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(ctx, query.ID)
	if err != nil || ok {
		t.Fatalf("Delete (again): ok=%v err=%v", ok, err)
	}
}

func TestQueryRepoListByConversation(t *testing.T) {
	repo := NewInMemoryQueryRepo(testutil.Logger(t))
	ctx := context.Background()

	tenantID := uuid.New()
	spaceID := uuid.New()
	userID := uuid.New()
	convID := uuid.New()

	inConv := testutil.SeedQuery(t, spaceID, tenantID, userID, &convID)
	adhoc := testutil.SeedQuery(t, spaceID, tenantID, userID, nil)

	if _, err := repo.Save(ctx, inConv); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.Save(ctx, adhoc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.ListByConversation(ctx, convID, tenantID, 0, 10)
	if err != nil {
		t.Fatalf("ListByConversation: %v", err)
	}
	if len(got) != 1 || got[0].ID != inConv.ID {
		t.Fatalf("ListByConversation: unexpected result: %+v", got)
	}

	got, err = repo.ListByConversation(ctx, convID, uuid.New(), 0, 10)
	if err != nil {
		t.Fatalf("ListByConversation (wrong tenant): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ListByConversation wrong tenant: want empty, got %d", len(got))
	}
}

func TestQueryRepoTenantIsolation(t *testing.T) {
	repo := NewInMemoryQueryRepo(testutil.Logger(t))
	ctx := context.Background()

	tenantA := uuid.New()
	tenantB := uuid.New()
	spaceID := uuid.New()
	userID := uuid.New()

	qA := testutil.SeedQuery(t, spaceID, tenantA, userID, nil)
	qB := testutil.SeedQuery(t, spaceID, tenantB, userID, nil)
	if _, err := repo.Save(ctx, qA); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.Save(ctx, qB); err != nil {
		t.Fatalf("Save: %v", err)
	}

	bySpace, err := repo.ListBySpace(ctx, spaceID, tenantA, 0, 10)
	if err != nil {
		t.Fatalf("ListBySpace: %v", err)
	}
	if len(bySpace) != 1 || bySpace[0].ID != qA.ID {
		t.Fatalf("ListBySpace: unexpected result: %+v", bySpace)
	}

	byUser, err := repo.ListByUser(ctx, userID, tenantB, 0, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(byUser) != 1 || byUser[0].ID != qB.ID {
		t.Fatalf("ListByUser: unexpected result: %+v", byUser)
	}
}

func TestQueryRepoCopiesCitations(t *testing.T) {
	repo := NewInMemoryQueryRepo(testutil.Logger(t))
	ctx := context.Background()

	query := testutil.SeedQuery(t, uuid.New(), uuid.New(), uuid.New(), nil)
	cit, err := domqa.NewCitation(uuid.New(), "chunk-1", "policy.pdf", 3, 0.92, "relevant excerpt")
	if err != nil {
		t.Fatalf("NewCitation: %v", err)
	}
	query.MarkAsProcessing()
	query.MarkAsCompleted("The answer.", []domqa.Citation{cit}, 1200)
	if _, err := repo.Save(ctx, query); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, query.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Citations) != 1 {
		t.Fatalf("Citations: want=1 got=%d", len(got.Citations))
	}
	got.Citations[0].Excerpt = "mutated"

	again, err := repo.Get(ctx, query.ID)
	if err != nil {
		t.Fatalf("Get (again): %v", err)
	}
	if again.Citations[0].Excerpt != "relevant excerpt" {
		t.Fatalf("stored citation mutated through returned copy")
	}
}
