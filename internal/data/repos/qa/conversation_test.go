package qa

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/evasuite/eva-core/internal/data/repos/testutil"
)

func TestConversationRepo(t *testing.T) {
	repo := NewInMemoryConversationRepo(testutil.Logger(t))
	ctx := context.Background()

	spaceID := uuid.New()
	tenantID := uuid.New()
	userID := uuid.New()
	conv := testutil.SeedConversation(t, spaceID, tenantID, userID, "EI eligibility")
	if _, err := repo.Save(ctx, conv); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, conv.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.ID != conv.ID {
		t.Fatalf("Get: unexpected result: %+v", got)
	}

	got, err = repo.Get(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Get (missing): %v", err)
	}
	if got != nil {
		t.Fatalf("Get (missing): expected nil, got %+v", got)
	}

	ok, err := repo.Delete(ctx, conv.ID)
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(ctx, conv.ID)
	if err != nil || ok {
		t.Fatalf("Delete (again): ok=%v err=%v", ok, err)
	}
}

func TestConversationRepoFinders(t *testing.T) {
	repo := NewInMemoryConversationRepo(testutil.Logger(t))
	ctx := context.Background()

	tenantA := uuid.New()
	tenantB := uuid.New()
	spaceID := uuid.New()
	userID := uuid.New()

	inSpace := testutil.SeedConversation(t, spaceID, tenantA, userID, "In space")
	otherSpace := testutil.SeedConversation(t, uuid.New(), tenantA, userID, "Other space")
	otherTenant := testutil.SeedConversation(t, spaceID, tenantB, userID, "Other tenant")

	if _, err := repo.Save(ctx, inSpace); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.Save(ctx, otherSpace); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := repo.Save(ctx, otherTenant); err != nil {
		t.Fatalf("Save: %v", err)
	}

	bySpace, err := repo.ListBySpace(ctx, spaceID, tenantA, 0, 10)
	if err != nil {
		t.Fatalf("ListBySpace: %v", err)
	}
	if len(bySpace) != 1 || bySpace[0].ID != inSpace.ID {
		t.Fatalf("ListBySpace: unexpected result: %+v", bySpace)
	}

	byUser, err := repo.ListByUser(ctx, userID, tenantA, 0, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("ListByUser: want=2 got=%d", len(byUser))
	}
}

func TestConversationRepoCopiesLastQueryAt(t *testing.T) {
	repo := NewInMemoryConversationRepo(testutil.Logger(t))
	ctx := context.Background()

	conv := testutil.SeedConversation(t, uuid.New(), uuid.New(), uuid.New(), "Timing")
	conv.AddQuery(uuid.New())
	if _, err := repo.Save(ctx, conv); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, conv.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.LastQueryAt == nil {
		t.Fatalf("LastQueryAt: expected non-nil")
	}
	if got.LastQueryAt == conv.LastQueryAt {
		t.Fatalf("LastQueryAt: pointer shared with caller entity")
	}
	if got.QueryCount != 1 {
		t.Fatalf("QueryCount: want=1 got=%d", got.QueryCount)
	}
}
