// Package testutil builds valid domain entities for repository tests.
package testutil

import (
	"testing"

	"github.com/google/uuid"

	types "github.com/evasuite/eva-core/internal/domain"
	"github.com/evasuite/eva-core/internal/domain/qa"
	"github.com/evasuite/eva-core/internal/domain/spaces"
	"github.com/evasuite/eva-core/internal/domain/tenancy"
	"github.com/evasuite/eva-core/internal/pkg/logger"
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}

func SeedTenant(tb testing.TB, slug string) *types.Tenant {
	tb.Helper()
	t, err := tenancy.NewTenant("Tenant "+slug, slug, uuid.New())
	if err != nil {
		tb.Fatalf("seed tenant: %v", err)
	}
	return t
}

func SeedUser(tb testing.TB, tenantID uuid.UUID, email string) *types.User {
	tb.Helper()
	u, err := tenancy.NewUser(tenancy.NewUserParams{
		TenantID:  tenantID,
		Email:     email,
		Name:      "Test User",
		AuthSub:   uuid.NewString(),
		CreatedBy: uuid.New(),
	})
	if err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSpace(tb testing.TB, tenantID, ownerID uuid.UUID, name string) *types.Space {
	tb.Helper()
	s, err := spaces.NewSpace(spaces.NewSpaceParams{
		TenantID: tenantID,
		Name:     name,
		OwnerID:  ownerID,
	})
	if err != nil {
		tb.Fatalf("seed space: %v", err)
	}
	return s
}

func SeedDocument(tb testing.TB, spaceID, tenantID uuid.UUID, filename, contentHash string) *types.Document {
	tb.Helper()
	d, err := spaces.NewDocument(spaces.NewDocumentParams{
		SpaceID:     spaceID,
		TenantID:    tenantID,
		Filename:    filename,
		SizeBytes:   1024,
		ContentHash: contentHash,
		UploadedBy:  uuid.New(),
	})
	if err != nil {
		tb.Fatalf("seed document: %v", err)
	}
	return d
}

func SeedConversation(tb testing.TB, spaceID, tenantID, userID uuid.UUID, title string) *types.Conversation {
	tb.Helper()
	c, err := qa.NewConversation(qa.NewConversationParams{
		SpaceID:  spaceID,
		TenantID: tenantID,
		Title:    title,
		UserID:   userID,
	})
	if err != nil {
		tb.Fatalf("seed conversation: %v", err)
	}
	return c
}

func SeedQuery(tb testing.TB, spaceID, tenantID, userID uuid.UUID, conversationID *uuid.UUID) *types.Query {
	tb.Helper()
	q, err := qa.NewQuery(qa.NewQueryParams{
		SpaceID:        spaceID,
		TenantID:       tenantID,
		ConversationID: conversationID,
		Question:       "What is the retention period for case files?",
		UserID:         userID,
	})
	if err != nil {
		tb.Fatalf("seed query: %v", err)
	}
	return q
}
