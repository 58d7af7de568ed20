package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/evasuite/eva-core/internal/app"
	"github.com/evasuite/eva-core/internal/domain/qa"
	"github.com/evasuite/eva-core/internal/domain/spaces"
	"github.com/evasuite/eva-core/internal/domain/tenancy"
	"github.com/evasuite/eva-core/internal/pkg/logger"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	cfg := app.LoadConfig(log)

	// Repos
	r := app.WireRepos(log)

	if err := run(context.Background(), log, cfg, r); err != nil {
		log.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

// run walks one tenant through the full lifecycle: provision, add an
// admin, create a research space, upload a document with dedup check,
// open a conversation and complete a query with citations.
func run(ctx context.Context, log *logger.Logger, cfg app.Config, r app.Repos) error {
	systemID := uuid.New()

	tenant, err := tenancy.NewTenant("Service Canada", "service-canada", systemID)
	if err != nil {
		return err
	}
	if _, err := r.Tenant.Save(ctx, tenant); err != nil {
		return err
	}
	log.Info("Tenant provisioned", "tenant_id", tenant.ID, "slug", tenant.Slug)

	admin, err := tenancy.NewUser(tenancy.NewUserParams{
		TenantID:  tenant.ID,
		Email:     "jane.doe@canada.ca",
		Name:      "Jane Doe",
		Role:      tenancy.UserRoleAdmin,
		AuthSub:   uuid.NewString(),
		CreatedBy: systemID,
	})
	if err != nil {
		return err
	}
	admin.RecordLogin()
	if _, err := r.User.Save(ctx, admin); err != nil {
		return err
	}
	masked := admin.MaskPII()
	log.Info("Admin user created", "user_id", masked.ID, "email", masked.Email, "name", masked.Name)

	space, err := spaces.NewSpace(spaces.NewSpaceParams{
		TenantID:    tenant.ID,
		Name:        "EI Policy Research",
		Description: "Employment insurance policy and jurisprudence",
		Visibility:  spaces.SpaceVisibilityShared,
		OwnerID:     admin.ID,
		Tags:        []string{"ei", "policy"},
	})
	if err != nil {
		return err
	}
	if err := space.EmitSpaceCreated(); err != nil {
		return err
	}

	content := []byte("Digest of Benefit Entitlement Principles, Chapter 1.")
	hash := spaces.ComputeContentHash(content)
	existing, err := r.Document.GetByContentHash(ctx, hash, tenant.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Warn("Duplicate upload skipped", "document_id", existing.ID)
	} else {
		doc, err := spaces.NewDocument(spaces.NewDocumentParams{
			SpaceID:      space.ID,
			TenantID:     tenant.ID,
			Filename:     "digest-chapter-1.pdf",
			SizeBytes:    int64(len(content)),
			ContentHash:  hash,
			DocumentType: spaces.DocumentTypePolicy,
			UploadedBy:   admin.ID,
		})
		if err != nil {
			return err
		}
		doc.MarkAsProcessing()
		doc.MarkAsIndexed(42)
		if _, err := r.Document.Save(ctx, doc); err != nil {
			return err
		}
		space.AddDocument(doc.ID, doc.SizeBytes)
		if err := space.EmitDocumentAdded(doc.ID, doc.Filename, string(doc.DocumentType), doc.SizeBytes, admin.ID); err != nil {
			return err
		}
	}
	if _, err := r.Space.Save(ctx, space); err != nil {
		return err
	}

	conv, err := qa.NewConversation(qa.NewConversationParams{
		SpaceID:  space.ID,
		TenantID: tenant.ID,
		Title:    "Waiting period questions",
		UserID:   admin.ID,
	})
	if err != nil {
		return err
	}
	space.AddConversation()
	if _, err := r.Space.Save(ctx, space); err != nil {
		return err
	}

	query, err := qa.NewQuery(qa.NewQueryParams{
		SpaceID:        space.ID,
		TenantID:       tenant.ID,
		ConversationID: &conv.ID,
		Question:       "What is the waiting period for EI regular benefits?",
		UserID:         admin.ID,
	})
	if err != nil {
		return err
	}
	if err := query.EmitQueryExecuted(); err != nil {
		return err
	}
	query.MarkAsProcessing()

	docs, err := r.Document.ListBySpace(ctx, space.ID, tenant.ID, 0, cfg.DefaultPageSize)
	if err != nil {
		return err
	}
	var citations []qa.Citation
	for _, d := range docs {
		cit, err := qa.NewCitation(d.ID, "chunk-001", d.Filename, 12, 0.91,
			"The waiting period is one week of unemployment for which benefits are not paid.")
		if err != nil {
			return err
		}
		citations = append(citations, cit)
	}
	query.MarkAsCompleted("The waiting period for EI regular benefits is one week.", citations, 1350)
	query.RecordTokensUsed(1840)
	if err := query.EmitQueryCompleted(); err != nil {
		return err
	}
	if _, err := r.Query.Save(ctx, query); err != nil {
		return err
	}

	conv.AddQuery(query.ID)
	if _, err := r.Conversation.Save(ctx, conv); err != nil {
		return err
	}

	for _, ev := range space.CollectEvents() {
		base := ev.Base()
		log.Info("Domain event", "event_type", base.EventType, "aggregate_id", base.AggregateID, "tenant_id", base.TenantID)
	}
	for _, ev := range query.CollectEvents() {
		base := ev.Base()
		log.Info("Domain event", "event_type", base.EventType, "aggregate_id", base.AggregateID, "tenant_id", base.TenantID)
	}

	log.Info("Lifecycle complete",
		"documents", space.DocumentCount,
		"queries", conv.QueryCount,
		"tokens_used", query.TokensUsed)
	return nil
}
