package app

import (
	"github.com/evasuite/eva-core/internal/data/repos"
	qarepos "github.com/evasuite/eva-core/internal/data/repos/qa"
	spacerepos "github.com/evasuite/eva-core/internal/data/repos/spaces"
	tenancyrepos "github.com/evasuite/eva-core/internal/data/repos/tenancy"
	"github.com/evasuite/eva-core/internal/pkg/logger"
)

type Repos struct {
	Tenant       repos.TenantRepo
	User         repos.UserRepo
	Space        repos.SpaceRepo
	Document     repos.DocumentRepo
	Conversation repos.ConversationRepo
	Query        repos.QueryRepo
}

func WireRepos(log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Tenant:       tenancyrepos.NewInMemoryTenantRepo(log),
		User:         tenancyrepos.NewInMemoryUserRepo(log),
		Space:        spacerepos.NewInMemorySpaceRepo(log),
		Document:     spacerepos.NewInMemoryDocumentRepo(log),
		Conversation: qarepos.NewInMemoryConversationRepo(log),
		Query:        qarepos.NewInMemoryQueryRepo(log),
	}
}
