package repos

import (
	"github.com/evasuite/eva-core/internal/data/repos/qa"
	"github.com/evasuite/eva-core/internal/data/repos/spaces"
	"github.com/evasuite/eva-core/internal/data/repos/tenancy"
)

type TenantRepo = tenancy.TenantRepo
type UserRepo = tenancy.UserRepo

type SpaceRepo = spaces.SpaceRepo
type DocumentRepo = spaces.DocumentRepo

type ConversationRepo = qa.ConversationRepo
type QueryRepo = qa.QueryRepo
