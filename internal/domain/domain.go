package domain

import (
	"github.com/evasuite/eva-core/internal/domain/events"
	"github.com/evasuite/eva-core/internal/domain/pii"
	"github.com/evasuite/eva-core/internal/domain/qa"
	"github.com/evasuite/eva-core/internal/domain/spaces"
	"github.com/evasuite/eva-core/internal/domain/tenancy"
)

type Tenant = tenancy.Tenant
type TenantQuotas = tenancy.TenantQuotas
type TenantStatus = tenancy.TenantStatus
type User = tenancy.User
type UserPreferences = tenancy.UserPreferences
type UserRole = tenancy.UserRole
type UserStatus = tenancy.UserStatus

type Space = spaces.Space
type SpaceMember = spaces.SpaceMember
type SpaceStatus = spaces.SpaceStatus
type SpaceVisibility = spaces.SpaceVisibility
type MemberRole = spaces.MemberRole
type Document = spaces.Document
type DocumentMetadata = spaces.DocumentMetadata
type DocumentStatus = spaces.DocumentStatus
type DocumentType = spaces.DocumentType

type Conversation = qa.Conversation
type ConversationStatus = qa.ConversationStatus
type Query = qa.Query
type QueryStatus = qa.QueryStatus
type Citation = qa.Citation

type Email = pii.Email
type PhoneNumber = pii.PhoneNumber
type SIN = pii.SIN

type DomainEvent = events.DomainEvent
type Event = events.Event
type SpaceCreated = events.SpaceCreated
type DocumentAdded = events.DocumentAdded
type MemberAdded = events.MemberAdded
type QueryExecuted = events.QueryExecuted
type QueryCompleted = events.QueryCompleted
type QueryFailed = events.QueryFailed

const (
	TenantStatusActive    = tenancy.TenantStatusActive
	TenantStatusSuspended = tenancy.TenantStatusSuspended
	TenantStatusArchived  = tenancy.TenantStatusArchived

	UserRoleViewer  = tenancy.UserRoleViewer
	UserRoleAnalyst = tenancy.UserRoleAnalyst
	UserRoleAdmin   = tenancy.UserRoleAdmin
	UserRoleSystem  = tenancy.UserRoleSystem

	SpaceVisibilityPrivate = spaces.SpaceVisibilityPrivate
	SpaceVisibilityShared  = spaces.SpaceVisibilityShared
	SpaceVisibilityPublic  = spaces.SpaceVisibilityPublic

	DocumentStatusPending    = spaces.DocumentStatusPending
	DocumentStatusProcessing = spaces.DocumentStatusProcessing
	DocumentStatusIndexed    = spaces.DocumentStatusIndexed
	DocumentStatusFailed     = spaces.DocumentStatusFailed
	DocumentStatusDeleted    = spaces.DocumentStatusDeleted

	QueryStatusPending    = qa.QueryStatusPending
	QueryStatusProcessing = qa.QueryStatusProcessing
	QueryStatusCompleted  = qa.QueryStatusCompleted
	QueryStatusFailed     = qa.QueryStatusFailed
)
