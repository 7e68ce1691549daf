package http

import (
	"context"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/entities"
)

// This file consolidates the dependencies HTTP controllers need. Controllers
// reach the repositories through a UnitOfWork so that reference checks and
// the write they guard share one transaction.

// UnitOfWork provides repositories bound to the database or to a single
// transaction.
type UnitOfWork interface {
	Repositories() *database.Repositories
	Transaction(ctx context.Context, fn func(repos *database.Repositories) error) error
}

// Store is the database as seen by the router: repositories plus a
// liveness check.
type Store interface {
	UnitOfWork
	Pinger
}

// AccountService handles client registration, login and profile lookups.
type AccountService interface {
	Register(ctx context.Context, reg auth.Registration) (*entities.Client, string, error)
	Login(ctx context.Context, correo, contrasenia string) (*entities.Client, string, error)
	Profile(ctx context.Context, clientID uint) (*entities.Client, error)
	HashPassword(password string) (string, error)
}

// EntityTokenIssuer mints the token returned alongside a created record.
type EntityTokenIssuer interface {
	IssueEntityToken(kind auth.Kind, id uint) (string, error)
}

// deletable is satisfied by every entity embedding entities.Lifecycle.
type deletable interface {
	IsDeleted() bool
}

// lister lists records, optionally filtered by status.
type lister[T any] interface {
	ListAll(ctx context.Context, status entities.Status) ([]T, error)
}

// lifecycleStore is the part of an id-addressed entity repository shared by
// the generic read and delete handlers.
type lifecycleStore[T any, PT deletable] interface {
	lister[T]
	FindByID(ctx context.Context, id uint) (PT, error)
	SoftDelete(ctx context.Context, id uint) error
}
