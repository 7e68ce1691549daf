package database

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookexchange/internal/database/addresses"
	"github.com/mrlokans/bookexchange/internal/database/authors"
	"github.com/mrlokans/bookexchange/internal/database/bookauthors"
	"github.com/mrlokans/bookexchange/internal/database/books"
	"github.com/mrlokans/bookexchange/internal/database/clients"
	"github.com/mrlokans/bookexchange/internal/database/sales"
)

// Repositories bundles one repository per entity, all bound to the same
// connection or transaction.
type Repositories struct {
	Clients     *clients.Repository
	Addresses   *addresses.Repository
	Books       *books.Repository
	Authors     *authors.Repository
	BookAuthors *bookauthors.Repository
	Sales       *sales.Repository
}

func newRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Clients:     clients.NewRepository(db),
		Addresses:   addresses.NewRepository(db),
		Books:       books.NewRepository(db),
		Authors:     authors.NewRepository(db),
		BookAuthors: bookauthors.NewRepository(db),
		Sales:       sales.NewRepository(db),
	}
}
