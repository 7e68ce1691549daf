// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, transactions
//	├── lifecycle/       # Generic soft-delete CRUD shared by every entity
//	├── clients/         # Client accounts (unique email)
//	├── addresses/       # Client addresses (one per client)
//	├── books/           # Book catalogue (unique title)
//	├── authors/         # Authors (unique name)
//	├── bookauthors/     # Book-author links (composite key)
//	└── sales/           # Sale and exchange records
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type embedding lifecycle.Repository:
//
//	db, err := database.NewDatabase("./libreria.db")
//	repos := db.Repositories()
//	book, err := repos.Books.FindByID(ctx, 123)
//
// # Units of Work
//
// Operations that touch several tables run through Transaction, which hands
// out repositories bound to a single transaction:
//
//	err := db.Transaction(ctx, func(r *database.Repositories) error {
//		if _, err := r.Books.FindByID(ctx, sale.LibroID); err != nil {
//			return err
//		}
//		return r.Sales.Create(ctx, sale)
//	})
//
// # Adding a New Entity
//
//  1. Add the entity to internal/entities, embedding entities.Lifecycle
//  2. Create a sub-package with a Repository embedding lifecycle.Repository
//  3. Register the model in database.go and the repository in repositories.go
package database
