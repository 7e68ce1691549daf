package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/database"
	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
	"github.com/mrlokans/bookexchange/internal/entities"
)

func setupSeedTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := setupSeedTestDB(t)

	summary, err := Seed(ctx, db, bcrypt.MinCost)
	require.NoError(t, err)

	assert.Equal(t, &Summary{Clients: 1, Addresses: 1, Authors: 5, Books: 6, Links: 7, Sales: 2}, summary)

	repos := db.Repositories()

	client, err := repos.Clients.FindByEmail(ctx, DemoCorreo)
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword(DemoPassword, client.Contrasenia))

	book, err := repos.Books.FindByTitle(ctx, "Antología poética chilena")
	require.NoError(t, err)
	authors, err := repos.BookAuthors.AuthorsOf(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "Gabriela Mistral", authors[0].Nombre)
	assert.Equal(t, "Pablo Neruda", authors[1].Nombre)

	sales, err := repos.Sales.ListAll(ctx, entities.StatusActive)
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}

func TestSeed_TwiceRollsBack(t *testing.T) {
	ctx := context.Background()
	db := setupSeedTestDB(t)

	_, err := Seed(ctx, db, bcrypt.MinCost)
	require.NoError(t, err)

	_, err = Seed(ctx, db, bcrypt.MinCost)
	assert.ErrorIs(t, err, lifecycle.ErrConflict)

	clients, err := db.Repositories().Clients.ListAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}
