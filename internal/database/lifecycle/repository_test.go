package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookexchange/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entities.Author{}, &entities.BookAuthor{}))
	return db
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps active status and creation date", func(t *testing.T) {
		repo := New[entities.Author](setupTestDB(t))

		author := &entities.Author{Nombre: "Gabriela Mistral", Pais: "Chile"}
		author.Estado = entities.StatusDeleted // ignored on create

		require.NoError(t, repo.Create(ctx, author, nil))

		assert.NotZero(t, author.ID)
		assert.Equal(t, entities.StatusActive, author.Estado)
		require.NotNil(t, author.FCreacion)
		assert.Equal(t, entities.Today(), *author.FCreacion)
		assert.Nil(t, author.FModificacion)
		assert.Nil(t, author.FEliminacion)
	})

	t.Run("rejects duplicate unique column", func(t *testing.T) {
		repo := New[entities.Author](setupTestDB(t))

		first := &entities.Author{Nombre: "Pablo Neruda", Pais: "Chile"}
		require.NoError(t, repo.Create(ctx, first, map[string]any{"nombre": first.Nombre}))

		second := &entities.Author{Nombre: "Pablo Neruda", Pais: "Spain"}
		err := repo.Create(ctx, second, map[string]any{"nombre": second.Nombre})
		assert.ErrorIs(t, err, ErrConflict)

		all, err := repo.ListAll(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("duplicate check includes soft deleted records", func(t *testing.T) {
		repo := New[entities.Author](setupTestDB(t))

		first := &entities.Author{Nombre: "Isabel Allende", Pais: "Chile"}
		require.NoError(t, repo.Create(ctx, first, map[string]any{"nombre": first.Nombre}))
		require.NoError(t, repo.SoftDelete(ctx, first.ID))

		err := repo.Create(ctx, &entities.Author{Nombre: "Isabel Allende"}, map[string]any{"nombre": "Isabel Allende"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("composite unique columns", func(t *testing.T) {
		repo := New[entities.BookAuthor](setupTestDB(t))

		link := &entities.BookAuthor{AutorID: 1, LibroID: 2}
		key := map[string]any{"autor_id": uint(1), "libro_id": uint(2)}
		require.NoError(t, repo.Create(ctx, link, key))

		err := repo.Create(ctx, &entities.BookAuthor{AutorID: 1, LibroID: 2}, key)
		assert.ErrorIs(t, err, ErrConflict)

		require.NoError(t, repo.Create(ctx, &entities.BookAuthor{AutorID: 1, LibroID: 3},
			map[string]any{"autor_id": uint(1), "libro_id": uint(3)}))
	})
}

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := New[entities.Author](setupTestDB(t))

	_, err := repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	author := &entities.Author{Nombre: "Julio Cortázar", Pais: "Argentina"}
	require.NoError(t, repo.Create(ctx, author, nil))
	require.NoError(t, repo.SoftDelete(ctx, author.ID))

	found, err := repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.True(t, found.IsDeleted(), "repository returns deleted records; callers decide")
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites fields and stamps modification date", func(t *testing.T) {
		repo := New[entities.Author](setupTestDB(t))

		author := &entities.Author{Nombre: "Borges", Pais: "Chile"}
		require.NoError(t, repo.Create(ctx, author, nil))

		updated, err := repo.Update(ctx, author.ID, func(a *entities.Author) {
			a.Nombre = "Jorge Luis Borges"
			a.Pais = "Argentina"
		})
		require.NoError(t, err)
		assert.Equal(t, "Jorge Luis Borges", updated.Nombre)
		require.NotNil(t, updated.FModificacion)
		assert.Equal(t, entities.Today(), *updated.FModificacion)

		reloaded, err := repo.FindByID(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, "Argentina", reloaded.Pais)
		assert.Equal(t, author.FCreacion.Unix(), reloaded.FCreacion.Unix())
	})

	t.Run("reactivates soft deleted record", func(t *testing.T) {
		repo := New[entities.Author](setupTestDB(t))

		author := &entities.Author{Nombre: "Rulfo", Pais: "México"}
		require.NoError(t, repo.Create(ctx, author, nil))
		require.NoError(t, repo.SoftDelete(ctx, author.ID))

		updated, err := repo.Update(ctx, author.ID, func(a *entities.Author) {})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusActive, updated.Estado)
		assert.Nil(t, updated.FEliminacion)

		reloaded, err := repo.FindByID(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusActive, reloaded.Estado)
		assert.Nil(t, reloaded.FEliminacion)
		require.NotNil(t, reloaded.FModificacion)
	})

	t.Run("revives by composite key", func(t *testing.T) {
		repo := New[entities.BookAuthor](setupTestDB(t))
		key := map[string]any{"autor_id": uint(3), "libro_id": uint(7)}

		require.NoError(t, repo.Create(ctx, &entities.BookAuthor{AutorID: 3, LibroID: 7}, key))
		require.NoError(t, repo.SoftDeleteWhere(ctx, key))

		revived, err := repo.UpdateWhere(ctx, key, func(*entities.BookAuthor) {})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusActive, revived.Estado)
		assert.Nil(t, revived.FEliminacion)

		// The pair still counts as taken
		assert.ErrorIs(t, repo.Create(ctx, &entities.BookAuthor{AutorID: 3, LibroID: 7}, key), ErrConflict)
	})

	t.Run("missing id", func(t *testing.T) {
		repo := New[entities.Author](setupTestDB(t))

		_, err := repo.Update(ctx, 99, func(a *entities.Author) {})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("second delete reports not found", func(t *testing.T) {
		repo := New[entities.Author](setupTestDB(t))

		author := &entities.Author{Nombre: "Neruda", Pais: "Chile"}
		require.NoError(t, repo.Create(ctx, author, nil))

		require.NoError(t, repo.SoftDelete(ctx, author.ID))
		err := repo.SoftDelete(ctx, author.ID)
		assert.True(t, errors.Is(err, ErrNotFound))

		found, err := repo.FindByID(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDeleted, found.Estado)
		require.NotNil(t, found.FEliminacion)
		assert.True(t, entities.Today().Equal(*found.FEliminacion))
	})

	t.Run("missing id", func(t *testing.T) {
		repo := New[entities.Author](setupTestDB(t))
		assert.ErrorIs(t, repo.SoftDelete(ctx, 7), ErrNotFound)
	})

	t.Run("composite key", func(t *testing.T) {
		repo := New[entities.BookAuthor](setupTestDB(t))

		require.NoError(t, repo.Create(ctx, &entities.BookAuthor{AutorID: 1, LibroID: 1}, nil))
		require.NoError(t, repo.Create(ctx, &entities.BookAuthor{AutorID: 1, LibroID: 2}, nil))

		require.NoError(t, repo.SoftDeleteWhere(ctx, map[string]any{"autor_id": uint(1), "libro_id": uint(2)}))

		other, err := repo.FindOne(ctx, map[string]any{"autor_id": uint(1), "libro_id": uint(1)})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusActive, other.Estado)
	})
}

func TestRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	repo := New[entities.Author](setupTestDB(t))

	empty, err := repo.ListAll(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	kept := &entities.Author{Nombre: "Mistral"}
	gone := &entities.Author{Nombre: "Parra"}
	require.NoError(t, repo.Create(ctx, kept, nil))
	require.NoError(t, repo.Create(ctx, gone, nil))
	require.NoError(t, repo.SoftDelete(ctx, gone.ID))

	all, err := repo.ListAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2, "unfiltered listing includes soft deleted records")

	active, err := repo.ListAll(ctx, entities.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Mistral", active[0].Nombre)
}

func TestRepository_WithTx(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New[entities.Author](db)

	rollback := errors.New("rollback")
	err := db.Transaction(func(tx *gorm.DB) error {
		require.NoError(t, repo.WithTx(tx).Create(ctx, &entities.Author{Nombre: "Huidobro"}, nil))
		return rollback
	})
	require.ErrorIs(t, err, rollback)

	all, err := repo.ListAll(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}
