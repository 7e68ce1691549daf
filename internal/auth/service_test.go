package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookexchange/internal/config"
	"github.com/mrlokans/bookexchange/internal/database/clients"
	"github.com/mrlokans/bookexchange/internal/entities"
)

func setupService(t *testing.T) (*Service, *clients.Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&entities.Client{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := config.Auth{
		TokenTTL:       time.Hour,
		EntityTokenTTL: time.Minute,
		BcryptCost:     bcrypt.MinCost, // Low cost for faster tests
	}

	repo := clients.NewRepository(db)
	return NewService(repo, newTestIssuer(), cfg), repo
}

func testRegistration() Registration {
	return Registration{
		NombreCompleto: "Ana Pérez",
		Correo:         "ana@example.com",
		Contrasenia:    "secreto123",
		Telefono:       "+56911111111",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	service, repo := setupService(t)

	client, token, err := service.Register(ctx, testRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if client.ID == 0 {
		t.Error("expected client to have an id")
	}
	if client.Estado != entities.StatusActive {
		t.Errorf("Estado = %q, want activo", client.Estado)
	}
	if client.Contrasenia == "secreto123" {
		t.Error("password stored in plaintext")
	}

	id, err := service.Authenticate(token)
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if id != client.ID {
		t.Errorf("token identity = %d, want %d", id, client.ID)
	}

	stored, err := repo.FindByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if !VerifyPassword("secreto123", stored.Contrasenia) {
		t.Error("stored hash does not verify")
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service, repo := setupService(t)

	first, _, err := service.Register(ctx, testRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, _, err := service.Register(ctx, testRegistration()); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register() error = %v, want ErrEmailTaken", err)
	}

	// Deleted clients still hold their email
	if err := repo.SoftDelete(ctx, first.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}
	if _, _, err := service.Register(ctx, testRegistration()); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() after delete error = %v, want ErrEmailTaken", err)
	}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	service, repo := setupService(t)

	registered, _, err := service.Register(ctx, testRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		client, token, err := service.Login(ctx, "ana@example.com", "secreto123")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if client.ID != registered.ID {
			t.Errorf("Login() client = %d, want %d", client.ID, registered.ID)
		}
		if token == "" {
			t.Error("expected a token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login(ctx, "ana@example.com", "incorrecta")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := service.Login(ctx, "nadie@example.com", "secreto123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("deleted client", func(t *testing.T) {
		if err := repo.SoftDelete(ctx, registered.ID); err != nil {
			t.Fatalf("SoftDelete() error = %v", err)
		}
		_, _, err := service.Login(ctx, "ana@example.com", "secreto123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestService_Profile(t *testing.T) {
	ctx := context.Background()
	service, repo := setupService(t)

	registered, _, err := service.Register(ctx, testRegistration())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	client, err := service.Profile(ctx, registered.ID)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if client.Correo != "ana@example.com" {
		t.Errorf("Profile() correo = %q", client.Correo)
	}

	if _, err := service.Profile(ctx, 999); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("Profile(999) error = %v, want ErrClientNotFound", err)
	}

	if err := repo.SoftDelete(ctx, registered.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}
	if _, err := service.Profile(ctx, registered.ID); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("Profile() of deleted client error = %v, want ErrClientNotFound", err)
	}
}

func TestService_IssueEntityToken(t *testing.T) {
	service, _ := setupService(t)

	token, err := service.IssueEntityToken(KindBook, 3)
	if err != nil {
		t.Fatalf("IssueEntityToken() error = %v", err)
	}

	claims, err := service.tokens.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.Kind != KindBook || claims.Subject != "3" {
		t.Errorf("claims = %+v", claims)
	}
	if ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time); ttl != time.Minute {
		t.Errorf("entity token ttl = %v, want 1m", ttl)
	}

	// Entity tokens never authenticate
	if _, err := service.Authenticate(token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Authenticate(entity token) error = %v, want ErrUnauthorized", err)
	}
}
