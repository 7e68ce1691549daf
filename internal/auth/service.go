package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mrlokans/bookexchange/internal/config"
	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
	"github.com/mrlokans/bookexchange/internal/entities"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrClientNotFound     = errors.New("client not found")
)

// ClientRepository defines the client data access the service needs.
type ClientRepository interface {
	Create(ctx context.Context, client *entities.Client) error
	FindByID(ctx context.Context, id uint) (*entities.Client, error)
	FindByEmail(ctx context.Context, correo string) (*entities.Client, error)
}

// Registration carries the fields of a new client account.
type Registration struct {
	NombreCompleto string
	Correo         string
	Contrasenia    string
	Telefono       string
}

// Service handles client registration, login and token checks.
type Service struct {
	clients ClientRepository
	tokens  *TokenIssuer
	config  config.Auth
}

// NewService creates a new authentication service.
func NewService(clients ClientRepository, tokens *TokenIssuer, cfg config.Auth) *Service {
	return &Service{
		clients: clients,
		tokens:  tokens,
		config:  cfg,
	}
}

// Register creates an active client and returns it with a client token.
// The email must not belong to any existing client, deleted or not.
func (s *Service) Register(ctx context.Context, reg Registration) (*entities.Client, string, error) {
	if _, err := s.clients.FindByEmail(ctx, reg.Correo); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, lifecycle.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check existing client: %w", err)
	}

	passwordHash, err := s.HashPassword(reg.Contrasenia)
	if err != nil {
		return nil, "", err
	}

	client := &entities.Client{
		NombreCompleto: reg.NombreCompleto,
		Correo:         reg.Correo,
		Contrasenia:    passwordHash,
		Telefono:       reg.Telefono,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		if errors.Is(err, lifecycle.ErrConflict) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create client: %w", err)
	}

	token, err := s.tokens.Issue(KindClient, client.ID, s.config.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return client, token, nil
}

// Login validates credentials and returns the client with a fresh token.
// Unknown emails, deleted clients and wrong passwords all yield
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, correo, contrasenia string) (*entities.Client, string, error) {
	client, err := s.clients.FindByEmail(ctx, correo)
	if err != nil {
		if errors.Is(err, lifecycle.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find client: %w", err)
	}
	if client.IsDeleted() || !VerifyPassword(contrasenia, client.Contrasenia) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(KindClient, client.ID, s.config.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return client, token, nil
}

// Profile returns the active client with the given id.
func (s *Service) Profile(ctx context.Context, clientID uint) (*entities.Client, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, lifecycle.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if client.IsDeleted() {
		return nil, ErrClientNotFound
	}
	return client, nil
}

// Authenticate resolves a bearer token to the client id it was issued for.
func (s *Service) Authenticate(token string) (uint, error) {
	return s.tokens.IdentityOf(token)
}

// IssueEntityToken mints the token returned when a non-client record is
// created.
func (s *Service) IssueEntityToken(kind Kind, id uint) (string, error) {
	return s.tokens.Issue(kind, id, s.entityTokenTTL())
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func (s *Service) entityTokenTTL() time.Duration {
	if s.config.EntityTokenTTL > 0 {
		return s.config.EntityTokenTTL
	}
	return s.config.TokenTTL
}
