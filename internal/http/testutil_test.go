package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/bookexchange/internal/auth"
	"github.com/mrlokans/bookexchange/internal/config"
	"github.com/mrlokans/bookexchange/internal/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSigningKey = "test-signing-key-for-bookexchange"

type testServer struct {
	t       *testing.T
	db      *database.Database
	issuer  *auth.TokenIssuer
	handler http.Handler
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// newTestServer wires the full router against an in-memory database.
// Options adjust the router configuration before it is built.
func newTestServer(t *testing.T, opts ...func(*RouterConfig)) *testServer {
	t.Helper()

	db := setupTestDB(t)
	issuer := auth.NewTokenIssuer([]byte(testSigningKey), "bookexchange-test")
	service := auth.NewService(db.Repositories().Clients, issuer, config.Auth{
		TokenTTL:       time.Hour,
		EntityTokenTTL: time.Hour,
		BcryptCost:     bcrypt.MinCost,
	})

	cfg := RouterConfig{
		Database:      db,
		Logger:        quietLogger(),
		Accounts:      service,
		Tokens:        service,
		Authenticator: service,
		Version:       "test",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &testServer{
		t:       t,
		db:      db,
		issuer:  issuer,
		handler: StripTrailingSlash(NewRouter(cfg)),
	}
}

// do sends a request with an optional JSON body and bearer token.
func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// idOf reads the numeric id of the record nested under key.
func idOf(t *testing.T, body map[string]any, key string) uint {
	t.Helper()
	record, ok := body[key].(map[string]any)
	require.True(t, ok, "missing %q in %v", key, body)
	id, ok := record["id"].(float64)
	require.True(t, ok, "missing id in %v", record)
	return uint(id)
}

func registrationBody() map[string]any {
	return map[string]any{
		"nombreCompleto": "Ana Pérez",
		"correo":         "ana@example.com",
		"contrasenia":    "secreto123",
		"telefono":       "+56911111111",
	}
}

func bookBody(titulo string) map[string]any {
	return map[string]any{
		"titulo":                 titulo,
		"aditorial":              "Zig-Zag",
		"nivel":                  "Basica",
		"asignatura":             "Lenguaje",
		"estadoNuevoUsado":       "usado",
		"condicionOriginalCopia": "original",
		"comentarios":            "sin rayas",
	}
}

// register creates the default client and returns its id and token.
func (s *testServer) register() (uint, string) {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/registrar", "", registrationBody())
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeObject(s.t, w)
	return idOf(s.t, body, "usuario"), body["access_token"].(string)
}

func (s *testServer) createBook(titulo string) uint {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/libro", "", bookBody(titulo))
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return idOf(s.t, decodeObject(s.t, w), "libro")
}

func (s *testServer) createAuthor(nombre string) uint {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/autor", "", map[string]any{"nombre": nombre, "pais": "Chile"})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return idOf(s.t, decodeObject(s.t, w), "autor")
}

func (s *testServer) createAddress(clienteID uint) uint {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/direccion", "", map[string]any{
		"cliente_id":   clienteID,
		"direccion":    "Av. Providencia",
		"numero":       1234,
		"comuna":       "Providencia",
		"tipoVivienda": "departamento",
		"numDepto":     "52",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return idOf(s.t, decodeObject(s.t, w), "direccion")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
