package schema

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name      string
		rules     Rules
		wantField string
		wantMsg   string
	}{
		{
			name: "all present",
			rules: Rules{
				Required("correo", "ana@example.com", "correo es requerido"),
				Required("numero", 12, "numero es requerido"),
			},
		},
		{
			name: "empty string",
			rules: Rules{
				Required("correo", "", "correo es requerido"),
			},
			wantField: "correo",
			wantMsg:   "correo es requerido",
		},
		{
			name: "zero number",
			rules: Rules{
				Required("cliente_id", uint(0), "cliente_id es requerido"),
			},
			wantField: "cliente_id",
			wantMsg:   "cliente_id es requerido",
		},
		{
			name: "first declared failure wins",
			rules: Rules{
				Required("correo", "ana@example.com", "correo es requerido"),
				Required("contrasenia", "", "contrasenia es requerida"),
				Required("telefono", "", "telefono es requerido"),
			},
			wantField: "contrasenia",
			wantMsg:   "contrasenia es requerida",
		},
		{
			name: "whitespace counts as present",
			rules: Rules{
				Required("comentarios", " ", "comentarios es requerido"),
			},
		},
		{
			name: "extra rules",
			rules: Rules{
				{Field: "estado", Value: "otro", Rules: []validation.Rule{
					validation.In("activo", "borrado").Error("estado invalido"),
				}},
			},
			wantField: "estado",
			wantMsg:   "estado invalido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fe *FieldError
			require.True(t, errors.As(err, &fe), "expected FieldError, got %v", err)
			assert.Equal(t, tt.wantField, fe.Field)
			assert.Equal(t, tt.wantMsg, fe.Message)
		})
	}
}
