package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invitados-api/internal/application/dto"
	"github.com/jhoicas/invitados-api/pkg/validation"
)

func TestStruct_CreateGuestValido(t *testing.T) {
	in := dto.CreateGuestRequest{
		Name:       "Ana",
		Email:      "ana@x.com",
		TicketType: "vip",
	}
	assert.NoError(t, validation.Struct(in))
}

func TestStruct_CreateGuestInvalido_DetallesPorCampo(t *testing.T) {
	in := dto.CreateGuestRequest{
		Name:       "",
		Email:      "no-es-email",
		TicketType: "platino",
	}
	err := validation.Struct(in)
	require.Error(t, err)

	details := validation.ToDetails(err)
	// Las claves usan el nombre del tag json, no el del campo Go
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "ticket_type")
	assert.Equal(t, "es requerido", details["name"])
	assert.Equal(t, "debe ser un email válido", details["email"])
	assert.Contains(t, details["ticket_type"], "vip")
}

func TestStruct_RegisterRequest_PasswordCorta(t *testing.T) {
	err := validation.Struct(dto.RegisterRequest{Email: "a@x.com", Password: "corta"})
	require.Error(t, err)

	details := validation.ToDetails(err)
	assert.Contains(t, details["password"], "al menos 8")
}

func TestToDetails_ErrorNoDeValidacion(t *testing.T) {
	details := validation.ToDetails(assert.AnError)
	assert.Equal(t, map[string]string{"payload": "entrada inválida"}, details)
}

func TestToDetails_Nil(t *testing.T) {
	assert.Nil(t, validation.ToDetails(nil))
}
