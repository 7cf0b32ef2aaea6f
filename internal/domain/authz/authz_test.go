package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invitados-api/internal/domain/authz"
	"github.com/jhoicas/invitados-api/internal/domain/entity"
)

func TestCan_Admin_SinRestricciones(t *testing.T) {
	actions := []authz.Action{
		authz.ActionCreate, authz.ActionRead, authz.ActionList,
		authz.ActionUpdate, authz.ActionDelete,
		authz.ActionRegisterEntry, authz.ActionRegisterGift,
		authz.ActionVerifyQR, authz.ActionStats,
	}
	for _, a := range actions {
		assert.True(t, authz.Can(entity.RoleAdmin, a, false), "admin debe poder %s sin ser dueño", a)
	}
}

func TestCan_Staff_SoloLoSuyo(t *testing.T) {
	tests := []struct {
		action  authz.Action
		owner   bool
		allowed bool
	}{
		{authz.ActionCreate, false, true}, // crear no depende de propiedad
		{authz.ActionRead, true, true},
		{authz.ActionRead, false, false},
		{authz.ActionUpdate, true, true},
		{authz.ActionUpdate, false, false},
		{authz.ActionDelete, true, true},
		{authz.ActionDelete, false, false},
		{authz.ActionRegisterEntry, true, true},
		{authz.ActionRegisterEntry, false, false},
		{authz.ActionRegisterGift, true, true},
		{authz.ActionRegisterGift, false, false},
		{authz.ActionVerifyQR, false, true}, // el escaneo en puerta resuelve cualquier código
		{authz.ActionStats, false, true},
	}
	for _, tt := range tests {
		got := authz.Can(entity.RoleStaff, tt.action, tt.owner)
		assert.Equal(t, tt.allowed, got, "staff %s (owner=%v)", tt.action, tt.owner)
	}
}

func TestCan_RolDesconocidoNiegaTodo(t *testing.T) {
	for _, role := range []string{"", "visitante", "ADMIN"} {
		assert.False(t, authz.Can(role, authz.ActionRead, true), "rol %q no debe tener acceso", role)
		assert.False(t, authz.Can(role, authz.ActionCreate, false))
	}
}

func TestScopesToOwner(t *testing.T) {
	assert.False(t, authz.ScopesToOwner(entity.RoleAdmin))
	assert.True(t, authz.ScopesToOwner(entity.RoleStaff))
	assert.True(t, authz.ScopesToOwner("desconocido"), "rol desconocido no debe ampliar visibilidad")
}
