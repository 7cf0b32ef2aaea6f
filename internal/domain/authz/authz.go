// Package authz decide qué puede hacer cada rol sobre los invitados.
// Es una función pura sobre una tabla estática de capacidades: nada de
// estado global ni consultas a la base de datos.
package authz

import "github.com/jhoicas/invitados-api/internal/domain/entity"

// Action identifica una operación sobre invitados.
type Action string

const (
	ActionCreate        Action = "create"
	ActionRead          Action = "read"
	ActionList          Action = "list"
	ActionUpdate        Action = "update"
	ActionDelete        Action = "delete"
	ActionRegisterEntry Action = "register_entry"
	ActionRegisterGift  Action = "register_gift"
	ActionVerifyQR      Action = "verify_qr"
	ActionStats         Action = "stats"
)

// Principal es la identidad autenticada que ejecuta la operación.
type Principal struct {
	ID   string
	Role string // admin, staff
}

// capability describe cómo un rol accede a una acción.
type capability int

const (
	deny      capability = iota
	allow                // sin restricción de propiedad
	ownerOnly            // solo sobre invitados creados por el principal
)

// table: admin todo; staff crea sin restricción y solo toca lo suyo.
// verify_qr y stats están abiertos a cualquier autenticado (el personal
// que escanea debe poder resolver códigos arbitrarios).
var table = map[string]map[Action]capability{
	entity.RoleAdmin: {
		ActionCreate:        allow,
		ActionRead:          allow,
		ActionList:          allow,
		ActionUpdate:        allow,
		ActionDelete:        allow,
		ActionRegisterEntry: allow,
		ActionRegisterGift:  allow,
		ActionVerifyQR:      allow,
		ActionStats:         allow,
	},
	entity.RoleStaff: {
		ActionCreate:        allow,
		ActionRead:          ownerOnly,
		ActionList:          ownerOnly,
		ActionUpdate:        ownerOnly,
		ActionDelete:        ownerOnly,
		ActionRegisterEntry: ownerOnly,
		ActionRegisterGift:  ownerOnly,
		ActionVerifyQR:      allow,
		ActionStats:         allow,
	},
}

// Can indica si un rol puede ejecutar la acción; isOwner aplica solo a
// las capacidades ownerOnly. Roles desconocidos niegan todo.
func Can(role string, action Action, isOwner bool) bool {
	caps, ok := table[role]
	if !ok {
		return false
	}
	switch caps[action] {
	case allow:
		return true
	case ownerOnly:
		return isOwner
	default:
		return false
	}
}

// ScopesToOwner indica si el listado debe filtrarse a los invitados
// creados por el principal (staff) o devolver todos (admin).
func ScopesToOwner(role string) bool {
	caps, ok := table[role]
	if !ok {
		return true
	}
	return caps[ActionList] == ownerOnly
}
