package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrGuestNotFound      = errors.New("invitado no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicateQRCode    = errors.New("el código QR ya existe")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidTransition  = errors.New("el invitado ya registró su ingreso o fue cancelado")
	ErrInvalidOperation   = errors.New("solo los invitados con entrada de invitación pueden registrar regalo")
)
