package entity

import "time"

// Tipos de entrada válidos para Guest.
const (
	TicketVIP        = "vip"
	TicketGeneral    = "general"
	TicketInvitacion = "invitacion"
)

// Estados válidos para Guest. La transición implementada es
// pendiente -> ingresado (vía registro de ingreso). "cancelado" está
// declarado en el modelo pero ninguna operación lo produce hoy.
const (
	StatusPendiente = "pendiente"
	StatusIngresado = "ingresado"
	StatusCancelado = "cancelado"
)

// ValidTicketType indica si s es un tipo de entrada conocido.
func ValidTicketType(s string) bool {
	return s == TicketVIP || s == TicketGeneral || s == TicketInvitacion
}

// ValidStatus indica si s es un estado conocido.
func ValidStatus(s string) bool {
	return s == StatusPendiente || s == StatusIngresado || s == StatusCancelado
}

// Guest representa un invitado del evento.
type Guest struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	TicketType string     // vip, general, invitacion
	QRCode     string     // único a nivel global, asignado al crear
	Status     string     // pendiente, ingresado, cancelado
	Gift       *string    // solo con sentido cuando TicketType = invitacion
	EntryTime  *time.Time // no nulo si y solo si Status = ingresado
	CreatedBy  string     // ID del usuario que lo creó; inmutable
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOwnedBy indica si el invitado fue creado por el usuario dado.
func (g *Guest) IsOwnedBy(userID string) bool {
	return g.CreatedBy == userID
}
