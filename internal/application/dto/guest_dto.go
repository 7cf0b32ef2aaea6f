package dto

import "time"

// CreateGuestRequest entrada para registrar un invitado.
// QRCode es opcional: si viene vacío se genera uno al crear.
type CreateGuestRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	TicketType string `json:"ticket_type" validate:"required,oneof=vip general invitacion"`
	QRCode     string `json:"qr_code" validate:"omitempty,max=200"`
}

// UpdateGuestRequest campos modificables de un invitado. QRCode, CreatedBy y
// CreatedAt no se exponen: son inmutables.
type UpdateGuestRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone" validate:"omitempty,max=50"`
	TicketType *string `json:"ticket_type" validate:"omitempty,oneof=vip general invitacion"`
}

// RegisterGiftRequest entrada para registrar el regalo de un invitado.
type RegisterGiftRequest struct {
	Gift string `json:"gift" validate:"required,min=1,max=300"`
}

// ListGuestsRequest filtros de listado (query params).
type ListGuestsRequest struct {
	Status     string `query:"status" validate:"omitempty,oneof=pendiente ingresado cancelado"`
	TicketType string `query:"ticket_type" validate:"omitempty,oneof=vip general invitacion"`
}

// GuestResponse salida de un invitado.
type GuestResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	TicketType string     `json:"ticket_type"`
	QRCode     string     `json:"qr_code"`
	Status     string     `json:"status"`
	Gift       *string    `json:"gift,omitempty"`
	EntryTime  *time.Time `json:"entry_time,omitempty"`
	CreatedBy  string     `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateGuestResponse invitado creado más la imagen del QR en base64
// (la imagen no se persiste; se renderiza para la respuesta).
type CreateGuestResponse struct {
	Guest   GuestResponse `json:"guest"`
	QRImage string        `json:"qr_image,omitempty"` // PNG en base64
}

// GuestListResponse listado de invitados.
type GuestListResponse struct {
	Items []GuestResponse `json:"items"`
	Total int             `json:"total"`
}

// StatsResponse conteos agregados de invitados.
type StatsResponse struct {
	TotalGuests      int64 `json:"total_guests"`
	EnteredGuests    int64 `json:"entered_guests"`
	PendingGuests    int64 `json:"pending_guests"`
	VIPGuests        int64 `json:"vip_guests"`
	GeneralGuests    int64 `json:"general_guests"`
	InvitacionGuests int64 `json:"invitacion_guests"`
	GiftsRegistered  int64 `json:"gifts_registered"`
}
