package repository

import (
	"context"
	"time"

	"github.com/jhoicas/invitados-api/internal/domain/entity"
)

// GuestFilter criterios opcionales para listados de invitados.
type GuestFilter struct {
	Status     string // vacío = todos
	TicketType string // vacío = todos
	CreatedBy  string // vacío = todos (admin); staff lista solo lo suyo
}

// GuestStats conteos agregados sobre la tabla de invitados.
type GuestStats struct {
	TotalGuests      int64
	EnteredGuests    int64
	PendingGuests    int64
	VIPGuests        int64
	GeneralGuests    int64
	InvitacionGuests int64
	GiftsRegistered  int64
}

// GuestRepository define el puerto de persistencia para Guest (DIP).
// Las consultas devuelven (nil, nil) cuando el registro no existe.
type GuestRepository interface {
	Create(ctx context.Context, g *entity.Guest) error
	GetByID(ctx context.Context, id string) (*entity.Guest, error)
	GetByQRCode(ctx context.Context, qrCode string) (*entity.Guest, error)
	List(ctx context.Context, f GuestFilter) ([]*entity.Guest, error)
	Update(ctx context.Context, g *entity.Guest) error
	Delete(ctx context.Context, id string) (bool, error)
	// RegisterEntry hace la transición pendiente -> ingresado como escritura
	// condicional única. Devuelve (nil, nil) si el invitado no estaba en
	// pendiente (otro llamador ganó la carrera o ya estaba ingresado/cancelado).
	RegisterEntry(ctx context.Context, id string, entryTime time.Time) (*entity.Guest, error)
	// SetGift asigna (o sobreescribe) el regalo. Devuelve (nil, nil) si el
	// invitado no existe.
	SetGift(ctx context.Context, id, gift string) (*entity.Guest, error)
	Stats(ctx context.Context) (*GuestStats, error)
}
