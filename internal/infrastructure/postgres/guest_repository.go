package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/invitados-api/internal/domain"
	"github.com/jhoicas/invitados-api/internal/domain/entity"
	"github.com/jhoicas/invitados-api/internal/domain/repository"
)

var _ repository.GuestRepository = (*GuestRepo)(nil)

// GuestRepo implementación del puerto GuestRepository sobre PostgreSQL.
type GuestRepo struct {
	pool *pgxpool.Pool
}

// NewGuestRepository construye el adaptador de persistencia para invitados.
func NewGuestRepository(pool *pgxpool.Pool) *GuestRepo {
	return &GuestRepo{pool: pool}
}

const guestCols = `id, name, email, phone, ticket_type, qr_code, status, gift, entry_time, created_by, created_at, updated_at`

func scanGuest(row pgx.Row) (*entity.Guest, error) {
	var g entity.Guest
	err := row.Scan(
		&g.ID, &g.Name, &g.Email, &g.Phone, &g.TicketType, &g.QRCode,
		&g.Status, &g.Gift, &g.EntryTime, &g.CreatedBy, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

// Create persiste un invitado nuevo. Un qr_code duplicado se traduce a
// domain.ErrDuplicateQRCode (constraint UNIQUE guests_qr_code_key).
func (r *GuestRepo) Create(ctx context.Context, g *entity.Guest) error {
	query := `
		INSERT INTO guests (id, name, email, phone, ticket_type, qr_code, status, gift, entry_time, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		g.ID, g.Name, g.Email, g.Phone, g.TicketType, g.QRCode,
		g.Status, g.Gift, g.EntryTime, g.CreatedBy, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateQRCode
		}
		return fmt.Errorf("insert guest: %w", err)
	}
	return nil
}

// GetByID obtiene un invitado por ID.
func (r *GuestRepo) GetByID(ctx context.Context, id string) (*entity.Guest, error) {
	query := `SELECT ` + guestCols + ` FROM guests WHERE id = $1`
	g, err := scanGuest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get guest by id: %w", err)
	}
	return g, nil
}

// GetByQRCode obtiene un invitado por su código QR (único).
func (r *GuestRepo) GetByQRCode(ctx context.Context, qrCode string) (*entity.Guest, error) {
	query := `SELECT ` + guestCols + ` FROM guests WHERE qr_code = $1`
	g, err := scanGuest(r.pool.QueryRow(ctx, query, qrCode))
	if err != nil {
		return nil, fmt.Errorf("get guest by qr code: %w", err)
	}
	return g, nil
}

// List lista invitados según filtros, ordenados por creación descendente.
func (r *GuestRepo) List(ctx context.Context, f repository.GuestFilter) ([]*entity.Guest, error) {
	query := `SELECT ` + guestCols + ` FROM guests WHERE 1=1`
	args := []any{}
	n := 0
	if f.Status != "" {
		n++
		query += fmt.Sprintf(" AND status = $%d", n)
		args = append(args, f.Status)
	}
	if f.TicketType != "" {
		n++
		query += fmt.Sprintf(" AND ticket_type = $%d", n)
		args = append(args, f.TicketType)
	}
	if f.CreatedBy != "" {
		n++
		query += fmt.Sprintf(" AND created_by = $%d", n)
		args = append(args, f.CreatedBy)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var list []*entity.Guest
	for rows.Next() {
		var g entity.Guest
		if err := rows.Scan(
			&g.ID, &g.Name, &g.Email, &g.Phone, &g.TicketType, &g.QRCode,
			&g.Status, &g.Gift, &g.EntryTime, &g.CreatedBy, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables de un invitado. qr_code, created_by
// y created_at no se tocan.
func (r *GuestRepo) Update(ctx context.Context, g *entity.Guest) error {
	query := `
		UPDATE guests SET name = $2, email = $3, phone = $4, ticket_type = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, g.ID, g.Name, g.Email, g.Phone, g.TicketType, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update guest: %w", err)
	}
	return nil
}

// Delete elimina un invitado. Devuelve false si no existía.
func (r *GuestRepo) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := r.pool.Exec(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete guest: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// RegisterEntry hace la transición pendiente -> ingresado en una sola
// escritura condicional: de N llamadas concurrentes sobre el mismo ID solo
// una encuentra status = 'pendiente' y toca la fila; el resto recibe
// (nil, nil).
func (r *GuestRepo) RegisterEntry(ctx context.Context, id string, entryTime time.Time) (*entity.Guest, error) {
	query := `
		UPDATE guests
		SET status = $2, entry_time = $3, updated_at = $3
		WHERE id = $1 AND status = $4
		RETURNING ` + guestCols
	g, err := scanGuest(r.pool.QueryRow(ctx, query, id, entity.StatusIngresado, entryTime, entity.StatusPendiente))
	if err != nil {
		return nil, fmt.Errorf("register entry: %w", err)
	}
	return g, nil
}

// SetGift asigna o sobreescribe el regalo del invitado.
func (r *GuestRepo) SetGift(ctx context.Context, id, gift string) (*entity.Guest, error) {
	query := `
		UPDATE guests
		SET gift = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + guestCols
	g, err := scanGuest(r.pool.QueryRow(ctx, query, id, gift))
	if err != nil {
		return nil, fmt.Errorf("set gift: %w", err)
	}
	return g, nil
}

// Stats calcula los conteos agregados en una sola consulta.
func (r *GuestRepo) Stats(ctx context.Context) (*repository.GuestStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'ingresado'),
			COUNT(*) FILTER (WHERE status = 'pendiente'),
			COUNT(*) FILTER (WHERE ticket_type = 'vip'),
			COUNT(*) FILTER (WHERE ticket_type = 'general'),
			COUNT(*) FILTER (WHERE ticket_type = 'invitacion'),
			COUNT(*) FILTER (WHERE gift IS NOT NULL)
		FROM guests`
	var s repository.GuestStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalGuests, &s.EnteredGuests, &s.PendingGuests,
		&s.VIPGuests, &s.GeneralGuests, &s.InvitacionGuests, &s.GiftsRegistered,
	)
	if err != nil {
		return nil, fmt.Errorf("guest stats: %w", err)
	}
	return &s, nil
}
