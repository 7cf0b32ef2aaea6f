package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/invitados-api/internal/application/dto"
	"github.com/jhoicas/invitados-api/internal/domain"
	"github.com/jhoicas/invitados-api/internal/domain/authz"
	"github.com/jhoicas/invitados-api/internal/domain/entity"
	"github.com/jhoicas/invitados-api/internal/domain/repository"
	"github.com/jhoicas/invitados-api/pkg/qr"
)

// GuestUseCase ciclo de vida de invitados: alta, consulta, actualización,
// eliminación, registro de ingreso, registro de regalo y verificación por QR.
// Toda operación pasa primero por la tabla de capacidades de authz; para las
// operaciones sobre un registro concreto la existencia se resuelve antes que
// la propiedad (un registro inexistente siempre es 404, nunca 403).
type GuestUseCase struct {
	repo repository.GuestRepository
}

// NewGuestUseCase construye el caso de uso.
func NewGuestUseCase(repo repository.GuestRepository) *GuestUseCase {
	return &GuestUseCase{repo: repo}
}

// Create registra un invitado nuevo en estado pendiente. Si el caller no
// trae qr_code se genera uno; la unicidad la garantiza el constraint de la DB.
func (uc *GuestUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateGuestRequest) (*dto.GuestResponse, error) {
	if !authz.Can(p.Role, authz.ActionCreate, false) {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || !entity.ValidTicketType(in.TicketType) {
		return nil, domain.ErrInvalidInput
	}
	code := strings.TrimSpace(in.QRCode)
	if code == "" {
		code = qr.NewCode()
	}
	now := time.Now()
	g := &entity.Guest{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      email,
		Phone:      strings.TrimSpace(in.Phone),
		TicketType: in.TicketType,
		QRCode:     code,
		Status:     entity.StatusPendiente,
		CreatedBy:  p.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return toGuestResponse(g), nil
}

// GetByID obtiene un invitado; staff solo puede ver los propios.
func (uc *GuestUseCase) GetByID(ctx context.Context, p authz.Principal, id string) (*dto.GuestResponse, error) {
	g, err := uc.authorized(ctx, p, authz.ActionRead, id)
	if err != nil {
		return nil, err
	}
	return toGuestResponse(g), nil
}

// List devuelve los invitados visibles para el principal, con filtros
// opcionales de estado y tipo de entrada, ordenados por creación descendente.
func (uc *GuestUseCase) List(ctx context.Context, p authz.Principal, in dto.ListGuestsRequest) (*dto.GuestListResponse, error) {
	f := repository.GuestFilter{
		Status:     in.Status,
		TicketType: in.TicketType,
	}
	if authz.ScopesToOwner(p.Role) {
		f.CreatedBy = p.ID
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GuestResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGuestResponse(g))
	}
	return &dto.GuestListResponse{Items: items, Total: len(items)}, nil
}

// Update modifica los campos mutables de un invitado. QRCode, CreatedBy y
// CreatedAt nunca cambian.
func (uc *GuestUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateGuestRequest) (*dto.GuestResponse, error) {
	g, err := uc.authorized(ctx, p, authz.ActionUpdate, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		g.Name = name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return nil, domain.ErrInvalidInput
		}
		g.Email = email
	}
	if in.Phone != nil {
		g.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.TicketType != nil {
		if !entity.ValidTicketType(*in.TicketType) {
			return nil, domain.ErrInvalidInput
		}
		g.TicketType = *in.TicketType
	}
	g.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return toGuestResponse(g), nil
}

// Delete elimina un invitado.
func (uc *GuestUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if _, err := uc.authorized(ctx, p, authz.ActionDelete, id); err != nil {
		return err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrGuestNotFound
	}
	return nil
}

// RegisterEntry registra el ingreso físico: pendiente -> ingresado con
// entry_time. La escritura es condicional en el repositorio, de modo que
// ante N llamadas concurrentes exactamente una gana y el resto recibe
// ErrInvalidTransition.
func (uc *GuestUseCase) RegisterEntry(ctx context.Context, p authz.Principal, id string) (*dto.GuestResponse, error) {
	if _, err := uc.authorized(ctx, p, authz.ActionRegisterEntry, id); err != nil {
		return nil, err
	}
	g, err := uc.repo.RegisterEntry(ctx, id, time.Now())
	if err != nil {
		return nil, err
	}
	if g == nil {
		// Existía al autorizar: si la escritura condicional no tocó filas es
		// porque el estado ya no era pendiente.
		return nil, domain.ErrInvalidTransition
	}
	return toGuestResponse(g), nil
}

// RegisterGift registra el regalo de un invitado con entrada de invitación.
// Un regalo ya asignado se sobreescribe (flujo de corrección permitido).
func (uc *GuestUseCase) RegisterGift(ctx context.Context, p authz.Principal, id string, in dto.RegisterGiftRequest) (*dto.GuestResponse, error) {
	g, err := uc.authorized(ctx, p, authz.ActionRegisterGift, id)
	if err != nil {
		return nil, err
	}
	if g.TicketType != entity.TicketInvitacion {
		return nil, domain.ErrInvalidOperation
	}
	gift := strings.TrimSpace(in.Gift)
	if gift == "" {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.repo.SetGift(ctx, id, gift)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrGuestNotFound
	}
	return toGuestResponse(updated), nil
}

// VerifyByQR resuelve un invitado por su código QR. Cualquier usuario
// autenticado puede verificar: el personal que escanea en puerta necesita
// resolver códigos de invitados que no creó.
func (uc *GuestUseCase) VerifyByQR(ctx context.Context, qrCode string) (*dto.GuestResponse, error) {
	g, err := uc.repo.GetByQRCode(ctx, strings.TrimSpace(qrCode))
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrGuestNotFound
	}
	return toGuestResponse(g), nil
}

// authorized carga el invitado y aplica la tabla de capacidades: primero
// existencia (404), después propiedad (403).
func (uc *GuestUseCase) authorized(ctx context.Context, p authz.Principal, action authz.Action, id string) (*entity.Guest, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrGuestNotFound
	}
	if !authz.Can(p.Role, action, g.IsOwnedBy(p.ID)) {
		return nil, domain.ErrForbidden
	}
	return g, nil
}

func toGuestResponse(g *entity.Guest) *dto.GuestResponse {
	if g == nil {
		return nil
	}
	return &dto.GuestResponse{
		ID:         g.ID,
		Name:       g.Name,
		Email:      g.Email,
		Phone:      g.Phone,
		TicketType: g.TicketType,
		QRCode:     g.QRCode,
		Status:     g.Status,
		Gift:       g.Gift,
		EntryTime:  g.EntryTime,
		CreatedBy:  g.CreatedBy,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}
