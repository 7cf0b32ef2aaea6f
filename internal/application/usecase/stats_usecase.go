package usecase

import (
	"context"

	"github.com/jhoicas/invitados-api/internal/application/dto"
	"github.com/jhoicas/invitados-api/internal/domain/repository"
)

// StatsUseCase conteos agregados sobre los invitados. Se calculan en cada
// llamada directamente sobre el almacén, sin caché, y están disponibles para
// cualquier usuario autenticado sin filtro por rol.
type StatsUseCase struct {
	repo repository.GuestRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.GuestRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Compute devuelve los conteos actuales.
func (uc *StatsUseCase) Compute(ctx context.Context) (*dto.StatsResponse, error) {
	s, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalGuests:      s.TotalGuests,
		EnteredGuests:    s.EnteredGuests,
		PendingGuests:    s.PendingGuests,
		VIPGuests:        s.VIPGuests,
		GeneralGuests:    s.GeneralGuests,
		InvitacionGuests: s.InvitacionGuests,
		GiftsRegistered:  s.GiftsRegistered,
	}, nil
}
