package http

import (
	"encoding/base64"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invitados-api/internal/application/dto"
	"github.com/jhoicas/invitados-api/internal/application/usecase"
	"github.com/jhoicas/invitados-api/internal/domain"
	"github.com/jhoicas/invitados-api/pkg/qr"
	"github.com/jhoicas/invitados-api/pkg/validation"
	"github.com/rs/zerolog/log"
)

// GuestHandler maneja las peticiones HTTP de invitados (protegido).
type GuestHandler struct {
	uc    *usecase.GuestUseCase
	stats *usecase.StatsUseCase
}

// NewGuestHandler construye el handler.
func NewGuestHandler(uc *usecase.GuestUseCase, stats *usecase.StatsUseCase) *GuestHandler {
	return &GuestHandler{uc: uc, stats: stats}
}

// guestError traduce los errores de dominio del ciclo de vida de invitados
// a códigos HTTP. Solo aquí se hace el mapeo; los use cases devuelven
// errores de dominio puros.
func guestError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrGuestNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invitado no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene acceso a este invitado"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "el invitado ya registró su ingreso"})
	case errors.Is(err, domain.ErrInvalidOperation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_OPERATION", Message: "solo las entradas de invitación registran regalo"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del invitado inválidos"})
	case errors.Is(err, domain.ErrDuplicateQRCode):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código QR ya está en uso"})
	default:
		return internalError(c, err)
	}
}

// Create godoc
// @Summary      Registrar invitado
// @Tags         guests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGuestRequest  true  "Datos del invitado"
// @Success      201   {object}  dto.CreateGuestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/guests [post]
func (h *GuestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGuestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del invitado inválidos", Details: validation.ToDetails(err)})
	}
	out, err := h.uc.Create(c.Context(), principal(c), in)
	if err != nil {
		return guestError(c, err)
	}
	resp := dto.CreateGuestResponse{Guest: *out}
	// La imagen es solo parte de la respuesta, nunca del estado persistido;
	// si el render falla el invitado ya quedó creado y se responde sin imagen.
	if png, err := qr.RenderPNG(out.QRCode, 256); err == nil {
		resp.QRImage = base64.StdEncoding.EncodeToString(png)
	} else {
		log.Warn().Err(err).Str("guest_id", out.ID).Msg("no se pudo renderizar el QR")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar invitados visibles para el usuario
// @Tags         guests
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "pendiente|ingresado|cancelado"
// @Param        ticket_type  query  string  false  "vip|general|invitacion"
// @Success      200  {object}  dto.GuestListResponse
// @Router       /api/guests [get]
func (h *GuestHandler) List(c *fiber.Ctx) error {
	in := dto.ListGuestsRequest{
		Status:     c.Query("status"),
		TicketType: c.Query("ticket_type"),
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos", Details: validation.ToDetails(err)})
	}
	out, err := h.uc.List(c.Context(), principal(c), in)
	if err != nil {
		return guestError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener invitado por ID
// @Tags         guests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del invitado"
// @Success      200  {object}  dto.GuestResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guests/{id} [get]
func (h *GuestHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.Context(), principal(c), id)
	if err != nil {
		return guestError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar invitado
// @Tags         guests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del invitado"
// @Param        body  body  dto.UpdateGuestRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.GuestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guests/{id} [put]
func (h *GuestHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateGuestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del invitado inválidos", Details: validation.ToDetails(err)})
	}
	out, err := h.uc.Update(c.Context(), principal(c), id, in)
	if err != nil {
		return guestError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar invitado
// @Tags         guests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del invitado"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guests/{id} [delete]
func (h *GuestHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), principal(c), id); err != nil {
		return guestError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// RegisterEntry godoc
// @Summary      Registrar ingreso (check-in)
// @Tags         guests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del invitado"
// @Success      200  {object}  dto.GuestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guests/{id}/entry [post]
func (h *GuestHandler) RegisterEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.RegisterEntry(c.Context(), principal(c), id)
	if err != nil {
		return guestError(c, err)
	}
	return c.JSON(out)
}

// RegisterGift godoc
// @Summary      Registrar regalo (solo entradas de invitación)
// @Tags         guests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del invitado"
// @Param        body  body  dto.RegisterGiftRequest  true  "Regalo"
// @Success      200   {object}  dto.GuestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guests/{id}/gift [post]
func (h *GuestHandler) RegisterGift(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.RegisterGiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "regalo inválido", Details: validation.ToDetails(err)})
	}
	out, err := h.uc.RegisterGift(c.Context(), principal(c), id, in)
	if err != nil {
		return guestError(c, err)
	}
	return c.JSON(out)
}

// VerifyByQR godoc
// @Summary      Verificar invitado por código QR
// @Tags         guests
// @Security     Bearer
// @Produce      json
// @Param        qrCode  path  string  true  "Código QR"
// @Success      200  {object}  dto.GuestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guests/verify/{qrCode} [get]
func (h *GuestHandler) VerifyByQR(c *fiber.Ctx) error {
	code := c.Params("qrCode")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_QR", Message: "código QR requerido"})
	}
	out, err := h.uc.VerifyByQR(c.Context(), code)
	if err != nil {
		return guestError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de invitados
// @Tags         guests
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/guests/stats [get]
func (h *GuestHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.Compute(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
