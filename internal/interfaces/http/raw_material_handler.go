package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/application/usecase"
	"github.com/khakhra/business-manager/internal/domain"
)

// RawMaterialHandler maneja las peticiones HTTP para RawMaterial (protegido).
type RawMaterialHandler struct {
	uc *usecase.RawMaterialUseCase
}

// NewRawMaterialHandler construye el handler.
func NewRawMaterialHandler(uc *usecase.RawMaterialUseCase) *RawMaterialHandler {
	return &RawMaterialHandler{uc: uc}
}

// List godoc
// @Summary      Listar insumos
// @Tags         raw-materials
// @Security     Bearer
// @Produce      json
// @Param        lowStock  query  bool  false  "Solo insumos en o bajo su umbral"
// @Success      200  {array}  dto.RawMaterialResponse
// @Router       /api/raw-materials [get]
func (h *RawMaterialHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("lowStock") {
		return c.JSON(h.uc.LowStock(c.UserContext()))
	}
	return c.JSON(h.uc.List(c.UserContext()))
}

// GetByID godoc
// @Summary      Obtener insumo por ID
// @Tags         raw-materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del insumo"
// @Success      200  {object}  dto.RawMaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [get]
func (h *RawMaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar insumo
// @Tags         raw-materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRawMaterialRequest  true  "Datos del insumo"
// @Success      201   {object}  dto.RawMaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/raw-materials [post]
func (h *RawMaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido; cantidad y costo no negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar insumo
// @Tags         raw-materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.UpdateRawMaterialRequest  true  "Registro completo"
// @Success      200   {object}  dto.RawMaterialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [put]
func (h *RawMaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido; cantidad y costo no negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar insumo
// @Tags         raw-materials
// @Security     Bearer
// @Param        id  path  string  true  "ID del insumo"
// @Success      204  "borrado"
// @Router       /api/raw-materials/{id} [delete]
func (h *RawMaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
