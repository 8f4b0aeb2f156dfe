package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/application/usecase"
)

// AnalyticsHandler expone el panel de analítica y el tablero (protegido).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Analytics godoc
// @Summary      Panel de analítica de ventas
// @Description  Serie diaria, top de productos, distribuciones y métricas de clientes.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días de la serie de ventas"  default(7)
// @Success      200  {object}  dto.AnalyticsResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) Analytics(c *fiber.Ctx) error {
	days := c.QueryInt("days", usecase.DefaultTrendDays)
	out, err := h.uc.Analytics(c.UserContext(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Resumen del tablero principal
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard(c.UserContext()))
}
