package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/application/usecase"
)

// ProfitLossHandler expone el estado de resultados (protegido).
type ProfitLossHandler struct {
	uc *usecase.ProfitLossUseCase
}

// NewProfitLossHandler construye el handler.
func NewProfitLossHandler(uc *usecase.ProfitLossUseCase) *ProfitLossHandler {
	return &ProfitLossHandler{uc: uc}
}

// Statement godoc
// @Summary      Estado de resultados del período
// @Description  period: today, week, month (default) o custom con startDate/endDate.
// @Tags         profit-loss
// @Security     Bearer
// @Produce      json
// @Param        period     query  string  false  "today | week | month | custom"  default(month)
// @Param        startDate  query  string  false  "YYYY-MM-DD (solo custom)"
// @Param        endDate    query  string  false  "YYYY-MM-DD (solo custom)"
// @Success      200  {object}  dto.ProfitLossResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/profit-loss [get]
func (h *ProfitLossHandler) Statement(c *fiber.Ctx) error {
	period := c.Query("period", "month")
	start, err := parseDateQuery(c, "startDate")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "startDate debe ser YYYY-MM-DD"})
	}
	end, err := parseDateQuery(c, "endDate")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "endDate debe ser YYYY-MM-DD"})
	}
	return c.JSON(h.uc.Statement(c.UserContext(), period, start, end))
}

// parseDateQuery lee un query param de fecha YYYY-MM-DD en hora local.
// Ausente devuelve nil sin error.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
