package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/application/usecase"
	"github.com/khakhra/business-manager/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler sirve las descargas de PDF y XLSX (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// OrderInvoice godoc
// @Summary      Factura de la orden en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/orders/{id}/invoice [get]
func (h *ReportHandler) OrderInvoice(c *fiber.Ctx) error {
	data, err := h.uc.OrderInvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, "invoice-"+c.Params("id")+".pdf", "application/pdf", data)
}

// ProfitLoss godoc
// @Summary      Estado de resultados en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        period     query  string  false  "today | week | month | custom"  default(month)
// @Param        startDate  query  string  false  "YYYY-MM-DD (solo custom)"
// @Param        endDate    query  string  false  "YYYY-MM-DD (solo custom)"
// @Success      200  {file}  file
// @Router       /api/reports/profit-loss [get]
func (h *ReportHandler) ProfitLoss(c *fiber.Ctx) error {
	period := c.Query("period", "month")
	start, err := parseDateQuery(c, "startDate")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "startDate debe ser YYYY-MM-DD"})
	}
	end, err := parseDateQuery(c, "endDate")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "endDate debe ser YYYY-MM-DD"})
	}
	data, err := h.uc.ProfitLossPDF(c.UserContext(), period, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, "profit-loss-"+period+".pdf", "application/pdf", data)
}

// Orders godoc
// @Summary      Libro XLSX de órdenes
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/reports/orders.xlsx [get]
func (h *ReportHandler) Orders(c *fiber.Ctx) error {
	data, err := h.uc.OrdersExcel(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, "orders.xlsx", xlsxContentType, data)
}

// Inventory godoc
// @Summary      Libro XLSX de inventario (productos e insumos)
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/reports/inventory.xlsx [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	data, err := h.uc.InventoryExcel(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, "inventory.xlsx", xlsxContentType, data)
}

// Expenses godoc
// @Summary      Libro XLSX de gastos
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/reports/expenses.xlsx [get]
func (h *ReportHandler) Expenses(c *fiber.Ctx) error {
	data, err := h.uc.ExpensesExcel(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, "expenses.xlsx", xlsxContentType, data)
}

// sendFile responde bytes como descarga con nombre de archivo.
func sendFile(c *fiber.Ctx, filename, contentType string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
