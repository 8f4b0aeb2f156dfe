// Package excel implementa las exportaciones XLSX del panel: órdenes,
// inventario (productos e insumos) y gastos. Los montos van como texto ya
// formateado con el símbolo de moneda del negocio, igual que en los PDF.
package excel

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/khakhra/business-manager/internal/application/usecase"
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/metrics"
)

// ExcelizeExporter implementa usecase.ExcelExporter usando excelize.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// OrdersWorkbook genera el libro de órdenes: una fila por orden, con las
// líneas resumidas en una celda.
func (e *ExcelizeExporter) OrdersWorkbook(_ context.Context, orders []entity.Order, biz usecase.BusinessInfo) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	headers := []interface{}{
		"Order ID", "Date", "Customer", "Items",
		"Subtotal", "GST", "Total",
		"Status", "Payment Method", "Payment Status",
	}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheet, "A", "J", 18)
	_ = f.SetColWidth(sheet, "D", "D", 40)

	sym := biz.CurrencySymbol
	for i, o := range orders {
		rowValues := []interface{}{
			o.ID,
			o.CreatedAt.Format("02/01/2006"),
			o.CustomerName,
			summarizeItems(o.Items),
			money(sym, o.Subtotal),
			money(sym, o.GSTAmount),
			money(sym, o.Total),
			o.Status,
			strings.ReplaceAll(o.PaymentMethod, "_", " "),
			o.PaymentStatus,
		}
		if err := writeRow(f, sheet, i+2, rowValues); err != nil {
			return nil, err
		}
	}
	return toBytes(f)
}

// InventoryWorkbook genera el libro de inventario con dos hojas: Products y
// Raw Materials, cada una con su estado de stock derivado (LOW / OK).
func (e *ExcelizeExporter) InventoryWorkbook(_ context.Context, products []entity.Product, materials []entity.RawMaterial, biz usecase.BusinessInfo) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const productsSheet = "Products"
	if err := f.SetSheetName("Sheet1", productsSheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	sym := biz.CurrencySymbol

	productHeaders := []interface{}{
		"Name", "Category", "Price", "Cost", "Stock", "Unit", "Low Stock Threshold", "Status",
	}
	if err := writeHeader(f, productsSheet, productHeaders); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(productsSheet, "A", "H", 18)
	for i, p := range products {
		rowValues := []interface{}{
			p.Name,
			p.Category,
			money(sym, p.Price),
			money(sym, p.Cost),
			p.Stock,
			p.Unit,
			p.LowStockThreshold,
			string(metrics.ProductStockStatus(p)),
		}
		if err := writeRow(f, productsSheet, i+2, rowValues); err != nil {
			return nil, err
		}
	}

	const materialsSheet = "Raw Materials"
	if _, err := f.NewSheet(materialsSheet); err != nil {
		return nil, fmt.Errorf("excel: crear hoja %q: %w", materialsSheet, err)
	}
	materialHeaders := []interface{}{
		"Name", "Quantity", "Unit", "Cost Per Unit", "Supplier", "Low Stock Threshold", "Status",
	}
	if err := writeHeader(f, materialsSheet, materialHeaders); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(materialsSheet, "A", "G", 18)
	for i, m := range materials {
		rowValues := []interface{}{
			m.Name,
			m.Quantity,
			m.Unit,
			money(sym, m.CostPerUnit),
			m.Supplier,
			m.LowStockThreshold,
			string(metrics.MaterialStockStatus(m)),
		}
		if err := writeRow(f, materialsSheet, i+2, rowValues); err != nil {
			return nil, err
		}
	}
	return toBytes(f)
}

// ExpensesWorkbook genera el libro de gastos.
func (e *ExcelizeExporter) ExpensesWorkbook(_ context.Context, expenses []entity.Expense, biz usecase.BusinessInfo) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Expenses"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	headers := []interface{}{"Date", "Category", "Description", "Amount", "Created By", "Notes"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheet, "A", "F", 18)
	_ = f.SetColWidth(sheet, "C", "C", 40)

	sym := biz.CurrencySymbol
	for i, ex := range expenses {
		rowValues := []interface{}{
			ex.Date.Format("02/01/2006"),
			ex.Category,
			ex.Description,
			money(sym, ex.Amount),
			ex.CreatedBy,
			ex.Notes,
		}
		if err := writeRow(f, sheet, i+2, rowValues); err != nil {
			return nil, err
		}
	}
	return toBytes(f)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// writeHeader escribe la fila 1 en negrita.
func writeHeader(f *excelize.File, sheet string, headers []interface{}) error {
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: estilo de cabecera: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("excel: celda de cabecera: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("excel: aplicar estilo: %w", err)
	}
	return nil
}

// writeRow escribe una fila completa a partir de la columna A.
func writeRow(f *excelize.File, sheet string, rowIdx int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err != nil {
			return fmt.Errorf("excel: coordenada (%d,%d): %w", i+1, rowIdx, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("excel: celda %s: %w", cell, err)
		}
	}
	return nil
}

func toBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// summarizeItems comprime las líneas en un texto "2x Plain Khakhra; ...".
func summarizeItems(items []entity.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.ProductName))
	}
	return strings.Join(parts, "; ")
}

// money formatea un monto como <símbolo><valor a 2 decimales>.
func money(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}
