package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khakhra/business-manager/internal/domain"
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/metrics"
	"github.com/khakhra/business-manager/internal/domain/repository"
)

// BusinessInfo datos fijos del negocio que encabezan facturas y reportes.
type BusinessInfo struct {
	Name           string
	AddressLine    string
	ContactLine    string
	GSTIN          string
	CurrencySymbol string
}

// ProfitLossReport es el insumo del PDF de estado de resultados: el estado
// agregado más el contexto del período y el desglose de gastos.
type ProfitLossReport struct {
	Period          string
	Range           metrics.DateRange
	Statement       metrics.ProfitLossStatement
	PreviousRevenue decimal.Decimal
	Growth          decimal.Decimal
	Breakdown       []metrics.CategoryAmount
}

// PDFGenerator genera los documentos PDF descargables.
type PDFGenerator interface {
	InvoicePDF(ctx context.Context, order entity.Order, biz BusinessInfo) ([]byte, error)
	ProfitLossPDF(ctx context.Context, report ProfitLossReport, biz BusinessInfo) ([]byte, error)
}

// ExcelExporter genera los libros XLSX descargables.
type ExcelExporter interface {
	OrdersWorkbook(ctx context.Context, orders []entity.Order, biz BusinessInfo) ([]byte, error)
	InventoryWorkbook(ctx context.Context, products []entity.Product, materials []entity.RawMaterial, biz BusinessInfo) ([]byte, error)
	ExpensesWorkbook(ctx context.Context, expenses []entity.Expense, biz BusinessInfo) ([]byte, error)
}

// ReportUseCase arma las exportaciones: factura y P&L en PDF, y libros XLSX
// de órdenes, inventario y gastos.
type ReportUseCase struct {
	store repository.RecordStore
	pdf   PDFGenerator
	excel ExcelExporter
	biz   BusinessInfo
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(store repository.RecordStore, pdf PDFGenerator, excel ExcelExporter, biz BusinessInfo) *ReportUseCase {
	return &ReportUseCase{store: store, pdf: pdf, excel: excel, biz: biz, now: time.Now}
}

// OrderInvoicePDF genera la factura en PDF de una orden.
func (uc *ReportUseCase) OrderInvoicePDF(ctx context.Context, orderID string) ([]byte, error) {
	for _, o := range uc.store.Orders(ctx) {
		if o.ID == orderID {
			return uc.pdf.InvoicePDF(ctx, o, uc.biz)
		}
	}
	return nil, domain.ErrNotFound
}

// ProfitLossPDF genera el estado de resultados del período en PDF.
func (uc *ReportUseCase) ProfitLossPDF(ctx context.Context, period string, customStart, customEnd *time.Time) ([]byte, error) {
	p := metrics.Period(period)
	r := metrics.PeriodRange(p, uc.now(), customStart, customEnd)

	orders := uc.store.Orders(ctx)
	expenses := uc.store.Expenses(ctx)

	st := metrics.ProfitLossForRange(orders, expenses, r)
	prevRevenue, growth := metrics.RevenueGrowth(orders, r, st.Revenue)

	return uc.pdf.ProfitLossPDF(ctx, ProfitLossReport{
		Period:          string(p),
		Range:           r,
		Statement:       st,
		PreviousRevenue: prevRevenue,
		Growth:          growth,
		Breakdown:       metrics.ExpenseBreakdown(expenses, r),
	}, uc.biz)
}

// OrdersExcel genera el libro XLSX de órdenes.
func (uc *ReportUseCase) OrdersExcel(ctx context.Context) ([]byte, error) {
	return uc.excel.OrdersWorkbook(ctx, uc.store.Orders(ctx), uc.biz)
}

// InventoryExcel genera el libro XLSX de inventario: productos e insumos.
func (uc *ReportUseCase) InventoryExcel(ctx context.Context) ([]byte, error) {
	return uc.excel.InventoryWorkbook(ctx, uc.store.Products(ctx), uc.store.RawMaterials(ctx), uc.biz)
}

// ExpensesExcel genera el libro XLSX de gastos.
func (uc *ReportUseCase) ExpensesExcel(ctx context.Context) ([]byte, error) {
	return uc.excel.ExpensesWorkbook(ctx, uc.store.Expenses(ctx), uc.biz)
}
