// Package pdf implementa los documentos descargables del panel: la factura
// de venta con GST y el estado de resultados (P&L).
//
// Layout de la factura (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio + GSTIN  │  N° Factura + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NEGOCIO: Dirección / Contacto                              │
//	│  CLIENTE: Nombre + GSTIN + contacto                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Precio Unit. | Importe            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / GST / TOTAL                            │
//	│  FOOTER: método y estado de pago + notas                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/khakhra/business-manager/internal/application/usecase"
	"github.com/khakhra/business-manager/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 146, Green: 64, Blue: 14}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

// InvoicePDF genera la factura de una orden y devuelve sus bytes.
func (g *MarotoPDFGenerator) InvoicePDF(_ context.Context, order entity.Order, biz usecase.BusinessInfo) ([]byte, error) {
	m := newDocument("Factura "+invoiceNumber(order), biz.Name)

	m.AddRows(invoiceHeaderRow(order, biz))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(businessRow(biz))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemsRows(order, biz.CurrencySymbol) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(invoiceTotalsRow(order, biz.CurrencySymbol))
	m.AddRows(line.NewRow(3))
	for _, r := range paymentFooterRows(order) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar factura: %w", err)
	}
	return doc.GetBytes(), nil
}

// ProfitLossPDF genera el estado de resultados del período.
func (g *MarotoPDFGenerator) ProfitLossPDF(_ context.Context, report usecase.ProfitLossReport, biz usecase.BusinessInfo) ([]byte, error) {
	m := newDocument("Estado de Resultados", biz.Name)

	m.AddRows(plHeaderRow(report, biz))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	st := report.Statement
	sym := biz.CurrencySymbol
	m.AddRows(plSectionRow("RESULTADOS"))
	m.AddRows(
		plLineRow("Ingresos", money(sym, st.Revenue), false),
		plLineRow("Costo de ventas (COGS)", money(sym, st.COGS), false),
		plLineRow("Utilidad bruta", money(sym, st.GrossProfit), true),
		plLineRow("Gastos operativos", money(sym, st.TotalExpenses), false),
		plLineRow("Utilidad neta", money(sym, st.NetProfit), true),
	)

	m.AddRows(plSectionRow("INDICADORES"))
	m.AddRows(
		plLineRow("Margen bruto", st.GrossMargin.StringFixed(2)+"%", false),
		plLineRow("Margen neto", st.ProfitMargin.StringFixed(2)+"%", false),
		plLineRow("COGS / Ingresos", st.COGSPct.StringFixed(2)+"%", false),
		plLineRow("Órdenes", fmt.Sprintf("%d", st.OrderCount), false),
		plLineRow("Valor promedio de orden", money(sym, st.AvgOrderValue), false),
		plLineRow("Ingresos período anterior", money(sym, report.PreviousRevenue), false),
		plLineRow("Crecimiento de ingresos", report.Growth.StringFixed(2)+"%", false),
	)

	if len(report.Breakdown) > 0 {
		m.AddRows(plSectionRow("GASTOS POR CATEGORÍA"))
		for _, b := range report.Breakdown {
			m.AddRows(plLineRow(b.Category, money(sym, b.Amount), false))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de resultados: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones de la factura ───────────────────────────────────────────────────

// invoiceHeaderRow: negocio + GSTIN (izq) y N° factura + fecha (der).
func invoiceHeaderRow(order entity.Order, biz usecase.BusinessInfo) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(biz.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GSTIN: "+biz.GSTIN, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoiceNumber(order), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// businessRow: dirección y contacto del negocio.
func businessRow(biz usecase.BusinessInfo) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL NEGOCIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(biz.AddressLine+"   |   "+biz.ContactLine, props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

// customerRow: snapshot del cliente congelado en la orden.
func customerRow(order entity.Order) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FACTURAR A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("GSTIN: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(order.CustomerGST, "N/A"),
				nonEmpty(order.CustomerEmail, "N/A"),
				nonEmpty(order.CustomerPhone, "N/A"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// itemsHeaderRow: cabecera de la tabla de líneas.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// itemsRows: una fila por línea de la orden.
func itemsRows(order entity.Order, symbol string) []core.Row {
	result := make([]core.Row, 0, len(order.Items))
	for _, it := range order.Items {
		amount := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money(symbol, it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money(symbol, amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// invoiceTotalsRow: bloque de totales alineado a la derecha.
func invoiceTotalsRow(order entity.Order, symbol string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3), // espacio izquierdo
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("GST (%s%%):", order.GSTRate.StringFixed(0))),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value(money(symbol, order.Subtotal)),
			value(money(symbol, order.GSTAmount)),
			grandValue(money(symbol, order.Total)),
		),
		col.New(2), // espacio derecho
	)
}

// paymentFooterRows: método y estado de pago, más las notas si las hay.
func paymentFooterRows(order entity.Order) []core.Row {
	method := strings.ToUpper(strings.ReplaceAll(order.PaymentMethod, "_", " "))
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Pago: %s   |   Estado: %s", method, strings.ToUpper(order.PaymentStatus)),
				props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
	}
	if order.Notes != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Notas: "+order.Notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Gracias por su compra.", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}),
	)))
	return rows
}

// ── Secciones del P&L ─────────────────────────────────────────────────────────

func plHeaderRow(report usecase.ProfitLossReport, biz usecase.BusinessInfo) core.Row {
	rango := report.Range.Start.Format("02/01/2006") + " - " + report.Range.End.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(biz.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GSTIN: "+biz.GSTIN, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE RESULTADOS", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+report.Period, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New(rango, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func plSectionRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
		}),
	))
}

func plLineRow(label, value string, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Style: style, Top: 1, Left: 2})),
		col.New(4).Add(text.New(value, props.Text{Size: 9, Style: style, Align: align.Right, Top: 1, Right: 2})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// invoiceNumber deriva un número corto legible del ID de la orden.
func invoiceNumber(order entity.Order) string {
	id := order.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return "INV-" + strings.ToUpper(id)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea un monto como <símbolo><valor a 2 decimales>.
func money(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}
