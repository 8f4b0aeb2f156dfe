// Package metrics es el motor de derivación: funciones puras que transforman
// los registros crudos (órdenes, gastos, productos) en métricas de negocio.
//
// Reglas que comparten todas las funciones del paquete:
//   - No mutan las colecciones recibidas; los slices de entrada se tratan
//     como snapshots de solo lectura.
//   - No retornan error: toda división está protegida y produce cero, nunca
//     NaN ni pánico.
//   - El dinero es decimal.Decimal de punta a punta; el redondeo a 2
//     decimales ocurre solo al formatear para presentación.
//   - El tiempo de referencia ("ahora") siempre entra como parámetro, nunca
//     se consulta time.Now dentro del paquete.
package metrics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// percent devuelve part/whole*100 o cero si whole no es positivo.
// Contrato requerido: la división por cero produce 0, no NaN ni infinito.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
