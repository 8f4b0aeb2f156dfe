package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/khakhra/business-manager/internal/domain/metrics"
)

// Miércoles 11 de marzo de 2026, 15:30.
var fixedNow = time.Date(2026, time.March, 11, 15, 30, 0, 0, time.UTC)

func TestPeriodRange_Today(t *testing.T) {
	r := metrics.PeriodRange(metrics.PeriodToday, fixedNow, nil, nil)

	assert.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, 11, r.End.Day())
	assert.Equal(t, 23, r.End.Hour())
	assert.True(t, r.Contains(fixedNow))
}

// La semana inicia en lunes: para un miércoles el rango es lun 9 a dom 15.
func TestPeriodRange_SemanaIniciaLunes(t *testing.T) {
	r := metrics.PeriodRange(metrics.PeriodWeek, fixedNow, nil, nil)

	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, 15, r.End.Day())
}

// Caso borde: el domingo pertenece a la semana que inició el lunes anterior.
func TestPeriodRange_DomingoCierraSemana(t *testing.T) {
	domingo := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	r := metrics.PeriodRange(metrics.PeriodWeek, domingo, nil, nil)

	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), r.Start)
}

func TestPeriodRange_MesCalendario(t *testing.T) {
	// Febrero bisiesto: el rango debe cerrar el 29.
	feb := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	r := metrics.PeriodRange(metrics.PeriodMonth, feb, nil, nil)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, 29, r.End.Day())
}

// Período desconocido degrada al mes en curso.
func TestPeriodRange_DesconocidoDegradaAMes(t *testing.T) {
	r := metrics.PeriodRange(metrics.Period("quarter"), fixedNow, nil, nil)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, 31, r.End.Day())
}

func TestPeriodRange_CustomConLimites(t *testing.T) {
	start := time.Date(2026, time.February, 5, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC)
	r := metrics.PeriodRange(metrics.PeriodCustom, fixedNow, &start, &end)

	assert.Equal(t, time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, 20, r.End.Day())
	assert.Equal(t, 23, r.End.Hour())
}

// Custom sin límites cae a los bordes del mes en curso.
func TestPeriodRange_CustomSinLimites(t *testing.T) {
	r := metrics.PeriodRange(metrics.PeriodCustom, fixedNow, nil, nil)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, 31, r.End.Day())
}

func TestDateRange_ContainsInclusivo(t *testing.T) {
	r := metrics.PeriodRange(metrics.PeriodToday, fixedNow, nil, nil)

	assert.True(t, r.Contains(r.Start))
	assert.True(t, r.Contains(r.End))
	assert.False(t, r.Contains(r.Start.Add(-time.Nanosecond)))
}
