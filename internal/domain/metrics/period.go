package metrics

import "time"

// Period es un preset de rango de fechas para reportes.
type Period string

// Presets soportados por el reporte de P&L.
const (
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodCustom Period = "custom"
)

// DateRange es un rango [Start, End] inclusivo en hora local.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del rango (inclusivo en ambos extremos).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// startOfDay devuelve las 00:00:00.000 locales del día de t.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay devuelve el último instante del día de t.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// monthBounds devuelve el primer y último día calendario del mes de t.
func monthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return first, last
}

// PeriodRange resuelve un preset a su rango concreto en la zona horaria de now.
//
//   - today:  [inicio del día, fin del día]
//   - week:   lunes a domingo de la semana de now
//   - month:  primer a último día calendario del mes de now
//   - custom: [customStart, customEnd]; un extremo nil cae al límite
//     correspondiente del mes en curso
func PeriodRange(p Period, now time.Time, customStart, customEnd *time.Time) DateRange {
	switch p {
	case PeriodToday:
		return DateRange{Start: startOfDay(now), End: endOfDay(now)}
	case PeriodWeek:
		// La semana inicia en lunes (weekStartsOn: 1).
		offset := (int(now.Weekday()) + 6) % 7
		monday := startOfDay(now).AddDate(0, 0, -offset)
		return DateRange{Start: monday, End: endOfDay(monday.AddDate(0, 0, 6))}
	case PeriodCustom:
		first, last := monthBounds(now)
		r := DateRange{Start: first, End: last}
		if customStart != nil {
			r.Start = startOfDay(*customStart)
		}
		if customEnd != nil {
			r.End = endOfDay(*customEnd)
		}
		return r
	default: // PeriodMonth y cualquier valor desconocido
		first, last := monthBounds(now)
		return DateRange{Start: first, End: last}
	}
}
