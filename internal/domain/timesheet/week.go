package timesheet

import "time"

// WeekEnding devuelve el domingo que cierra la semana (inicio lunes) a la que
// pertenece la fecha. El resultado queda normalizado a medianoche UTC, de modo
// que sirva como clave de agrupación estable de la hoja de tiempo.
func WeekEnding(date time.Time) time.Time {
	d := Normalize(date)
	// time.Weekday: domingo=0 ... sábado=6; con inicio lunes el offset del
	// lunes es (weekday+6)%7.
	offset := (int(d.Weekday()) + 6) % 7
	monday := d.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, 6)
}

// WeekStart devuelve el lunes que abre la semana cerrada por weekEnding.
func WeekStart(weekEnding time.Time) time.Time {
	return Normalize(weekEnding).AddDate(0, 0, -6)
}

// SameWeek indica si dos fechas caen en la misma semana laboral.
func SameWeek(a, b time.Time) bool {
	return WeekEnding(a).Equal(WeekEnding(b))
}

// Normalize trunca una fecha a medianoche UTC (solo día calendario).
func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
