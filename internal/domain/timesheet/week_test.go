package timesheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/talento-hr/talento-api/internal/domain/timesheet"
)

// ──────────────────────────────────────────────────────────────────────────────
// WeekEnding: semana inicia lunes y cierra domingo
// ──────────────────────────────────────────────────────────────────────────────

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekEnding_LunesCierraElDomingoSiguiente(t *testing.T) {
	// Lunes 2025-01-06 → domingo 2025-01-12
	got := timesheet.WeekEnding(date(2025, time.January, 6))
	assert.Equal(t, date(2025, time.January, 12), got,
		"el lunes debe cerrar el domingo de su misma semana")
}

func TestWeekEnding_DomingoCierraEseMismoDia(t *testing.T) {
	got := timesheet.WeekEnding(date(2025, time.January, 12))
	assert.Equal(t, date(2025, time.January, 12), got,
		"el domingo pertenece a la semana que él mismo cierra")
}

func TestWeekEnding_MiercolesCaeEnLaMismaSemana(t *testing.T) {
	got := timesheet.WeekEnding(date(2025, time.January, 8))
	assert.Equal(t, date(2025, time.January, 12), got)
}

func TestWeekEnding_CruceDeAnio(t *testing.T) {
	// Miércoles 2024-12-31 pertenece a la semana que cierra el 2025-01-05.
	got := timesheet.WeekEnding(date(2024, time.December, 31))
	assert.Equal(t, date(2025, time.January, 5), got,
		"la semana que cruza el año cierra en enero")
}

func TestWeekEnding_NormalizaHoraYZona(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	conHora := time.Date(2025, time.January, 8, 23, 45, 0, 0, loc)
	got := timesheet.WeekEnding(conHora)
	assert.Equal(t, 0, got.Hour(), "el week ending debe quedar a medianoche UTC")
	assert.Equal(t, time.UTC, got.Location())
}

func TestWeekStart_EsElLunesAnterior(t *testing.T) {
	got := timesheet.WeekStart(date(2025, time.January, 12))
	assert.Equal(t, date(2025, time.January, 6), got)
}

func TestSameWeek(t *testing.T) {
	assert.True(t, timesheet.SameWeek(date(2025, time.January, 6), date(2025, time.January, 12)),
		"lunes y domingo de la misma semana")
	assert.False(t, timesheet.SameWeek(date(2025, time.January, 12), date(2025, time.January, 13)),
		"domingo y el lunes siguiente son semanas distintas")
}
