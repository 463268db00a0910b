package timesheet_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/timesheet"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testWeekEnding = time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC)

func entryWithStatus(status entity.EntryStatus) *entity.TimeEntry {
	return &entity.TimeEntry{
		ID:           "e-" + string(status),
		EmployeeID:   "emp-1",
		WeekEnding:   testWeekEnding,
		RegularHours: decimal.NewFromInt(8),
		Status:       status,
	}
}

func entriesWith(statuses ...entity.EntryStatus) []*entity.TimeEntry {
	out := make([]*entity.TimeEntry, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, entryWithStatus(s))
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildTimesheet: totales
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildTimesheet_SinRegistrosNoExiste(t *testing.T) {
	ts := timesheet.BuildTimesheet("emp-1", testWeekEnding, nil)
	assert.Nil(t, ts, "una hoja de tiempo nunca existe sin registros")
}

func TestBuildTimesheet_TotalesSonSumaPura(t *testing.T) {
	entries := []*entity.TimeEntry{
		{RegularHours: decimal.NewFromInt(8), OvertimeHours: decimal.NewFromInt(2), Status: entity.EntryStatusDraft},
		{RegularHours: decimal.NewFromInt(6), HolidayHours: decimal.NewFromInt(8), Status: entity.EntryStatusDraft},
		{TimeOffHours: decimal.NewFromInt(4), Status: entity.EntryStatusDraft},
	}
	ts := timesheet.BuildTimesheet("emp-1", testWeekEnding, entries)
	require.NotNil(t, ts)

	assert.True(t, ts.TotalRegular.Equal(decimal.NewFromInt(14)), "total regular = 8+6")
	assert.True(t, ts.TotalOvertime.Equal(decimal.NewFromInt(2)))
	assert.True(t, ts.TotalHoliday.Equal(decimal.NewFromInt(8)))
	assert.True(t, ts.TotalTimeOff.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, entity.TimesheetStatusDraft, ts.Status)
}

func TestBuildTimesheet_RecalcularDosVecesDaLoMismo(t *testing.T) {
	entries := entriesWith(entity.EntryStatusSubmitted, entity.EntryStatusApproved)
	a := timesheet.BuildTimesheet("emp-1", testWeekEnding, entries)
	b := timesheet.BuildTimesheet("emp-1", testWeekEnding, entries)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a.Status, b.Status, "el roll-up es función pura de los registros")
	assert.True(t, a.TotalRegular.Equal(b.TotalRegular))
}

// ──────────────────────────────────────────────────────────────────────────────
// RollUpStatus: precedencia rejected > approved > submitted > draft
// ──────────────────────────────────────────────────────────────────────────────

func TestRollUpStatus_RechazadoGanaSiempre(t *testing.T) {
	entries := entriesWith(
		entity.EntryStatusApproved,
		entity.EntryStatusRejected,
		entity.EntryStatusPendingAccounting,
	)
	assert.Equal(t, entity.TimesheetStatusRejected, timesheet.RollUpStatus(entries),
		"un solo registro rechazado marca la semana como rechazada")
}

func TestRollUpStatus_TodosAprobados(t *testing.T) {
	entries := entriesWith(entity.EntryStatusApproved, entity.EntryStatusApproved, entity.EntryStatusInvoiced)
	assert.Equal(t, entity.TimesheetStatusApproved, timesheet.RollUpStatus(entries),
		"invoiced cuenta como aprobado para el roll-up")
}

func TestRollUpStatus_EnviadosYAprobadosMezclados(t *testing.T) {
	entries := entriesWith(entity.EntryStatusSubmitted, entity.EntryStatusApproved)
	assert.Equal(t, entity.TimesheetStatusSubmitted, timesheet.RollUpStatus(entries))
}

func TestRollUpStatus_EnRevisionSigueSiendoSubmitted(t *testing.T) {
	// Una semana con registros en revisión no regresa a draft: si lo hiciera,
	// volvería a ser editable en plena aprobación.
	entries := entriesWith(entity.EntryStatusPendingClient, entity.EntryStatusPendingAccounting)
	got := timesheet.RollUpStatus(entries)
	assert.Equal(t, entity.TimesheetStatusSubmitted, got)
	assert.False(t, timesheet.Editable(got), "una semana en revisión no es editable")
}

func TestRollUpStatus_ConDraftEsDraft(t *testing.T) {
	entries := entriesWith(entity.EntryStatusDraft, entity.EntryStatusSubmitted)
	got := timesheet.RollUpStatus(entries)
	assert.Equal(t, entity.TimesheetStatusDraft, got)
	assert.True(t, timesheet.Editable(got))
}

func TestEditable_SoloDraftYRejected(t *testing.T) {
	assert.True(t, timesheet.Editable(entity.TimesheetStatusDraft))
	assert.True(t, timesheet.Editable(entity.TimesheetStatusRejected))
	assert.False(t, timesheet.Editable(entity.TimesheetStatusSubmitted))
	assert.False(t, timesheet.Editable(entity.TimesheetStatusApproved))
}
