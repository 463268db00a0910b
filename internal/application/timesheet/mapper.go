package timesheet

import (
	"github.com/talento-hr/talento-api/internal/application/dto"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	domaints "github.com/talento-hr/talento-api/internal/domain/timesheet"
)

func toExceptionResponses(excs []entity.Exception) []dto.ExceptionResponse {
	if len(excs) == 0 {
		return nil
	}
	out := make([]dto.ExceptionResponse, 0, len(excs))
	for _, ex := range excs {
		out = append(out, dto.ExceptionResponse{Kind: ex.Kind, Message: ex.Message, Severity: ex.Severity})
	}
	return out
}

func toEntryResponse(e *entity.TimeEntry, excs []entity.Exception) dto.TimeEntryResponse {
	return dto.TimeEntryResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date.Format(dto.DateLayout),
		WeekEnding: e.WeekEnding.Format(dto.DateLayout),

		Billable: e.Billable,
		Category: e.Category,
		TimeType: e.TimeType,

		RegularHours:  e.RegularHours,
		OvertimeHours: e.OvertimeHours,
		HolidayHours:  e.HolidayHours,
		TimeOffHours:  e.TimeOffHours,

		OvertimeApprovalEmail: e.OvertimeApprovalEmail,

		AssignmentID: e.AssignmentID,
		ClientID:     e.ClientID,
		PONumber:     e.PONumber,
		BillingRate:  e.BillingRate,
		BillingType:  e.BillingType,

		Status:           string(e.Status),
		RejectionComment: e.RejectionComment,
		RejectedAt:       e.RejectedAt,

		Exceptions: toExceptionResponses(excs),
	}
}

// toTimesheetResponse arma la respuesta de la semana; exceptions va indexado
// por ID de registro y puede ser nil.
func toTimesheetResponse(ts *entity.Timesheet, exceptions map[string][]entity.Exception) *dto.TimesheetResponse {
	resp := &dto.TimesheetResponse{
		EmployeeID:    ts.EmployeeID,
		WeekEnding:    ts.WeekEnding.Format(dto.DateLayout),
		TotalRegular:  ts.TotalRegular,
		TotalOvertime: ts.TotalOvertime,
		TotalHoliday:  ts.TotalHoliday,
		TotalTimeOff:  ts.TotalTimeOff,
		Status:        string(ts.Status),
		Entries:       make([]dto.TimeEntryResponse, 0, len(ts.Entries)),
	}
	for _, e := range ts.Entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e, exceptions[e.ID]))
	}
	return resp
}

func toQueueItem(e *entity.TimeEntry) dto.QueueItemResponse {
	return dto.QueueItemResponse{
		EntryID:       e.ID,
		EmployeeID:    e.EmployeeID,
		ClientID:      e.ClientID,
		PONumber:      e.PONumber,
		Date:          e.Date.Format(dto.DateLayout),
		WeekEnding:    e.WeekEnding.Format(dto.DateLayout),
		Status:        string(e.Status),
		RegularHours:  e.RegularHours,
		OvertimeHours: e.OvertimeHours,
		Amount:        domaints.BilledAmount(e),
	}
}

func toEventResponse(ev *entity.ApprovalEvent) dto.ApprovalEventResponse {
	return dto.ApprovalEventResponse{
		ID:         ev.ID,
		EntryID:    ev.EntryID,
		FromStatus: string(ev.FromStatus),
		ToStatus:   string(ev.ToStatus),
		ActorID:    ev.ActorID,
		ActorRole:  ev.ActorRole,
		Comment:    ev.Comment,
		CreatedAt:  ev.CreatedAt,
	}
}
