package timesheet

import (
	"context"
	"time"

	"github.com/talento-hr/talento-api/internal/domain"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
	domaints "github.com/talento-hr/talento-api/internal/domain/timesheet"
)

// ReportUseCase genera el reporte PDF de una hoja de tiempo semanal.
type ReportUseCase struct {
	entryRepo      repository.TimeEntryRepository
	assignmentRepo repository.AssignmentRepository
	employeeRepo   repository.EmployeeRepository
	pdf            WeekPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	entryRepo repository.TimeEntryRepository,
	assignmentRepo repository.AssignmentRepository,
	employeeRepo repository.EmployeeRepository,
	pdf WeekPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		entryRepo:      entryRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		pdf:            pdf,
	}
}

// WeekPDF arma la hoja de (empleado, semana) y la renderiza, con las
// excepciones de cumplimiento vigentes al momento de la lectura.
func (uc *ReportUseCase) WeekPDF(ctx context.Context, employeeID string, weekEnding time.Time) ([]byte, error) {
	weekEnding = domaints.WeekEnding(weekEnding)
	emp, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.entryRepo.ListByWeek(ctx, employeeID, weekEnding)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrNotFound
	}
	ts := domaints.BuildTimesheet(employeeID, weekEnding, entries)

	cache := map[string]*entity.Assignment{}
	exceptions := map[string][]entity.Exception{}
	for _, e := range entries {
		var asg *entity.Assignment
		if e.Billable && e.AssignmentID != "" {
			var ok bool
			asg, ok = cache[e.AssignmentID]
			if !ok {
				asg, err = uc.assignmentRepo.GetByID(ctx, e.AssignmentID)
				if err != nil {
					return nil, err
				}
				cache[e.AssignmentID] = asg
			}
		}
		if excs := domaints.ValidateEntry(e, asg); len(excs) > 0 {
			exceptions[e.ID] = excs
		}
	}

	return uc.pdf.GenerateWeekPDF(ctx, emp, ts, exceptions)
}
