package entity

import "time"

// Estados de onboarding de un empleado.
const (
	OnboardingPending    = "pending"
	OnboardingInProgress = "in_progress"
	OnboardingCompleted  = "completed"
	OnboardingOffboarded = "offboarded"
)

// Employee ficha del directorio de empleados. CanAccessTimesheets y
// OnboardingStatus son la precondición dura para crear registros de tiempo:
// sin onboarding completo no se persiste nada.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string

	Title      string
	Department string
	ClientID   string // cliente principal, si aplica

	OnboardingStatus    string
	CanAccessTimesheets bool

	HireDate      time.Time
	TerminateDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimesheetEligible indica si el empleado puede registrar tiempo.
func (e *Employee) TimesheetEligible() bool {
	return e.OnboardingStatus == OnboardingCompleted && e.CanAccessTimesheets
}

// FullName nombre completo para reportes.
func (e *Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	return e.FirstName + " " + e.LastName
}
