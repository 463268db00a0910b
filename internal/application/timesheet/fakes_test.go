package timesheet_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
)

// Dobles en memoria con semántica transaccional: el runner toma una copia del
// estado antes de ejecutar y la restaura si la función falla, igual que un
// ROLLBACK. Suficiente para ejercitar el todo-o-nada sin base de datos.

type fakeEntryRepo struct {
	mu      sync.Mutex
	entries map[string]*entity.TimeEntry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: map[string]*entity.TimeEntry{}}
}

func copyEntry(e *entity.TimeEntry) *entity.TimeEntry {
	c := *e
	return &c
}

func (r *fakeEntryRepo) Create(_ context.Context, e *entity.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = copyEntry(e)
	return nil
}

func (r *fakeEntryRepo) Update(_ context.Context, e *entity.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = copyEntry(e)
	return nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

func (r *fakeEntryRepo) GetByID(_ context.Context, id string) (*entity.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	return copyEntry(e), nil
}

func (r *fakeEntryRepo) ListByWeek(_ context.Context, employeeID string, weekEnding time.Time) ([]*entity.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.week(employeeID, weekEnding), nil
}

func (r *fakeEntryRepo) ListByWeekForUpdate(_ context.Context, employeeID string, weekEnding time.Time) ([]*entity.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.week(employeeID, weekEnding), nil
}

func (r *fakeEntryRepo) week(employeeID string, weekEnding time.Time) []*entity.TimeEntry {
	var out []*entity.TimeEntry
	for _, e := range r.entries {
		if e.EmployeeID == employeeID && e.WeekEnding.Equal(weekEnding) {
			out = append(out, copyEntry(e))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (r *fakeEntryRepo) ListByStatus(_ context.Context, statuses ...entity.EntryStatus) ([]*entity.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := map[entity.EntryStatus]bool{}
	for _, s := range statuses {
		wanted[s] = true
	}
	var out []*entity.TimeEntry
	for _, e := range r.entries {
		if wanted[e.Status] {
			out = append(out, copyEntry(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEntryRepo) UpdateStatus(_ context.Context, e *entity.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.ID] = copyEntry(e)
	return nil
}

func (r *fakeEntryRepo) snapshot() map[string]*entity.TimeEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*entity.TimeEntry, len(r.entries))
	for id, e := range r.entries {
		out[id] = copyEntry(e)
	}
	return out
}

func (r *fakeEntryRepo) restore(s map[string]*entity.TimeEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = s
}

func (r *fakeEntryRepo) get(id string) *entity.TimeEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyEntry(r.entries[id])
}

func (r *fakeEntryRepo) setStatus(id string, status entity.EntryStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id].Status = status
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []*entity.ApprovalEvent
}

func (r *fakeEventRepo) Create(_ context.Context, ev *entity.ApprovalEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *ev
	r.events = append(r.events, &c)
	return nil
}

func (r *fakeEventRepo) ListByEntry(_ context.Context, entryID string) ([]*entity.ApprovalEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ApprovalEvent
	for _, ev := range r.events {
		if ev.EntryID == entryID {
			c := *ev
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// fakeTxRunner ejecuta la función contra los mismos dobles y revierte el
// estado completo si devuelve error. beforeRun simula a otro proceso
// comprometiendo su escritura entre la lectura del caso de uso y nuestra
// transacción: corre antes de tomar la instantánea de rollback, así su efecto
// sobrevive aunque nuestra transacción se revierta.
type fakeTxRunner struct {
	entries   *fakeEntryRepo
	events    *fakeEventRepo
	beforeRun func()
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repository.TimeEntryRepository, repository.ApprovalEventRepository) error) error {
	if r.beforeRun != nil {
		hook := r.beforeRun
		r.beforeRun = nil
		hook()
	}
	entriesBefore := r.entries.snapshot()
	r.events.mu.Lock()
	eventsBefore := make([]*entity.ApprovalEvent, len(r.events.events))
	copy(eventsBefore, r.events.events)
	r.events.mu.Unlock()

	if err := fn(r.entries, r.events); err != nil {
		r.entries.restore(entriesBefore)
		r.events.mu.Lock()
		r.events.events = eventsBefore
		r.events.mu.Unlock()
		return err
	}
	return nil
}

type fakeAssignmentRepo struct {
	assignments map[string]*entity.Assignment
}

func (r *fakeAssignmentRepo) Create(_ context.Context, a *entity.Assignment) error {
	r.assignments[a.ID] = a
	return nil
}

func (r *fakeAssignmentRepo) Update(_ context.Context, a *entity.Assignment) error {
	r.assignments[a.ID] = a
	return nil
}

func (r *fakeAssignmentRepo) GetByID(_ context.Context, id string) (*entity.Assignment, error) {
	a, ok := r.assignments[id]
	if !ok {
		return nil, nil
	}
	c := *a
	return &c, nil
}

func (r *fakeAssignmentRepo) ListByEmployee(_ context.Context, employeeID string) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range r.assignments {
		if a.EmployeeID == employeeID {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) List(_ context.Context, _, _ int) ([]*entity.Assignment, error) {
	var out []*entity.Assignment
	for _, a := range r.assignments {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	c := *e
	return &c, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _, _ int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.employees {
		c := *e
		out = append(out, &c)
	}
	return out, nil
}
