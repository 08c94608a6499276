package scheduling

import (
	"context"
	"errors"
	"time"

	domain "github.com/agendalivre/agenda-api/internal/domain/schedule"
	"github.com/agendalivre/agenda-api/internal/httperr"
	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/payment"
)

var errNotFound = errors.New("not found")

// fakeRepo é um Repository em memória para os testes dos use cases.
type fakeRepo struct {
	professionals map[uint]*models.Professional
	services      map[uint]*models.Service
	blocks        []models.AvailabilityBlock
	students      map[string]*models.Student
	appointments  []*models.Appointment

	// força falha de conflito na admissão
	conflictErr error

	// janelas da última consulta por dia/período
	lastDayStart    time.Time
	lastDayEnd      time.Time
	lastPeriodStart time.Time
	lastPeriodEnd   time.Time

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		professionals: map[uint]*models.Professional{},
		services:      map[uint]*models.Service{},
		students:      map[string]*models.Student{},
		nextID:        1,
	}
}

func (f *fakeRepo) GetProfessionalByID(_ context.Context, id uint) (*models.Professional, error) {
	if p, ok := f.professionals[id]; ok {
		return p, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetService(_ context.Context, professionalID, serviceID uint) (*models.Service, error) {
	if s, ok := f.services[serviceID]; ok && s.ProfessionalID == professionalID {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListActiveBlocks(_ context.Context, professionalID uint, dayOfWeek int) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.ProfessionalID == professionalID && b.DayOfWeek == dayOfWeek && b.Active {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBlocks(_ context.Context, professionalID uint) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.ProfessionalID == professionalID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ReplaceBlocks(_ context.Context, professionalID uint, blocks []models.AvailabilityBlock) ([]models.AvailabilityBlock, error) {
	var kept []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.ProfessionalID != professionalID {
			kept = append(kept, b)
		}
	}
	for _, b := range blocks {
		b.ID = f.nextID
		f.nextID++
		kept = append(kept, b)
	}
	f.blocks = kept

	return f.ListBlocks(context.Background(), professionalID)
}

func (f *fakeRepo) GetOrCreateStudent(_ context.Context, professionalID uint, name, email, phone string) (*models.Student, error) {
	if s, ok := f.students[email]; ok && s.ProfessionalID == professionalID {
		return s, nil
	}
	s := &models.Student{
		ID:             f.nextID,
		ProfessionalID: professionalID,
		Name:           name,
		Email:          email,
		Phone:          phone,
	}
	f.nextID++
	f.students[email] = s
	return s, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.conflictErr != nil {
		return f.conflictErr
	}
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) AssertNoTimeConflict(_ context.Context, professionalID uint, start, end time.Time) error {
	if f.conflictErr != nil {
		return f.conflictErr
	}
	for _, ap := range f.appointments {
		if ap.ProfessionalID != professionalID || ap.Status == string(domain.StatusCanceled) {
			continue
		}
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (f *fakeRepo) GetAppointmentForProfessional(_ context.Context, appointmentID, professionalID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.ProfessionalID == professionalID {
			return ap, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, cur := range f.appointments {
		if cur.ID == ap.ID {
			f.appointments[i] = ap
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	f.lastDayStart, f.lastDayEnd = start, end

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ProfessionalID != professionalID || ap.Status == string(domain.StatusCanceled) {
			continue
		}
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	f.lastPeriodStart, f.lastPeriodEnd = start, end

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ProfessionalID != professionalID {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------- demais colaboradores fake ---------

type fakeSink struct {
	actions []string
}

func (s *fakeSink) Log(_ uint, action, _ string, _ *uint, _ any) error {
	s.actions = append(s.actions, action)
	return nil
}

type fakeGateway struct {
	checkout *payment.Checkout
	err      error
	calls    int
}

func (g *fakeGateway) CreateCheckout(_ context.Context, _ *models.Appointment, _ *models.Service, _ *models.Student) (*payment.Checkout, error) {
	g.calls++
	return g.checkout, g.err
}

type fakeCalendar struct {
	eventID string
	deleted []string
}

func (c *fakeCalendar) CreateEvent(_ context.Context, _ *models.Appointment) (string, error) {
	return c.eventID, nil
}

func (c *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	c.deleted = append(c.deleted, eventID)
	return nil
}
