package job

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

// ------------------------------------------------------
// Job repository
// ------------------------------------------------------

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *mockJobRepo) GetJobByAppointment(ctx context.Context, appointmentID uint) (*models.Job, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *mockJobRepo) ListJobs(ctx context.Context, status string) ([]models.Job, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *mockJobRepo) CreateJob(ctx context.Context, j *models.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *mockJobRepo) UpdateJob(ctx context.Context, j *models.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *mockJobRepo) AddNote(ctx context.Context, note *models.JobNote) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockJobRepo) GetNote(ctx context.Context, jobID, noteID uint) (*models.JobNote, error) {
	args := m.Called(ctx, jobID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobNote), args.Error(1)
}

func (m *mockJobRepo) UpdateNote(ctx context.Context, note *models.JobNote) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockJobRepo) DeleteNote(ctx context.Context, jobID, noteID uint) error {
	return m.Called(ctx, jobID, noteID).Error(0)
}

func (m *mockJobRepo) LatestGeneralNote(ctx context.Context, jobID uint) (*models.JobNote, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobNote), args.Error(1)
}

// ------------------------------------------------------
// Scheduling repository
// ------------------------------------------------------

type mockSchedRepo struct {
	mock.Mock
}

func (m *mockSchedRepo) GetServicePackage(ctx context.Context, id uint) (*models.ServicePackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServicePackage), args.Error(1)
}

func (m *mockSchedRepo) GetOrCreateCustomer(ctx context.Context, name, phone, email string) (*models.Customer, error) {
	args := m.Called(ctx, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *mockSchedRepo) GetCustomerByUserID(ctx context.Context, userID uint) (*models.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *mockSchedRepo) CreateWithBayAllocation(ctx context.Context, ap *models.Appointment, bayCount int) error {
	return m.Called(ctx, ap, bayCount).Error(0)
}

func (m *mockSchedRepo) RescheduleWithBayAllocation(ctx context.Context, ap *models.Appointment, bayCount int) error {
	return m.Called(ctx, ap, bayCount).Error(0)
}

func (m *mockSchedRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockSchedRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockSchedRepo) ListForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockSchedRepo) ListForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockSchedRepo) ListByCustomer(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockSchedRepo) ListElapsed(ctx context.Context, now time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

// ------------------------------------------------------
// Notifier
// ------------------------------------------------------

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) JobUpdated(ctx context.Context, j *models.Job, customerID *uint) {
	m.Called(ctx, j, customerID)
}
