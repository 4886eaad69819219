package appointment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetServicePackage(ctx context.Context, id uint) (*models.ServicePackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServicePackage), args.Error(1)
}

func (m *mockRepo) GetOrCreateCustomer(ctx context.Context, name, phone, email string) (*models.Customer, error) {
	args := m.Called(ctx, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *mockRepo) GetCustomerByUserID(ctx context.Context, userID uint) (*models.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *mockRepo) CreateWithBayAllocation(ctx context.Context, ap *models.Appointment, bayCount int) error {
	return m.Called(ctx, ap, bayCount).Error(0)
}

func (m *mockRepo) RescheduleWithBayAllocation(ctx context.Context, ap *models.Appointment, bayCount int) error {
	return m.Called(ctx, ap, bayCount).Error(0)
}

func (m *mockRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) ListForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) ListForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) ListByCustomer(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) ListElapsed(ctx context.Context, now time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

type mockJobHook struct {
	mock.Mock
}

func (m *mockJobHook) Execute(ctx context.Context, appointmentID uint) (*models.Job, bool, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Job), args.Bool(1), args.Error(2)
}
