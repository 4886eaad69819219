package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/job"
	"github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

func paidAppointment() *models.Appointment {
	return &models.Appointment{
		ID:           1,
		CustomerName: "João Silva",
		VehiclePlate: "ABC1D23",
		Status:       string(scheduling.StatusConfirmed),
		Payment: models.Payment{
			Amount: 150,
			Status: string(scheduling.PaymentCompleted),
		},
	}
}

func TestEnsureJob(t *testing.T) {
	ctx := context.Background()

	t.Run("AppointmentNotFound", func(t *testing.T) {
		appointments := new(mockSchedRepo)
		appointments.On("GetAppointment", mock.Anything, uint(1)).Return(nil, assert.AnError)

		uc := NewEnsureJob(appointments, new(mockJobRepo))

		_, _, err := uc.Execute(ctx, 1)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})

	t.Run("UnpaidDoesNothing", func(t *testing.T) {
		ap := paidAppointment()
		ap.Payment.Status = string(scheduling.PaymentPending)

		appointments := new(mockSchedRepo)
		appointments.On("GetAppointment", mock.Anything, uint(1)).Return(ap, nil)

		jobs := new(mockJobRepo)
		uc := NewEnsureJob(appointments, jobs)

		j, created, err := uc.Execute(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, j)
		assert.False(t, created)
		jobs.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything)
	})

	t.Run("UnconfirmedDoesNothing", func(t *testing.T) {
		ap := paidAppointment()
		ap.Status = string(scheduling.StatusPending)

		appointments := new(mockSchedRepo)
		appointments.On("GetAppointment", mock.Anything, uint(1)).Return(ap, nil)

		uc := NewEnsureJob(appointments, new(mockJobRepo))

		j, created, err := uc.Execute(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, j)
		assert.False(t, created)
	})

	t.Run("CreatesJobWithFullStageList", func(t *testing.T) {
		appointments := new(mockSchedRepo)
		appointments.On("GetAppointment", mock.Anything, uint(1)).Return(paidAppointment(), nil)

		jobs := new(mockJobRepo)
		jobs.On("GetJobByAppointment", mock.Anything, uint(1)).Return(nil, assert.AnError)
		jobs.On("CreateJob", mock.Anything, mock.Anything).Return(nil)

		uc := NewEnsureJob(appointments, jobs)

		j, created, err := uc.Execute(ctx, 1)
		require.NoError(t, err)
		assert.True(t, created)

		assert.Equal(t, uint(1), j.AppointmentID)
		assert.Equal(t, "João Silva", j.CustomerName)
		assert.Equal(t, string(domain.StatusScheduled), j.Status)
		assert.Equal(t, domain.StageCheckIn, j.CurrentStage)
		assert.Equal(t, 0, j.Progress)

		require.Len(t, j.Stages, 6)
		for i, name := range domain.StageSequence() {
			assert.Equal(t, i+1, j.Stages[i].Position)
			assert.Equal(t, name, j.Stages[i].Name)
			assert.False(t, j.Stages[i].Completed)
		}
	})

	t.Run("IdempotentWhenJobExists", func(t *testing.T) {
		appointments := new(mockSchedRepo)
		appointments.On("GetAppointment", mock.Anything, uint(1)).Return(paidAppointment(), nil)

		existing := &models.Job{ID: 42, AppointmentID: 1}
		jobs := new(mockJobRepo)
		jobs.On("GetJobByAppointment", mock.Anything, uint(1)).Return(existing, nil)

		uc := NewEnsureJob(appointments, jobs)

		j, created, err := uc.Execute(ctx, 1)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, uint(42), j.ID)
		jobs.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything)
	})

	t.Run("RecoverFromInsertRace", func(t *testing.T) {
		appointments := new(mockSchedRepo)
		appointments.On("GetAppointment", mock.Anything, uint(1)).Return(paidAppointment(), nil)

		existing := &models.Job{ID: 42, AppointmentID: 1}
		jobs := new(mockJobRepo)
		// primeira consulta não acha, o insert bate no índice único,
		// a releitura acha o job do concorrente
		jobs.On("GetJobByAppointment", mock.Anything, uint(1)).
			Return(nil, assert.AnError).Once()
		jobs.On("CreateJob", mock.Anything, mock.Anything).
			Return(httperr.ErrBusiness("job_already_exists"))
		jobs.On("GetJobByAppointment", mock.Anything, uint(1)).
			Return(existing, nil)

		uc := NewEnsureJob(appointments, jobs)

		j, created, err := uc.Execute(ctx, 1)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, uint(42), j.ID)
	})
}
