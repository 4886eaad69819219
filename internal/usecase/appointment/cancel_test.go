package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetAppointment", mock.Anything, uint(9)).Return(nil, assert.AnError)

		uc := NewCancelAppointment(repo, nil, testTZ)

		_, err := uc.Execute(ctx, CancelAppointmentInput{AppointmentID: 9})
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})

	t.Run("AlreadyCancelled", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetAppointment", mock.Anything, uint(1)).
			Return(&models.Appointment{ID: 1, Status: string(domain.StatusCancelled)}, nil)

		uc := NewCancelAppointment(repo, nil, testTZ)

		_, err := uc.Execute(ctx, CancelAppointmentInput{AppointmentID: 1})
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("CompletedCannotCancel", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetAppointment", mock.Anything, uint(1)).
			Return(&models.Appointment{ID: 1, Status: string(domain.StatusCompleted)}, nil)

		uc := NewCancelAppointment(repo, nil, testTZ)

		_, err := uc.Execute(ctx, CancelAppointmentInput{AppointmentID: 1})
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("RefundDefaultsToPaidAmount", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetAppointment", mock.Anything, uint(1)).
			Return(&models.Appointment{
				ID:     1,
				Status: string(domain.StatusConfirmed),
				Payment: models.Payment{
					Amount: 150,
					Status: string(domain.PaymentCompleted),
					Method: "pix",
				},
			}, nil)
		repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

		uc := NewCancelAppointment(repo, nil, testTZ)

		ap, err := uc.Execute(ctx, CancelAppointmentInput{
			AppointmentID: 1,
			Reason:        "cliente desistiu",
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelled), ap.Status)
		assert.NotNil(t, ap.CancelledAt)
		assert.Equal(t, string(domain.PaymentRefunded), ap.Payment.Status)
		assert.Equal(t, 150.0, ap.Payment.RefundAmount)
		assert.Equal(t, "pix", ap.Payment.RefundMethod)
		assert.Equal(t, "cliente desistiu", ap.Payment.RefundReason)
		assert.NotEmpty(t, ap.Payment.RefundID)
		assert.NotNil(t, ap.Payment.RefundedAt)
	})

	t.Run("PartialRefundOverride", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetAppointment", mock.Anything, uint(1)).
			Return(&models.Appointment{
				ID:     1,
				Status: string(domain.StatusConfirmed),
				Payment: models.Payment{
					Amount: 150,
					Status: string(domain.PaymentCompleted),
					Method: "credit_card",
				},
			}, nil)
		repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

		uc := NewCancelAppointment(repo, nil, testTZ)

		partial := 75.0
		ap, err := uc.Execute(ctx, CancelAppointmentInput{
			AppointmentID: 1,
			RefundAmount:  &partial,
			RefundMethod:  "pix",
		})
		require.NoError(t, err)

		assert.Equal(t, 75.0, ap.Payment.RefundAmount)
		assert.Equal(t, "pix", ap.Payment.RefundMethod)
	})
}
