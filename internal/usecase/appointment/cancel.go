package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/ShineWorks01/detailing-scheduler/internal/audit"
	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
)

type CancelAppointmentInput struct {
	AppointmentID uint
	Reason        string
	RefundAmount  *float64
	RefundMethod  string
	StaffID       *uint
}

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDispatcher,
		tz:    tz,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)

	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	// estorno: valor padrão é o que foi pago
	refund := ap.Payment.Amount
	if in.RefundAmount != nil {
		refund = *in.RefundAmount
	}

	ap.Payment.Status = string(domain.PaymentRefunded)
	ap.Payment.RefundID = uuid.NewString()
	ap.Payment.RefundAmount = refund
	ap.Payment.RefundReason = in.Reason
	ap.Payment.RefundMethod = in.RefundMethod
	if ap.Payment.RefundMethod == "" {
		ap.Payment.RefundMethod = ap.Payment.Method
	}
	ap.Payment.RefundedAt = &now

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"refund_amount": refund,
			"reason":        in.Reason,
		},
	})

	return ap, nil
}
