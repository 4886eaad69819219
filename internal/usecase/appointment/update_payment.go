package appointment

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/ShineWorks01/detailing-scheduler/internal/audit"
	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

type UpdatePaymentInput struct {
	AppointmentID uint
	Status        string
	Method        string
	TransactionID string
	Amount        *float64
	StaffID       *uint
}

// UpdatePayment registra o resultado da cobrança (feita fora daqui) e
// dispara o mesmo hook de criação de job do caminho de criação — o job
// nasce quando o agendamento fica confirmed + pago, não importa por
// qual porta isso aconteceu.
type UpdatePayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	jobs  JobHook
}

func NewUpdatePayment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	jobs JobHook,
) *UpdatePayment {
	return &UpdatePayment{
		repo:  repo,
		audit: auditDispatcher,
		jobs:  jobs,
	}
}

func (uc *UpdatePayment) Execute(
	ctx context.Context,
	in UpdatePaymentInput,
) (*models.Appointment, error) {

	switch domain.PaymentStatus(in.Status) {
	case domain.PaymentPending, domain.PaymentCompleted, domain.PaymentFailed, domain.PaymentRefunded:
	default:
		return nil, httperr.ErrField("invalid_request", "payment_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// cancelado não recebe pagamento novo (o estorno já foi registrado lá)
	if domain.Status(ap.Status) == domain.StatusCancelled {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	ap.Payment.Status = in.Status
	if in.Method != "" {
		ap.Payment.Method = in.Method
	}
	if in.Amount != nil {
		ap.Payment.Amount = *in.Amount
	}
	if in.Status == string(domain.PaymentCompleted) {
		ap.Payment.TransactionID = in.TransactionID
		if ap.Payment.TransactionID == "" {
			ap.Payment.TransactionID = uuid.NewString()
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// hook pós-persistência (idempotente)
	if uc.jobs != nil {
		if _, _, err := uc.jobs.Execute(ctx, ap.ID); err != nil {
			log.Println("job hook failed for appointment", ap.ID, ":", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "payment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"payment_status": in.Status},
	})

	return ap, nil
}
