package job

import (
	"context"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/job"
	"github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

// EnsureJob é o hook pós-persistência do agendamento: cria o job de
// acompanhamento quando (e somente quando) o agendamento está
// confirmed com pagamento completed. Idempotente — chamado de novo
// para o mesmo agendamento, encontra o job existente e não faz nada.
type EnsureJob struct {
	appointments scheduling.Repository
	jobs         domain.Repository
}

func NewEnsureJob(
	appointments scheduling.Repository,
	jobs domain.Repository,
) *EnsureJob {
	return &EnsureJob{
		appointments: appointments,
		jobs:         jobs,
	}
}

// Execute devolve o job e um flag dizendo se ele foi criado agora.
// (nil, false, nil) significa que o agendamento ainda não atingiu a
// condição confirmed + pago.
func (uc *EnsureJob) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Job, bool, error) {

	ap, err := uc.appointments.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, false, httperr.ErrBusiness("appointment_not_found")
	}

	// job nunca existe para agendamento não confirmado ou não pago
	if scheduling.Status(ap.Status) != scheduling.StatusConfirmed {
		return nil, false, nil
	}
	if scheduling.PaymentStatus(ap.Payment.Status) != scheduling.PaymentCompleted {
		return nil, false, nil
	}

	if existing, err := uc.jobs.GetJobByAppointment(ctx, ap.ID); err == nil {
		return existing, false, nil
	}

	sequence := domain.StageSequence()
	stages := make([]models.JobStage, 0, len(sequence))
	for i, name := range sequence {
		stages = append(stages, models.JobStage{
			Position: i + 1,
			Name:     name,
		})
	}

	j := &models.Job{
		AppointmentID: ap.ID,
		CustomerName:  ap.CustomerName,
		VehicleInfo:   ap.DisplayVehicle(),
		Status:        string(domain.StatusScheduled),
		CurrentStage:  domain.StageCheckIn,
		Progress:      0,
		Stages:        stages,
	}

	if err := uc.jobs.CreateJob(ctx, j); err != nil {
		// corrida entre dois disparos do hook: o uniqueIndex segura o
		// segundo insert, então o job já existe — busca e segue
		if httperr.IsBusiness(err, "job_already_exists") {
			if existing, err2 := uc.jobs.GetJobByAppointment(ctx, ap.ID); err2 == nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}

	return j, true, nil
}
