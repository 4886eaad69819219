package job

import (
	"context"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/job"
	"github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

// Requester identifica quem está lendo: staff enxerga tudo, cliente só
// enxerga job cujo agendamento pai aponta para ele.
type Requester struct {
	UserID uint
	Role   string
}

func (r Requester) IsStaff() bool {
	return r.Role == "staff" || r.Role == "admin"
}

type GetJob struct {
	jobs         domain.Repository
	appointments scheduling.Repository
}

func NewGetJob(
	jobs domain.Repository,
	appointments scheduling.Repository,
) *GetJob {
	return &GetJob{
		jobs:         jobs,
		appointments: appointments,
	}
}

func (uc *GetJob) Execute(
	ctx context.Context,
	jobID uint,
	requester Requester,
) (*models.Job, error) {

	j, err := uc.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	if requester.IsStaff() {
		return j, nil
	}

	customer, err := uc.appointments.GetCustomerByUserID(ctx, requester.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("forbidden")
	}

	ap, err := uc.appointments.GetAppointment(ctx, j.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	if ap.CustomerID == nil || *ap.CustomerID != customer.ID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	return j, nil
}

// ------------------------------------------------------
// List (painel do pátio)
// ------------------------------------------------------

type ListJobs struct {
	jobs domain.Repository
}

func NewListJobs(jobs domain.Repository) *ListJobs {
	return &ListJobs{jobs: jobs}
}

func (uc *ListJobs) Execute(
	ctx context.Context,
	status string,
) ([]models.Job, error) {
	return uc.jobs.ListJobs(ctx, status)
}
