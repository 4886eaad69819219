package job

import (
	"context"

	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

type Repository interface {
	// -------- Job --------
	GetJob(
		ctx context.Context,
		id uint,
	) (*models.Job, error)

	GetJobByAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Job, error)

	ListJobs(
		ctx context.Context,
		status string,
	) ([]models.Job, error)

	// CreateJob respeita o uniqueIndex em appointment_id; inserção
	// duplicada retorna job_already_exists.
	CreateJob(
		ctx context.Context,
		j *models.Job,
	) error

	// UpdateJob salva o job e suas etapas.
	UpdateJob(
		ctx context.Context,
		j *models.Job,
	) error

	// -------- Notes --------
	AddNote(
		ctx context.Context,
		note *models.JobNote,
	) error

	GetNote(
		ctx context.Context,
		jobID uint,
		noteID uint,
	) (*models.JobNote, error)

	UpdateNote(
		ctx context.Context,
		note *models.JobNote,
	) error

	DeleteNote(
		ctx context.Context,
		jobID uint,
		noteID uint,
	) error

	// LatestGeneralNote devolve a nota general mais recente (nil se
	// não houver) para manter o espelho do job.
	LatestGeneralNote(
		ctx context.Context,
		jobID uint,
	) (*models.JobNote, error)
}
