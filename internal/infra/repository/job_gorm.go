package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/job"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

type JobGormRepository struct {
	db *gorm.DB
}

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

// --------------------------------------------------
// Job
// --------------------------------------------------

func (r *JobGormRepository) GetJob(
	ctx context.Context,
	id uint,
) (*models.Job, error) {

	var j models.Job
	if err := r.db.WithContext(ctx).
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Appointment").
		First(&j, id).Error; err != nil {
		return nil, err
	}

	return &j, nil
}

func (r *JobGormRepository) GetJobByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Job, error) {

	var j models.Job
	if err := r.db.WithContext(ctx).
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("appointment_id = ?", appointmentID).
		First(&j).Error; err != nil {
		return nil, err
	}

	return &j, nil
}

func (r *JobGormRepository) ListJobs(
	ctx context.Context,
	status string,
) ([]models.Job, error) {

	q := r.db.WithContext(ctx).
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var jobs []models.Job
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}

	return jobs, nil
}

func (r *JobGormRepository) CreateJob(
	ctx context.Context,
	j *models.Job,
) error {

	if err := r.db.WithContext(ctx).Create(j).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("job_already_exists")
		}
		return err
	}
	return nil
}

func (r *JobGormRepository) UpdateJob(
	ctx context.Context,
	j *models.Job,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range j.Stages {
			if j.Stages[i].ID != 0 {
				if err := tx.Save(&j.Stages[i]).Error; err != nil {
					return err
				}
			}
		}

		return tx.Omit("Stages", "Notes", "Appointment").Save(j).Error
	})
}

// --------------------------------------------------
// Notes
// --------------------------------------------------

func (r *JobGormRepository) AddNote(
	ctx context.Context,
	note *models.JobNote,
) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *JobGormRepository) GetNote(
	ctx context.Context,
	jobID uint,
	noteID uint,
) (*models.JobNote, error) {

	var note models.JobNote
	if err := r.db.WithContext(ctx).
		Where("id = ? AND job_id = ?", noteID, jobID).
		First(&note).Error; err != nil {
		return nil, err
	}

	return &note, nil
}

func (r *JobGormRepository) UpdateNote(
	ctx context.Context,
	note *models.JobNote,
) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *JobGormRepository) DeleteNote(
	ctx context.Context,
	jobID uint,
	noteID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND job_id = ?", noteID, jobID).
		Delete(&models.JobNote{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *JobGormRepository) LatestGeneralNote(
	ctx context.Context,
	jobID uint,
) (*models.JobNote, error) {

	var note models.JobNote
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND type = ?", jobID, domain.NoteGeneral).
		Order("created_at DESC").
		First(&note).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// isUniqueViolation cobre o postgres (23505) sem depender do driver
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key")
}

// Compile-time check
var _ domain.Repository = (*JobGormRepository)(nil)
