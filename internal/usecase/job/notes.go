package job

import (
	"context"
	"log"

	"github.com/ShineWorks01/detailing-scheduler/internal/audit"
	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/job"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

// ======================================================
// USE CASE — notas do job
// ======================================================

type JobNotes struct {
	jobs  domain.Repository
	audit *audit.Dispatcher
}

func NewJobNotes(jobs domain.Repository, auditDispatcher *audit.Dispatcher) *JobNotes {
	return &JobNotes{
		jobs:  jobs,
		audit: auditDispatcher,
	}
}

// ------------------------------------------------------
// Add
// ------------------------------------------------------

type AddNoteInput struct {
	JobID    uint
	Content  string
	Author   string
	Type     string
	Priority string

	StaffID *uint
}

func (uc *JobNotes) Add(
	ctx context.Context,
	in AddNoteInput,
) (*models.JobNote, error) {

	if in.Content == "" {
		return nil, httperr.ErrField("missing_field", "content")
	}

	noteType := in.Type
	if noteType == "" {
		noteType = domain.NoteGeneral
	}
	if !domain.IsValidNoteType(noteType) {
		return nil, httperr.ErrField("invalid_request", "type")
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.IsValidPriority(priority) {
		return nil, httperr.ErrField("invalid_request", "priority")
	}

	j, err := uc.jobs.GetJob(ctx, in.JobID)
	if err != nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	note := &models.JobNote{
		JobID:    j.ID,
		Content:  in.Content,
		Author:   in.Author,
		Type:     noteType,
		Priority: priority,
	}

	if err := uc.jobs.AddNote(ctx, note); err != nil {
		return nil, err
	}

	uc.refreshGeneralMirror(ctx, j)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "job_note_added",
		Entity:   "job",
		EntityID: &j.ID,
	})

	return note, nil
}

// ------------------------------------------------------
// Update
// ------------------------------------------------------

type UpdateNoteInput struct {
	JobID   uint
	NoteID  uint
	Content string

	StaffID *uint
}

func (uc *JobNotes) Update(
	ctx context.Context,
	in UpdateNoteInput,
) (*models.JobNote, error) {

	if in.Content == "" {
		return nil, httperr.ErrField("missing_field", "content")
	}

	j, err := uc.jobs.GetJob(ctx, in.JobID)
	if err != nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	note, err := uc.jobs.GetNote(ctx, in.JobID, in.NoteID)
	if err != nil {
		return nil, httperr.ErrBusiness("note_not_found")
	}

	note.Content = in.Content
	if err := uc.jobs.UpdateNote(ctx, note); err != nil {
		return nil, err
	}

	uc.refreshGeneralMirror(ctx, j)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "job_note_updated",
		Entity:   "job",
		EntityID: &j.ID,
	})

	return note, nil
}

// ------------------------------------------------------
// Delete
// ------------------------------------------------------

func (uc *JobNotes) Delete(
	ctx context.Context,
	jobID uint,
	noteID uint,
	staffID *uint,
) error {

	j, err := uc.jobs.GetJob(ctx, jobID)
	if err != nil {
		return httperr.ErrBusiness("job_not_found")
	}

	if err := uc.jobs.DeleteNote(ctx, jobID, noteID); err != nil {
		return httperr.ErrBusiness("note_not_found")
	}

	uc.refreshGeneralMirror(ctx, j)

	uc.audit.Dispatch(audit.Event{
		UserID:   staffID,
		Action:   "job_note_deleted",
		Entity:   "job",
		EntityID: &j.ID,
	})

	return nil
}

// ------------------------------------------------------
// Espelho da nota general
// ------------------------------------------------------

// refreshGeneralMirror recalcula o campo de exibição rápida a partir da
// nota general mais recente — só a última conta.
func (uc *JobNotes) refreshGeneralMirror(ctx context.Context, j *models.Job) {
	latest, err := uc.jobs.LatestGeneralNote(ctx, j.ID)
	if err != nil {
		log.Println("general note mirror failed for job", j.ID, ":", err)
		return
	}

	content := ""
	if latest != nil {
		content = latest.Content
	}

	if j.GeneralNote == content {
		return
	}

	j.GeneralNote = content
	if err := uc.jobs.UpdateJob(ctx, j); err != nil {
		log.Println("general note mirror failed for job", j.ID, ":", err)
	}
}
