package job

import (
	"context"
	"log"
	"time"

	"github.com/ShineWorks01/detailing-scheduler/internal/audit"
	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/job"
	"github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
)

// Notifier publica atualizações ao vivo para o cliente dono do job.
// Falhas de publicação nunca podem derrubar a atualização em si.
type Notifier interface {
	JobUpdated(ctx context.Context, j *models.Job, customerID *uint)
}

// ======================================================
// USE CASE — máquina de progresso do job
// ======================================================

type JobProgress struct {
	jobs         domain.Repository
	appointments scheduling.Repository
	notifier     Notifier
	audit        *audit.Dispatcher
	tz           string
}

func NewJobProgress(
	jobs domain.Repository,
	appointments scheduling.Repository,
	notifier Notifier,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *JobProgress {
	return &JobProgress{
		jobs:         jobs,
		appointments: appointments,
		notifier:     notifier,
		audit:        auditDispatcher,
		tz:           tz,
	}
}

// ------------------------------------------------------
// AdvanceStage
// ------------------------------------------------------

type AdvanceStageInput struct {
	JobID uint
	Stage string
	Actor string
	Note  string

	StaffID *uint
}

func (uc *JobProgress) AdvanceStage(
	ctx context.Context,
	in AdvanceStageInput,
) (*models.Job, error) {

	j, err := uc.jobs.GetJob(ctx, in.JobID)
	if err != nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	if domain.Status(j.Status) == domain.StatusCompleted {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	idx := domain.StageIndex(in.Stage)
	if idx < 0 {
		return nil, httperr.ErrField("invalid_request", "stage")
	}
	canonical := domain.StageSequence()[idx]

	// os nomes gravados podem estar no esquema antigo — compara tudo
	// pela forma normalizada
	target := domain.NormalizeStageName(in.Stage)
	var stage *models.JobStage
	for i := range j.Stages {
		if domain.NormalizeStageName(j.Stages[i].Name) == target {
			stage = &j.Stages[i]
			break
		}
	}
	if stage == nil {
		return nil, httperr.ErrField("invalid_request", "stage")
	}

	now := timezone.NowIn(uc.tz)

	// flag de concluída nunca regride — remarcar uma etapa já feita
	// só atualiza o ponteiro de etapa corrente
	if !stage.Completed {
		stage.Completed = true
		stage.CompletedAt = &now
		stage.CompletedBy = in.Actor
		if in.Note != "" {
			stage.Notes = in.Note
		}
	}

	j.CurrentStage = canonical

	completed := 0
	for _, st := range j.Stages {
		if st.Completed {
			completed++
		}
	}
	j.Progress = domain.ProgressFor(completed, len(j.Stages))

	j.Status = string(domain.StatusForStage(canonical))
	if j.Progress >= 100 {
		j.Status = string(domain.StatusCompleted)
	}

	finished := domain.Status(j.Status) == domain.StatusCompleted
	if finished && j.CompletedAt == nil {
		j.CompletedAt = &now
	}

	if err := uc.jobs.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	if finished {
		uc.finishJob(ctx, j, in.Actor, now)
	}

	uc.notifyCustomer(ctx, j)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "job_stage_advanced",
		Entity:   "job",
		EntityID: &j.ID,
		Metadata: map[string]any{"stage": canonical},
	})

	return j, nil
}

// ------------------------------------------------------
// SetProgress
// ------------------------------------------------------

type SetProgressInput struct {
	JobID    uint
	Progress int
	Actor    string

	StaffID *uint
}

func (uc *JobProgress) SetProgress(
	ctx context.Context,
	in SetProgressInput,
) (*models.Job, error) {

	if in.Progress < 0 || in.Progress > 100 {
		return nil, httperr.ErrField("invalid_request", "progress")
	}

	j, err := uc.jobs.GetJob(ctx, in.JobID)
	if err != nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	if domain.Status(j.Status) == domain.StatusCompleted {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	j.Progress = in.Progress

	now := timezone.NowIn(uc.tz)
	finished := in.Progress == 100
	if finished {
		// 100% força conclusão, igual a fechar a etapa terminal
		j.Status = string(domain.StatusCompleted)
		j.CurrentStage = domain.StageCompleted
		if j.CompletedAt == nil {
			j.CompletedAt = &now
		}
	}

	if err := uc.jobs.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	if finished {
		uc.finishJob(ctx, j, in.Actor, now)
	}

	uc.notifyCustomer(ctx, j)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "job_progress_updated",
		Entity:   "job",
		EntityID: &j.ID,
		Metadata: map[string]any{"progress": in.Progress},
	})

	return j, nil
}

// ------------------------------------------------------
// ReportIssue
// ------------------------------------------------------

type ReportIssueInput struct {
	JobID       uint
	Description string
	Actor       string

	StaffID *uint
}

func (uc *JobProgress) ReportIssue(
	ctx context.Context,
	in ReportIssueInput,
) (*models.Job, error) {

	if in.Description == "" {
		return nil, httperr.ErrField("missing_field", "description")
	}

	j, err := uc.jobs.GetJob(ctx, in.JobID)
	if err != nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	if err := domain.CanReportIssue(domain.Status(j.Status)); err != nil {
		return nil, err
	}

	j.HasIssue = true
	j.IssueDescription = in.Description
	j.Status = string(domain.StatusIssue)

	if err := uc.jobs.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	note := &models.JobNote{
		JobID:    j.ID,
		Content:  in.Description,
		Author:   in.Actor,
		Type:     domain.NoteIssue,
		Priority: domain.PriorityHigh,
	}
	if err := uc.jobs.AddNote(ctx, note); err != nil {
		log.Println("issue note failed for job", j.ID, ":", err)
	}

	uc.notifyCustomer(ctx, j)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "job_issue_reported",
		Entity:   "job",
		EntityID: &j.ID,
	})

	return j, nil
}

// ------------------------------------------------------
// RecordHandover
// ------------------------------------------------------

type RecordHandoverInput struct {
	JobID          uint
	RecipientName  string
	RecipientPhone string
	Actor          string

	StaffID *uint
}

func (uc *JobProgress) RecordHandover(
	ctx context.Context,
	in RecordHandoverInput,
) (*models.Job, error) {

	if in.RecipientName == "" {
		return nil, httperr.ErrField("missing_field", "recipient_name")
	}

	j, err := uc.jobs.GetJob(ctx, in.JobID)
	if err != nil {
		return nil, httperr.ErrBusiness("job_not_found")
	}

	if err := domain.CanRecordHandover(domain.Status(j.Status)); err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	j.HandoverRecipientName = in.RecipientName
	j.HandoverRecipientPhone = in.RecipientPhone
	j.HandedOverBy = in.Actor
	j.HandedOverAt = &now

	if err := uc.jobs.UpdateJob(ctx, j); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "job_handover_recorded",
		Entity:   "job",
		EntityID: &j.ID,
	})

	return j, nil
}

// ------------------------------------------------------
// Conclusão — efeitos colaterais best-effort
// ------------------------------------------------------

// finishJob roda DEPOIS do job salvo: nota de retirada e sincronização
// do agendamento pai. O job é o registro autoritativo do trabalho —
// falha aqui loga e segue, nunca desfaz a atualização do job.
func (uc *JobProgress) finishJob(ctx context.Context, j *models.Job, actor string, now time.Time) {

	pickup := &models.JobNote{
		JobID:    j.ID,
		Content:  "Serviço concluído. Veículo pronto para retirada.",
		Author:   actor,
		Type:     domain.NoteCompletion,
		Priority: domain.PriorityMedium,
	}
	if err := uc.jobs.AddNote(ctx, pickup); err != nil {
		log.Println("pickup note failed for job", j.ID, ":", err)
	}

	ap, err := uc.appointments.GetAppointment(ctx, j.AppointmentID)
	if err != nil {
		log.Println("appointment sync failed for job", j.ID, ":", err)
		return
	}

	if scheduling.IsTerminal(scheduling.Status(ap.Status)) {
		return
	}

	ap.Status = string(scheduling.StatusCompleted)
	ap.CompletedAt = &now

	if err := uc.appointments.UpdateAppointment(ctx, ap); err != nil {
		log.Println("appointment sync failed for job", j.ID, ":", err)
	}
}

func (uc *JobProgress) notifyCustomer(ctx context.Context, j *models.Job) {
	if uc.notifier == nil {
		return
	}

	ap, err := uc.appointments.GetAppointment(ctx, j.AppointmentID)
	if err != nil {
		// best-effort: sem agendamento não há canal para publicar
		log.Println("notify skipped for job", j.ID, ":", err)
		return
	}

	uc.notifier.JobUpdated(ctx, j, ap.CustomerID)
}
