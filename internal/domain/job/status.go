package job

import "github.com/ShineWorks01/detailing-scheduler/internal/httperr"

// ===============================
// Job Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusCheckIn    Status = "check-in"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusIssue      Status = "issue"
)

// ===============================
// Note types / priorities
// ===============================

const (
	NoteGeneral    = "general"
	NoteIssue      = "issue"
	NoteUpdate     = "update"
	NoteCompletion = "completion"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ===============================
// Derivations / validations
// ===============================

// StatusForStage deriva o status a partir da etapa avançada:
// check-in vira check-in, terminal vira completed, o resto é in-progress.
func StatusForStage(stageName string) Status {
	switch {
	case IsTerminalStage(stageName):
		return StatusCompleted
	case NormalizeStageName(stageName) == NormalizeStageName(StageCheckIn):
		return StatusCheckIn
	default:
		return StatusInProgress
	}
}

// ProgressFor calcula o percentual 0–100 com base nas etapas concluídas
func ProgressFor(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := completed * 100 / total
	if p > 100 {
		p = 100
	}
	return p
}

// CanReportIssue: problema só é um desvio de check-in ou in-progress
func CanReportIssue(current Status) error {
	if current != StatusCheckIn && current != StatusInProgress {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanRecordHandover: a entrega acontece depois do serviço concluído
func CanRecordHandover(current Status) error {
	if current != StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func IsValidNoteType(t string) bool {
	switch t {
	case NoteGeneral, NoteIssue, NoteUpdate, NoteCompletion:
		return true
	}
	return false
}

func IsValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
