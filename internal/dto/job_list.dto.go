package dto

import (
	"time"

	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

type JobSummaryDTO struct {
	ID            uint       `json:"id"`
	AppointmentID uint       `json:"appointment_id"`
	CustomerName  string     `json:"customer_name"`
	VehicleInfo   string     `json:"vehicle_info"`
	Status        string     `json:"status"`
	CurrentStage  string     `json:"current_stage"`
	Progress      int        `json:"progress"`
	HasIssue      bool       `json:"has_issue"`
	GeneralNote   string     `json:"general_note,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToJobSummaries(jobs []models.Job) []JobSummaryDTO {
	out := make([]JobSummaryDTO, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, JobSummaryDTO{
			ID:            j.ID,
			AppointmentID: j.AppointmentID,
			CustomerName:  j.CustomerName,
			VehicleInfo:   j.VehicleInfo,
			Status:        j.Status,
			CurrentStage:  j.CurrentStage,
			Progress:      j.Progress,
			HasIssue:      j.HasIssue,
			GeneralNote:   j.GeneralNote,
			CompletedAt:   j.CompletedAt,
			CreatedAt:     j.CreatedAt,
		})
	}
	return out
}
