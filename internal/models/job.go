package models

import "time"

type Job struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Um job por agendamento — o uniqueIndex fecha a porta contra
	// dupla criação mesmo se o hook disparar duas vezes
	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment,omitempty"`

	// Denormalizado do agendamento para exibição sem join.
	// Pode ficar defasado se o agendamento for editado depois.
	CustomerName string `gorm:"size:100" json:"customer_name"`
	VehicleInfo  string `gorm:"size:255" json:"vehicle_info"`

	Status       string `gorm:"size:20;default:'scheduled'" json:"status"`
	CurrentStage string `gorm:"size:30" json:"current_stage"`
	Progress     int    `gorm:"default:0" json:"progress"`

	Stages []JobStage `gorm:"constraint:OnDelete:CASCADE;" json:"stages"`
	Notes  []JobNote  `gorm:"constraint:OnDelete:CASCADE;" json:"notes"`

	// Espelho da última nota do tipo general, para exibição rápida
	GeneralNote string `gorm:"size:500" json:"general_note"`

	HasIssue         bool   `gorm:"default:false" json:"has_issue"`
	IssueDescription string `gorm:"size:500" json:"issue_description"`

	HandoverRecipientName  string     `gorm:"size:100" json:"handover_recipient_name,omitempty"`
	HandoverRecipientPhone string     `gorm:"size:20" json:"handover_recipient_phone,omitempty"`
	HandedOverBy           string     `gorm:"size:100" json:"handed_over_by,omitempty"`
	HandedOverAt           *time.Time `json:"handed_over_at,omitempty"`

	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JobStage struct {
	ID    uint `gorm:"primaryKey" json:"id"`
	JobID uint `gorm:"index;not null" json:"job_id"`

	Position int    `json:"position"`
	Name     string `gorm:"size:30;not null" json:"name"`

	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CompletedBy string     `gorm:"size:100" json:"completed_by"`
	Notes       string     `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JobNote struct {
	ID    uint `gorm:"primaryKey" json:"id"`
	JobID uint `gorm:"index;not null" json:"job_id"`

	Content  string `gorm:"size:500;not null" json:"content"`
	Author   string `gorm:"size:100" json:"author"`
	Type     string `gorm:"size:20;default:'general'" json:"type"`
	Priority string `gorm:"size:10;default:'medium'" json:"priority"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
