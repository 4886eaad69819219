package models

import "time"

// Cliente do lava-rápido. Walk-ins podem não ter registro aqui —
// nesse caso o agendamento guarda nome/telefone inline.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `json:"user_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
