package models

import "time"

// Payment é o sub-registro financeiro embutido no agendamento.
// A cobrança em si acontece fora deste serviço.
type Payment struct {
	Amount        float64    `json:"amount"`
	Status        string     `gorm:"column:payment_status;size:20;default:'pending'" json:"status"`
	Method        string     `gorm:"column:payment_method;size:30" json:"method"`
	TransactionID string     `gorm:"column:payment_transaction_id;size:64" json:"transaction_id"`
	RefundID      string     `gorm:"column:payment_refund_id;size:64" json:"refund_id,omitempty"`
	RefundAmount  float64    `gorm:"column:payment_refund_amount" json:"refund_amount,omitempty"`
	RefundReason  string     `gorm:"column:payment_refund_reason;size:255" json:"refund_reason,omitempty"`
	RefundMethod  string     `gorm:"column:payment_refund_method;size:30" json:"refund_method,omitempty"`
	RefundedAt    *time.Time `gorm:"column:payment_refunded_at" json:"refunded_at,omitempty"`
}

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Cliente cadastrado é opcional — walk-in só tem os campos inline
	CustomerID *uint     `json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	VehicleMake  string `gorm:"size:50" json:"vehicle_make"`
	VehicleModel string `gorm:"size:50" json:"vehicle_model"`
	VehicleYear  int    `json:"vehicle_year"`
	VehiclePlate string `gorm:"size:10" json:"vehicle_plate"`
	// Formato legado: descrição livre do veículo ("Gol prata ABC-1234")
	VehicleInfo string `gorm:"size:255" json:"vehicle_info"`

	ServicePackageID uint           `json:"service_package_id"`
	ServicePackage   ServicePackage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_package"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	BayNumber int       `json:"bay_number"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Payment Payment `gorm:"embedded" json:"payment"`

	Notes  string `gorm:"size:255" json:"notes"`
	Origin string `gorm:"size:20;default:'online'" json:"origin"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayVehicle resolve a forma estruturada ou o formato legado
func (a *Appointment) DisplayVehicle() string {
	if a.VehicleMake == "" && a.VehicleModel == "" && a.VehiclePlate == "" {
		return a.VehicleInfo
	}

	out := a.VehicleMake
	if a.VehicleModel != "" {
		if out != "" {
			out += " "
		}
		out += a.VehicleModel
	}
	if a.VehiclePlate != "" {
		if out != "" {
			out += " "
		}
		out += "(" + a.VehiclePlate + ")"
	}
	return out
}
