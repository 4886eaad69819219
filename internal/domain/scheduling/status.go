package scheduling

import "github.com/ShineWorks01/detailing-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ===============================
// Booking Origin
// ===============================

const (
	OriginOnline = "online"
	OriginWalkIn = "walk_in"
)

// ===============================
// Validations
// ===============================

// IsTerminal: cancelado e concluído não voltam atrás
func IsTerminal(current Status) bool {
	return current == StatusCancelled || current == StatusCompleted
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule define se um agendamento pode ser remarcado
func CanReschedule(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusConfirmed && current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
