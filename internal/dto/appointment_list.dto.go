package dto

import (
	"time"

	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	BayNumber     int       `json:"bay_number"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	Vehicle       string    `json:"vehicle"`
	PackageName   string    `json:"package_name"`
	PaymentStatus string    `json:"payment_status"`
	Origin        string    `json:"origin"`
}

func ToAppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AppointmentListDTO{
			ID:            ap.ID,
			StartTime:     ap.StartTime,
			EndTime:       ap.EndTime,
			BayNumber:     ap.BayNumber,
			Status:        ap.Status,
			CustomerName:  ap.CustomerName,
			Vehicle:       ap.DisplayVehicle(),
			PackageName:   ap.ServicePackage.Name,
			PaymentStatus: ap.Payment.Status,
			Origin:        ap.Origin,
		})
	}
	return out
}
