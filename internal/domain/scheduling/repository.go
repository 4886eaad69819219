package scheduling

import (
	"context"
	"time"

	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

type Repository interface {
	// -------- Service package --------
	GetServicePackage(
		ctx context.Context,
		id uint,
	) (*models.ServicePackage, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	GetCustomerByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Customer, error)

	// -------- Appointment (create / allocate) --------

	// CreateWithBayAllocation roda a alocação de baia dentro de uma
	// transação com lock nos agendamentos do dia e persiste o novo
	// registro. Retorna no_bay_available se o pátio está cheio.
	CreateWithBayAllocation(
		ctx context.Context,
		ap *models.Appointment,
		bayCount int,
	) error

	// RescheduleWithBayAllocation refaz a alocação para o novo
	// intervalo, ignorando o próprio agendamento no conflito.
	RescheduleWithBayAllocation(
		ctx context.Context,
		ap *models.Appointment,
		bayCount int,
	) error

	// -------- Appointment (read / state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------

	// ListForDay devolve os agendamentos não cancelados cujo intervalo
	// começa no dia de ref, em ordem de início.
	ListForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	ListForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListByCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	// -------- Sweeper --------

	// ListElapsed devolve agendamentos confirmed/pending cujo horário
	// de fim já passou.
	ListElapsed(
		ctx context.Context,
		now time.Time,
	) ([]models.Appointment, error)
}
