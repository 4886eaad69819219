package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Service package
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServicePackage(
	ctx context.Context,
	id uint,
) (*models.ServicePackage, error) {

	var pkg models.ServicePackage
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *AppointmentGormRepository) GetCustomerByUserID(
	ctx context.Context,
	userID uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Appointment (create / allocate)
// --------------------------------------------------

// allocateTx roda a alocação dentro da transação dada, segurando lock
// nos agendamentos do dia. Fecha a corrida read-then-write: duas
// criações concorrentes do mesmo horário serializam no FOR UPDATE.
func (r *AppointmentGormRepository) allocateTx(
	tx *gorm.DB,
	ap *models.Appointment,
	excludeID uint,
	bayCount int,
) error {

	dayStart, dayEnd := timezone.DayBounds(ap.StartTime)

	var sameDay []models.Appointment
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"status <> ? AND start_time >= ? AND start_time < ?",
			string(scheduling.StatusCancelled), dayStart, dayEnd,
		).
		Find(&sameDay).Error; err != nil {
		return err
	}

	result := scheduling.Allocate(ap.StartTime, ap.EndTime, sameDay, excludeID, bayCount)
	if !result.Available {
		return httperr.ErrBusiness("no_bay_available")
	}

	ap.BayNumber = *result.Bay
	return nil
}

func (r *AppointmentGormRepository) CreateWithBayAllocation(
	ctx context.Context,
	ap *models.Appointment,
	bayCount int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.allocateTx(tx, ap, 0, bayCount); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}

func (r *AppointmentGormRepository) RescheduleWithBayAllocation(
	ctx context.Context,
	ap *models.Appointment,
	bayCount int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.allocateTx(tx, ap, ap.ID, bayCount); err != nil {
			return err
		}
		return tx.Save(ap).Error
	})
}

// --------------------------------------------------
// Appointment (read / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("ServicePackage").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "bay_number", "status").
		Where(
			"status <> ? AND start_time >= ? AND start_time < ?",
			string(scheduling.StatusCancelled), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("ServicePackage").
		Where(
			"start_time >= ? AND start_time < ?",
			start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error

	if err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListByCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("ServicePackage").
		Where("customer_id = ?", customerID).
		Order("start_time DESC").
		Find(&aps).Error

	if err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Sweeper
// --------------------------------------------------

func (r *AppointmentGormRepository) ListElapsed(
	ctx context.Context,
	now time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"status IN ? AND end_time < ?",
			[]string{
				string(scheduling.StatusConfirmed),
				string(scheduling.StatusPending),
			},
			now,
		).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ scheduling.Repository = (*AppointmentGormRepository)(nil)
