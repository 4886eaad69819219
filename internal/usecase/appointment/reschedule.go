package appointment

import (
	"context"
	"log"
	"time"

	"github.com/ShineWorks01/detailing-scheduler/internal/audit"
	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	Date          string // YYYY-MM-DD
	Time          string // HH:mm
	StaffID       *uint
}

type RescheduleAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	jobs     JobHook
	settings domain.Settings
	tz       string
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	jobs JobHook,
	settings domain.Settings,
	tz string,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		audit:    auditDispatcher,
		jobs:     jobs,
		settings: settings,
		tz:       tz,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// terminal não remarca
	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	start, err := timezone.ParseDateTimeIn(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// a regra de antecedência vale de novo para o NOVO horário
	now := timezone.NowIn(uc.tz)
	if err := CheckLeadTime(start, now, uc.settings.MinLeadTime); err != nil {
		return nil, err
	}

	duration := time.Duration(ap.ServicePackage.DurationMin) * time.Minute
	if duration <= 0 {
		pkg, err := uc.repo.GetServicePackage(ctx, ap.ServicePackageID)
		if err != nil {
			return nil, httperr.ErrBusiness("package_not_found")
		}
		duration = time.Duration(pkg.DurationMin) * time.Minute
	}
	end := start.Add(duration)

	ap.StartTime = start
	ap.EndTime = end

	// realoca ignorando o próprio registro no conflito
	if err := uc.repo.RescheduleWithBayAllocation(ctx, ap, uc.settings.BayCount); err != nil {
		return nil, err
	}

	// o hook dispara em todo persist — se a criação do job falhou antes,
	// a remarcação é mais uma chance de refazê-la
	if uc.jobs != nil {
		if _, _, err := uc.jobs.Execute(ctx, ap.ID); err != nil {
			log.Println("job hook failed for appointment", ap.ID, ":", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.StaffID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
