package appointment

import (
	"context"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	tz   string
}

func NewListAppointmentsByDate(repo domain.Repository, tz string) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo, tz: tz}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	dateStr string,
) ([]models.Appointment, error) {

	date, err := timezone.ParseDateIn(uc.tz, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	dayStart, dayEnd := timezone.DayBounds(date)

	return uc.repo.ListForPeriod(ctx, dayStart, dayEnd)
}
