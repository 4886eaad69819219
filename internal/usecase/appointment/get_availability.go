package appointment

import (
	"context"
	"time"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo     domain.Repository
	settings domain.Settings
	tz       string
}

func NewGetAvailability(
	repo domain.Repository,
	settings domain.Settings,
	tz string,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		settings: settings,
		tz:       tz,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	dateStr string,
	packageID uint,
) ([]domain.TimeSlot, error) {

	date, err := timezone.ParseDateIn(uc.tz, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	pkg, err := uc.repo.GetServicePackage(ctx, packageID)
	if err != nil {
		return nil, httperr.ErrBusiness("package_not_found")
	}
	if !pkg.Active {
		return nil, httperr.ErrBusiness("package_inactive")
	}

	dayStart, dayEnd := timezone.DayBounds(date)

	existing, err := uc.repo.ListForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	duration := time.Duration(pkg.DurationMin) * time.Minute

	return domain.ComputeAvailableSlots(date, duration, existing, now, uc.settings), nil
}
