package appointment

import (
	"context"
	"time"

	domain "github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
)

type CheckSlotInput struct {
	Date      string // YYYY-MM-DD
	Time      string // HH:mm
	PackageID uint

	// ExcludeAppointmentID pula o próprio registro (remarcação)
	ExcludeAppointmentID uint
}

// CheckSlot é a checagem instantânea usada pela UI antes do submit
// final. Roda o MESMO alocador do caminho de criação — divergir aqui é
// pedir para a confirmação otimista mentir.
type CheckSlot struct {
	repo     domain.Repository
	settings domain.Settings
	tz       string
}

func NewCheckSlot(
	repo domain.Repository,
	settings domain.Settings,
	tz string,
) *CheckSlot {
	return &CheckSlot{
		repo:     repo,
		settings: settings,
		tz:       tz,
	}
}

func (uc *CheckSlot) Execute(
	ctx context.Context,
	in CheckSlotInput,
) (*domain.AllocationResult, error) {

	start, err := timezone.ParseDateTimeIn(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	pkg, err := uc.repo.GetServicePackage(ctx, in.PackageID)
	if err != nil {
		return nil, httperr.ErrBusiness("package_not_found")
	}
	if !pkg.Active {
		return nil, httperr.ErrBusiness("package_inactive")
	}

	end := start.Add(time.Duration(pkg.DurationMin) * time.Minute)

	dayStart, dayEnd := timezone.DayBounds(start)
	existing, err := uc.repo.ListForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	result := domain.Allocate(
		start,
		end,
		existing,
		in.ExcludeAppointmentID,
		uc.settings.BayCount,
	)

	return &result, nil
}
