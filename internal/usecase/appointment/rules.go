package appointment

import (
	"time"

	"github.com/ShineWorks01/detailing-scheduler/internal/httperr"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
)

// CheckLeadTime rejeita início no passado e, quando o pedido é para o
// dia corrente, início antes de now + antecedência mínima. Datas
// futuras não sofrem a regra de antecedência.
func CheckLeadTime(start, now time.Time, minLead time.Duration) error {
	if start.Before(now) {
		return httperr.ErrBusiness("too_soon")
	}
	if timezone.SameDay(start, now) && start.Before(now.Add(minLead)) {
		return httperr.ErrBusiness("too_soon")
	}
	return nil
}
