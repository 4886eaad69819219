package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

func shopSettings() Settings {
	return Settings{
		BayCount:     3,
		OpeningTime:  "08:00",
		ClosingTime:  "18:00",
		SlotInterval: 30 * time.Minute,
		MinLeadTime:  2 * time.Hour,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeAvailableSlots(t *testing.T) {
	s := shopSettings()
	date := day(2026, 3, 10)
	dayBefore := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	t.Run("EmptyFutureDay", func(t *testing.T) {
		slots := ComputeAvailableSlots(date, time.Hour, nil, dayBefore, s)

		// 08:00 até 17:00 (último início com 1h cabendo até 18:00), de 30 em 30
		require.Len(t, slots, 19)
		assert.Equal(t, "08:00", slots[0].Start)
		assert.Equal(t, "09:00", slots[0].End)
		assert.Equal(t, "17:00", slots[len(slots)-1].Start)
		assert.Equal(t, "18:00", slots[len(slots)-1].End)
	})

	t.Run("LongServiceShrinksTail", func(t *testing.T) {
		slots := ComputeAvailableSlots(date, 4*time.Hour, nil, dayBefore, s)

		require.NotEmpty(t, slots)
		assert.Equal(t, "08:00", slots[0].Start)
		// 14:00 + 4h bate exatamente no fechamento; 14:30 já não cabe
		assert.Equal(t, "14:00", slots[len(slots)-1].Start)
	})

	t.Run("SlotVanishesWhenAllBaysBusy", func(t *testing.T) {
		existing := []models.Appointment{
			ap(1, 1, date.Add(10*time.Hour), date.Add(12*time.Hour)),
			ap(2, 2, date.Add(10*time.Hour), date.Add(12*time.Hour)),
			ap(3, 3, date.Add(10*time.Hour), date.Add(12*time.Hour)),
		}

		slots := ComputeAvailableSlots(date, time.Hour, existing, dayBefore, s)

		starts := map[string]bool{}
		for _, slot := range slots {
			starts[slot.Start] = true
		}

		// qualquer início cujo intervalo cruza 10:00–12:00 some
		assert.False(t, starts["09:30"])
		assert.False(t, starts["10:00"])
		assert.False(t, starts["11:30"])
		// encostado não conflita
		assert.True(t, starts["09:00"])
		assert.True(t, starts["12:00"])
	})

	t.Run("TwoBusyBaysStillOffer", func(t *testing.T) {
		existing := []models.Appointment{
			ap(1, 1, date.Add(10*time.Hour), date.Add(12*time.Hour)),
			ap(2, 2, date.Add(10*time.Hour), date.Add(12*time.Hour)),
		}

		slots := ComputeAvailableSlots(date, time.Hour, existing, dayBefore, s)

		starts := map[string]bool{}
		for _, slot := range slots {
			starts[slot.Start] = true
		}

		assert.True(t, starts["10:00"])
		assert.True(t, starts["11:00"])
	})

	t.Run("SameDayLeadTime", func(t *testing.T) {
		now := date.Add(9 * time.Hour) // 09:00 do próprio dia

		slots := ComputeAvailableSlots(date, time.Hour, nil, now, s)

		require.NotEmpty(t, slots)
		// 09:00 + 2h de antecedência → primeiro início oferecido 11:00
		assert.Equal(t, "11:00", slots[0].Start)
	})

	t.Run("LeadTimeDoesNotTouchFutureDays", func(t *testing.T) {
		now := time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC)

		slots := ComputeAvailableSlots(date, time.Hour, nil, now, s)

		require.NotEmpty(t, slots)
		assert.Equal(t, "08:00", slots[0].Start)
	})

	t.Run("SameDayTooLateYieldsNothing", func(t *testing.T) {
		now := date.Add(17 * time.Hour) // 17:00, lead até 19:00 — depois do fechamento

		slots := ComputeAvailableSlots(date, time.Hour, nil, now, s)

		assert.Empty(t, slots)
	})

	t.Run("CancelledIgnored", func(t *testing.T) {
		cancelled := ap(1, 1, date.Add(10*time.Hour), date.Add(12*time.Hour))
		cancelled.Status = string(StatusCancelled)
		busy := []models.Appointment{
			cancelled,
			ap(2, 2, date.Add(10*time.Hour), date.Add(12*time.Hour)),
			ap(3, 3, date.Add(10*time.Hour), date.Add(12*time.Hour)),
		}

		slots := ComputeAvailableSlots(date, time.Hour, busy, dayBefore, s)

		starts := map[string]bool{}
		for _, slot := range slots {
			starts[slot.Start] = true
		}

		assert.True(t, starts["10:00"])
	})
}
