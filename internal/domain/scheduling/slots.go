package scheduling

import (
	"time"

	"github.com/ShineWorks01/detailing-scheduler/internal/models"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
)

// Settings agrupa os parâmetros fixos do pátio (vêm do config, nunca
// hard-coded aqui) para manter o cálculo testável com outros tamanhos.
type Settings struct {
	BayCount     int
	OpeningTime  string // HH:mm
	ClosingTime  string // HH:mm
	SlotInterval time.Duration
	MinLeadTime  time.Duration
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func parseHM(day time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	)
}

// ComputeAvailableSlots enumera os horários de início possíveis para a
// data dada, descontando candidatos onde todas as baias já estão
// ocupadas. A regra de antecedência mínima só vale quando a data pedida
// é o dia corrente — datas futuras aceitam qualquer horário do expediente.
func ComputeAvailableSlots(
	date time.Time,
	duration time.Duration,
	existing []models.Appointment,
	now time.Time,
	s Settings,
) []TimeSlot {

	dayStart := parseHM(date, s.OpeningTime)
	dayEnd := parseHM(date, s.ClosingTime)

	isToday := timezone.SameDay(date, now)
	minStart := now.Add(s.MinLeadTime)

	slots := []TimeSlot{}

	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(s.SlotInterval) {

		slotStart := cur
		slotEnd := cur.Add(duration)

		// antecedência mínima — só no dia corrente
		if isToday && slotStart.Before(minStart) {
			continue
		}

		busy := 0
		for _, ap := range existing {
			if Status(ap.Status) == StatusCancelled {
				continue
			}
			if Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				busy++
			}
		}

		if busy < s.BayCount {
			slots = append(slots, TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots
}
