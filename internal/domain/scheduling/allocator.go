package scheduling

import (
	"time"

	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

// AllocationResult é o resultado de uma tentativa de alocação de baia.
// Bay é nil quando nenhuma baia está livre.
type AllocationResult struct {
	Available    bool  `json:"available"`
	Bay          *int  `json:"bay"`
	OccupiedBays []int `json:"occupied_bays"`
}

// Overlaps testa intervalos semiabertos [s1,e1) x [s2,e2).
// Agendamentos encostados (um termina quando o outro começa) não conflitam.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// Allocate escolhe a menor baia livre para [start, end) dado o dia já
// carregado. excludeID pula o próprio agendamento durante remarcação
// (0 = não excluir). A mesma rotina atende criação, walk-in, remarcação
// e a checagem instantânea de horário — a semântica de sobreposição tem
// que ser uma só.
func Allocate(
	start time.Time,
	end time.Time,
	existing []models.Appointment,
	excludeID uint,
	bayCount int,
) AllocationResult {

	occupied := map[int]bool{}

	for _, ap := range existing {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			occupied[ap.BayNumber] = true
		}
	}

	occupiedList := make([]int, 0, len(occupied))
	for bay := 1; bay <= bayCount; bay++ {
		if occupied[bay] {
			occupiedList = append(occupiedList, bay)
		}
	}

	// menor baia livre, ordem numérica crescente — desempate determinístico
	for bay := 1; bay <= bayCount; bay++ {
		if !occupied[bay] {
			b := bay
			return AllocationResult{
				Available:    true,
				Bay:          &b,
				OccupiedBays: occupiedList,
			}
		}
	}

	return AllocationResult{
		Available:    false,
		Bay:          nil,
		OccupiedBays: occupiedList,
	}
}
