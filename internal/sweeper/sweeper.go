package sweeper

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/timezone"
)

// Sweeper promove agendamentos confirmed/pending cujo horário de fim já
// passou para completed. Roda de hora em hora e uma vez na subida do
// processo; pode ser disparado sob demanda pelo staff.
type Sweeper struct {
	repo scheduling.Repository
	tz   string
	cron *cron.Cron
}

func New(repo scheduling.Repository, tz string) *Sweeper {
	return &Sweeper{
		repo: repo,
		tz:   tz,
		cron: cron.New(cron.WithLocation(timezone.Location(tz))),
	}
}

// Start agenda a varredura horária e dispara a primeira imediatamente.
func (s *Sweeper) Start() {
	s.cron.AddFunc("@hourly", func() {
		if _, err := s.Run(context.Background()); err != nil {
			// falha fica para o próximo tick — sem retry imediato
			log.Println("sweep failed:", err)
		}
	})
	s.cron.Start()

	go func() {
		if _, err := s.Run(context.Background()); err != nil {
			log.Println("initial sweep failed:", err)
		}
	}()

	log.Println("appointment sweeper started")
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// Run executa uma varredura e devolve quantos agendamentos mudaram.
// Idempotente: sem agendamentos vencidos, nenhuma escrita acontece.
func (s *Sweeper) Run(ctx context.Context) (int, error) {
	now := timezone.NowIn(s.tz)

	elapsed, err := s.repo.ListElapsed(ctx, now)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range elapsed {
		ap := &elapsed[i]

		if err := scheduling.CanComplete(scheduling.Status(ap.Status)); err != nil {
			continue
		}

		ap.Status = string(scheduling.StatusCompleted)
		ap.CompletedAt = &now

		if err := s.repo.UpdateAppointment(ctx, ap); err != nil {
			log.Println("sweep: update failed for appointment", ap.ID, ":", err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Println("sweep: completed", updated, "elapsed appointments")
	}

	return updated, nil
}
