package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShineWorks01/detailing-scheduler/internal/domain/scheduling"
	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

// stubRepo cobre só o que a varredura toca; o resto da interface
// embutida estoura se for chamado.
type stubRepo struct {
	scheduling.Repository

	elapsed    []models.Appointment
	listErr    error
	updated    []models.Appointment
	updateErrs map[uint]error
}

func (s *stubRepo) ListElapsed(ctx context.Context, now time.Time) ([]models.Appointment, error) {
	return s.elapsed, s.listErr
}

func (s *stubRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := s.updateErrs[ap.ID]; err != nil {
		return err
	}
	s.updated = append(s.updated, *ap)
	return nil
}

func TestSweeperRun(t *testing.T) {
	ctx := context.Background()

	t.Run("NothingElapsed", func(t *testing.T) {
		repo := &stubRepo{}
		s := New(repo, "America/Sao_Paulo")

		updated, err := s.Run(ctx)
		require.NoError(t, err)
		assert.Zero(t, updated)
		assert.Empty(t, repo.updated)
	})

	t.Run("CompletesConfirmedAndPending", func(t *testing.T) {
		repo := &stubRepo{
			elapsed: []models.Appointment{
				{ID: 1, Status: string(scheduling.StatusConfirmed)},
				{ID: 2, Status: string(scheduling.StatusPending)},
			},
		}
		s := New(repo, "America/Sao_Paulo")

		updated, err := s.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, updated)

		for _, ap := range repo.updated {
			assert.Equal(t, string(scheduling.StatusCompleted), ap.Status)
			assert.NotNil(t, ap.CompletedAt)
		}
	})

	t.Run("TerminalLeftAlone", func(t *testing.T) {
		repo := &stubRepo{
			elapsed: []models.Appointment{
				{ID: 1, Status: string(scheduling.StatusCancelled)},
				{ID: 2, Status: string(scheduling.StatusCompleted)},
				{ID: 3, Status: string(scheduling.StatusConfirmed)},
			},
		}
		s := New(repo, "America/Sao_Paulo")

		updated, err := s.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, updated)

		require.Len(t, repo.updated, 1)
		assert.Equal(t, uint(3), repo.updated[0].ID)
	})

	t.Run("UpdateFailureSkipsAndContinues", func(t *testing.T) {
		repo := &stubRepo{
			elapsed: []models.Appointment{
				{ID: 1, Status: string(scheduling.StatusConfirmed)},
				{ID: 2, Status: string(scheduling.StatusConfirmed)},
			},
			updateErrs: map[uint]error{1: assert.AnError},
		}
		s := New(repo, "America/Sao_Paulo")

		updated, err := s.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, updated)
	})

	t.Run("ListErrorPropagates", func(t *testing.T) {
		repo := &stubRepo{listErr: assert.AnError}
		s := New(repo, "America/Sao_Paulo")

		_, err := s.Run(ctx)
		assert.Error(t, err)
	})
}
