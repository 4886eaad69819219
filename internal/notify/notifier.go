package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/ShineWorks01/detailing-scheduler/internal/models"
)

// JobUpdate é o payload publicado no canal do cliente a cada mudança
// de etapa/status. Sem ack e sem replay — é conveniência de tela, não log.
type JobUpdate struct {
	JobID         uint             `json:"job_id"`
	AppointmentID uint             `json:"appointment_id"`
	Status        string           `json:"status"`
	CurrentStage  string           `json:"current_stage"`
	Progress      int              `json:"progress"`
	Stages        []JobUpdateStage `json:"stages"`
}

type JobUpdateStage struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// CustomerChannel é a chave de assinatura por cliente
func CustomerChannel(customerID uint) string {
	return fmt.Sprintf("customers:%d:jobs", customerID)
}

type JobNotifier struct {
	client *redis.Client
}

func NewJobNotifier(client *redis.Client) *JobNotifier {
	return &JobNotifier{client: client}
}

// JobUpdated publica a atualização no canal do cliente dono do
// agendamento. Best-effort: falha aqui nunca derruba a operação que
// gerou o evento — loga e segue.
func (n *JobNotifier) JobUpdated(ctx context.Context, j *models.Job, customerID *uint) {
	if n == nil || n.client == nil {
		return
	}
	if customerID == nil {
		// walk-in sem cadastro não tem canal
		return
	}

	stages := make([]JobUpdateStage, 0, len(j.Stages))
	for _, st := range j.Stages {
		stages = append(stages, JobUpdateStage{
			Name:      st.Name,
			Completed: st.Completed,
		})
	}

	payload, err := json.Marshal(JobUpdate{
		JobID:         j.ID,
		AppointmentID: j.AppointmentID,
		Status:        j.Status,
		CurrentStage:  j.CurrentStage,
		Progress:      j.Progress,
		Stages:        stages,
	})
	if err != nil {
		log.Println("notify: marshal failed:", err)
		return
	}

	if err := n.client.Publish(ctx, CustomerChannel(*customerID), payload).Err(); err != nil {
		log.Println("notify: publish failed:", err)
	}
}
