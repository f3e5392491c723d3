package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"medistay/models"
)

const TypeSendEmail = "notification:email"

// NewEmailTask wraps an email payload in an asynq task for the background
// notification worker.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendEmail, b, asynq.MaxRetry(3)), nil
}
