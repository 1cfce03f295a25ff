package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/chefacademy/backend/internal/models"
	"github.com/hibiken/asynq"
)

const (
	// TypeDepartmentCompleted is the asynq task type enqueued when a learner reaches 100% in a department
	TypeDepartmentCompleted = "progress:department_completed"
	// QueueNotifications is the queue completion emails are delivered from
	QueueNotifications = "notifications"

	maxDeliveryRetries = 5
)

// DepartmentCompletedPayload is the body of a department completion task
type DepartmentCompletedPayload struct {
	LearnerID  string            `json:"learnerId"`
	Email      string            `json:"email"`
	Username   string            `json:"username"`
	Department models.Department `json:"department"`
}

// NewDepartmentCompletedTask builds the asynq task announcing a completed department
func NewDepartmentCompletedTask(p DepartmentCompletedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(
		TypeDepartmentCompleted,
		payload,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(maxDeliveryRetries),
	), nil
}

// ParseDepartmentCompletedPayload decodes and validates the payload of t
func ParseDepartmentCompletedPayload(t *asynq.Task) (*DepartmentCompletedPayload, error) {
	var p DepartmentCompletedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	if p.LearnerID == "" || p.Email == "" {
		return nil, fmt.Errorf("learnerId and email are required")
	}
	if !p.Department.IsValid() {
		return nil, fmt.Errorf("unknown department %q", p.Department)
	}
	return &p, nil
}
