package tasks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gopkg.in/mail.v2"
)

// Deduper is the subset of the redis client used to send each completion email once
type Deduper interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Sender delivers prepared email messages. *mail.Dialer implements it.
type Sender interface {
	DialAndSend(m ...*mail.Message) error
}

// CompletionProcessor handles department completion tasks
type CompletionProcessor struct {
	dedupe Deduper
	sender Sender
	from   string
	logger *zap.Logger
}

// NewCompletionProcessor creates a new completion email processor
func NewCompletionProcessor(dedupe Deduper, sender Sender, from string, logger *zap.Logger) *CompletionProcessor {
	return &CompletionProcessor{
		dedupe: dedupe,
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// CompletionKey returns the redis key marking that the learner was congratulated for the department
func CompletionKey(learnerID, department string) string {
	return fmt.Sprintf("completion:%s:%s", learnerID, department)
}

// HandleDepartmentCompleted sends the congratulation email for a completed department.
//
// The email is sent at most once per learner and department. Malformed payloads are not retried.
func (p *CompletionProcessor) HandleDepartmentCompleted(ctx context.Context, t *asynq.Task) error {
	payload, err := ParseDepartmentCompletedPayload(t)
	if err != nil {
		return fmt.Errorf("invalid %s task: %v: %w", TypeDepartmentCompleted, err, asynq.SkipRetry)
	}

	key := CompletionKey(payload.LearnerID, string(payload.Department))
	first, err := p.dedupe.SetNX(ctx, key, time.Now().Unix(), 0).Result()
	if err != nil {
		return fmt.Errorf("failed to mark completion: %w", err)
	}
	if !first {
		p.logger.Info("Completion email already sent",
			zap.String("learner_id", payload.LearnerID),
			zap.String("department", string(payload.Department)))
		return nil
	}

	if err := p.sendEmail(payload); err != nil {
		// Release the marker so the retried task can send again
		if delErr := p.dedupe.Del(ctx, key).Err(); delErr != nil {
			p.logger.Error("failed to release completion marker", zap.String("key", key), zap.Error(delErr))
		}
		return err
	}

	p.logger.Info("Completion email sent",
		zap.String("learner_id", payload.LearnerID),
		zap.String("department", string(payload.Department)))
	return nil
}

// sendEmail sends an email using gopkg.in/mail.v2
func (p *CompletionProcessor) sendEmail(payload *DepartmentCompletedPayload) error {
	department := departmentTitle(string(payload.Department))

	m := mail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", payload.Email)
	m.SetHeader("Subject", fmt.Sprintf("You completed the %s department", department))
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Congratulations %s!</p><p>You have watched every lesson of the %s department. Your certificate is ready to download from your profile.</p>",
		payload.Username, department,
	))

	if err := p.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func departmentTitle(d string) string {
	if d == "" {
		return d
	}
	return strings.ToUpper(d[:1]) + d[1:]
}
