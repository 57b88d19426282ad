package queue

import (
	"fmt"

	"github.com/hibiken/asynq"
)

// Enqueuer submits fire-and-forget background tasks from the api process.
// The worker process consumes them; the api never waits on a result.
type Enqueuer interface {
	Enqueue(taskType string) error
	Close() error
}

type asynqEnqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(addr, password string, db int) Enqueuer {
	return &asynqEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (e *asynqEnqueuer) Enqueue(taskType string) error {
	_, err := e.client.Enqueue(asynq.NewTask(taskType, nil), asynq.Queue("low"), asynq.MaxRetry(1))
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}
	return nil
}

func (e *asynqEnqueuer) Close() error {
	return e.client.Close()
}
