package main

import (
	"log"

	pagesJob "portfolio-backend/internal/domains/pages/job"
	publicationJob "portfolio-backend/internal/domains/publication/job"
	"portfolio-backend/pkg/container"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
)

// cronScheduler enqueues the periodic tasks: citation refresh daily, page
// warm on the revalidation cadence.
type cronScheduler struct {
	cron   *cron.Cron
	client *asynq.Client
}

func setupScheduler(c *container.Container) *cronScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})

	s := &cronScheduler{
		cron:   cron.New(),
		client: client,
	}

	enqueue := func(taskType string) func() {
		return func() {
			if _, err := client.Enqueue(asynq.NewTask(taskType, nil)); err != nil {
				log.Printf("[Scheduler] Failed to enqueue %s: %v", taskType, err)
			}
		}
	}

	// Citation counts move slowly; once a day is plenty.
	if _, err := s.cron.AddFunc("0 3 * * *", enqueue(publicationJob.TaskCitationRefresh)); err != nil {
		log.Fatalf("[Scheduler] Failed to register citation refresh: %v", err)
	}

	// Keep page views warm across cache expiries.
	if _, err := s.cron.AddFunc("* * * * *", enqueue(pagesJob.TaskPagesWarm)); err != nil {
		log.Fatalf("[Scheduler] Failed to register page warm: %v", err)
	}

	log.Println("[Scheduler] Starting...")
	s.cron.Start()

	return s
}

func (s *cronScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	if err := s.client.Close(); err != nil {
		log.Printf("[Scheduler] Failed to close client: %v", err)
	}
	log.Println("[Scheduler] Stopped")
}
