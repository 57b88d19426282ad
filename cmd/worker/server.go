package main

import (
	"context"
	"log"

	pagesJob "portfolio-backend/internal/domains/pages/job"
	publicationJob "portfolio-backend/internal/domains/publication/job"
	"portfolio-backend/pkg/container"

	"github.com/hibiken/asynq"
)

// asynqServer wraps asynq.Server for graceful shutdown from main.
type asynqServer struct {
	*asynq.Server
}

func setupAsynqServer(c *container.Container) *asynqServer {
	mux := asynq.NewServeMux()

	refreshCitations := publicationJob.NewRefreshCitationsHandler(c.DocumentRepo, c.Crossref, c.CitationStore)
	warmPages := pagesJob.NewWarmPagesHandler(c.PageService)

	mux.Handle(publicationJob.TaskCitationRefresh, refreshCitations)
	mux.Handle(pagesJob.TaskPagesWarm, warmPages)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Queues: map[string]int{
				"default": 10,
				"low":     5,
			},
			Concurrency: 5,
			ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
				log.Printf("[Asynq] Task failed - Type: %s, Error: %v", task.Type(), err)
			}),
		},
	)

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

func (s *asynqServer) Shutdown() {
	log.Println("[Worker] Shutting down...")
	s.Server.Shutdown()
	log.Println("[Worker] Stopped")
}
