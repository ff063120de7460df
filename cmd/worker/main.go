// The worker consumes fan-out tasks from the feed task queue and
// materializes feed entries for followers. It shares no in-memory state with
// the API process; the broker is the only channel between them.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"go.temporal.io/sdk/client"
	"golang.org/x/sync/errgroup"

	"github.com/creddit/backend/internal/repositories"
	"github.com/creddit/backend/internal/services"
	"github.com/creddit/backend/internal/tasks"
	"github.com/creddit/backend/pkg/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := config.Load()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("worker exited with error: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.CloseDB()

	temporalClient, err := client.Dial(client.Options{HostPort: cfg.TemporalHostPort})
	if err != nil {
		return fmt.Errorf("failed to connect to Temporal: %w", err)
	}
	defer temporalClient.Close()

	followRepo := repositories.NewPostgresFollowRepository(db.Postgres)
	feedRepo := repositories.NewPostgresFeedRepository(db.Postgres)
	feedService := services.NewFeedService(feedRepo, followRepo)

	w := tasks.NewWorker(temporalClient, feedService)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := w.Start(); err != nil {
			return fmt.Errorf("failed to start worker: %w", err)
		}
		log.Printf("worker listening on task queue %q", tasks.TaskQueueName)

		// Block until shutdown is requested
		<-gCtx.Done()
		w.Stop()
		return nil
	})

	return g.Wait()
}
