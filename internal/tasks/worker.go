package tasks

import (
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/creddit/backend/internal/services"
)

// NewWorker sets up a fan-out worker on the feed task queue with the workflow
// and activities registered. Multiple worker instances may run concurrently;
// the feed table's unique index keeps redeliveries safe.
func NewWorker(cli client.Client, feedService *services.FeedService) worker.Worker {
	w := worker.New(cli, TaskQueueName, worker.Options{})

	w.RegisterWorkflowWithOptions(CreateEventForUsersWorkflow, workflow.RegisterOptions{
		Name: FanoutTaskName,
	})
	w.RegisterActivity(NewActivities(feedService))

	return w
}
