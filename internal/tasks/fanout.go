package tasks

import (
	"context"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/creddit/backend/internal/services"
)

// TaskQueueName is the queue both the API producer and the worker listen on
const TaskQueueName = "feed"

// FanoutTaskName is the queue-visible name of the fan-out task
const FanoutTaskName = "create_event_for_users"

// FanoutTask is the wire payload delivered to the worker. The follower list
// deliberately stays out of the payload; the worker re-reads it fresh.
type FanoutTask struct {
	AuthorID uint `json:"author_id"`
	PostID   uint `json:"post_id"`
}

// Activities holds the collaborators the fan-out activities need
type Activities struct {
	feedService *services.FeedService
}

// NewActivities creates the activity set backed by the given feed service
func NewActivities(feedService *services.FeedService) *Activities {
	return &Activities{feedService: feedService}
}

// CreateEventForUsers materializes one feed row per current follower of the
// task's author. Duplicate deliveries complete successfully with zero rows
// written; any other storage failure propagates and lets the retry policy
// take over.
func (a *Activities) CreateEventForUsers(ctx context.Context, task FanoutTask) error {
	logger := activity.GetLogger(ctx)

	created, err := a.feedService.CreateEventForUsers(task.AuthorID, task.PostID)
	if err != nil {
		return err
	}
	if created == 0 {
		logger.Info("no feed entries to create", "author_id", task.AuthorID, "post_id", task.PostID)
		return nil
	}

	logger.Info("feed entries created", "author_id", task.AuthorID, "post_id", task.PostID, "count", created)
	return nil
}

// CreateEventForUsersWorkflow runs one fan-out task through a single batched
// activity with bounded retries.
func CreateEventForUsersWorkflow(ctx workflow.Context, task FanoutTask) error {
	options := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    5, // 0 is unlimited retries
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	a := &Activities{}
	return workflow.ExecuteActivity(ctx, a.CreateEventForUsers, task).Get(ctx, nil)
}
