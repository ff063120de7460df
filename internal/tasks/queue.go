package tasks

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
)

// TemporalQueue is the producer side of the broker, backed by a Temporal
// client. It satisfies services.TaskQueue.
type TemporalQueue struct {
	cli client.Client
}

// NewTemporalQueue creates a new TemporalQueue
func NewTemporalQueue(cli client.Client) *TemporalQueue {
	return &TemporalQueue{cli: cli}
}

// EnqueueFanout starts a fan-out workflow for the post and returns as soon as
// the broker has accepted it. The workflow result is never awaited here; the
// worker role picks the task up independently.
func (q *TemporalQueue) EnqueueFanout(ctx context.Context, authorID, postID uint) error {
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("%s-%d-%d", FanoutTaskName, authorID, postID),
		TaskQueue: TaskQueueName,
	}

	_, err := q.cli.ExecuteWorkflow(ctx, options, FanoutTaskName, FanoutTask{
		AuthorID: authorID,
		PostID:   postID,
	})
	if err != nil {
		return fmt.Errorf("unable to enqueue fan-out task: %w", err)
	}
	return nil
}
