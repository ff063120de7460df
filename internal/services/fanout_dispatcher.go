package services

import (
	"context"
	"log"

	"github.com/creddit/backend/internal/repositories"
)

// TaskQueue is the producer side of the broker. EnqueueFanout returns once
// the broker has accepted the task; it never waits for the task to run.
type TaskQueue interface {
	EnqueueFanout(ctx context.Context, authorID, postID uint) error
}

// FanoutDispatcher decides whether a freshly committed post needs feed
// fan-out and hands it to the task queue. It runs inline in the post-creation
// request; the response to the client never waits on fan-out completion.
type FanoutDispatcher struct {
	followRepository repositories.FollowRepository
	queue            TaskQueue
}

// NewFanoutDispatcher creates a new FanoutDispatcher
func NewFanoutDispatcher(followRepo repositories.FollowRepository, queue TaskQueue) *FanoutDispatcher {
	return &FanoutDispatcher{
		followRepository: followRepo,
		queue:            queue,
	}
}

// OnPostCreated enqueues a fan-out task for the post unless the author has no
// followers, in which case there is no work to ship through the broker. The
// worker re-reads the follower list at execution time, so only the ids travel
// in the task payload.
func (d *FanoutDispatcher) OnPostCreated(ctx context.Context, authorID, postID uint) error {
	followerIDs, err := d.followRepository.GetFollowerIDs(authorID)
	if err != nil {
		return err
	}
	if len(followerIDs) == 0 {
		log.Printf("no followers for user %d, skipping fan-out for post %d", authorID, postID)
		return nil
	}

	return d.queue.EnqueueFanout(ctx, authorID, postID)
}
