package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Iush-Yadav/SafeStreet/internal/domain"
	"github.com/Iush-Yadav/SafeStreet/pkg/e"
)

// SnapshotQueue buffers outbound change-notification snapshots between the
// store subscriber and the webhook sender.
type SnapshotQueue struct {
	client *redis.Client
	key    string
}

func NewSnapshotQueue(client *redis.Client, key string) *SnapshotQueue {
	return &SnapshotQueue{client: client, key: key}
}

func (q *SnapshotQueue) Enqueue(ctx context.Context, payload domain.SnapshotPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *SnapshotQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.SnapshotPayload, error) {
	var p domain.SnapshotPayload

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
