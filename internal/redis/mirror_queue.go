package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"qrpatrol/internal/domain"
	"qrpatrol/pkg/e"

	"github.com/redis/go-redis/v9"
)

// MirrorQueue buffers spreadsheet rows between the scan path and the sheet
// sender. The scan path only pays for an LPush; the actual outbound call
// happens in the detached sender worker.
type MirrorQueue struct {
	client *redis.Client
	key    string
}

func NewMirrorQueue(client *redis.Client, key string) *MirrorQueue {
	return &MirrorQueue{client: client, key: key}
}

func (q *MirrorQueue) Enqueue(ctx context.Context, row domain.MirrorRow) error {
	b, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *MirrorQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.MirrorRow, error) {
	var row domain.MirrorRow

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return row, e.ErrMirrorEmpty
		}
		return row, err
	}
	if len(res) < 2 {
		return row, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &row); err != nil {
		return row, err
	}
	return row, nil
}
