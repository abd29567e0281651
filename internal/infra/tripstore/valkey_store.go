package tripstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/cinematic-itinerary/internal/domain/itinerary"
)

// ValkeyStore keeps trending counters in a Valkey sorted set.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "itinerary"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) IncrementDestination(ctx context.Context, key, display string) error {
	if key == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(key).Build()).Error(); err != nil {
		return err
	}
	if display != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(key)).Value(display).Nx().Build()).Error()
	}
	return nil
}

func (s *ValkeyStore) TopDestinations(ctx context.Context, limit int) ([]itinerary.TrendingDestination, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	scores, err := resp.AsZScores()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]itinerary.TrendingDestination, 0, len(scores))
	for _, z := range scores {
		out = append(out, itinerary.TrendingDestination{
			Destination: s.fetchDisplay(ctx, z.Member),
			Count:       int64(z.Score),
		})
	}
	return out, nil
}

func (s *ValkeyStore) fetchDisplay(ctx context.Context, key string) string {
	resp := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(key)).Build())
	display, err := resp.ToString()
	if err != nil || display == "" {
		return key
	}
	return display
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending", s.prefix)
}

func (s *ValkeyStore) displayKey(key string) string {
	return fmt.Sprintf("%s:display:%s", s.prefix, key)
}

var _ itinerary.TrendingStore = (*ValkeyStore)(nil)
