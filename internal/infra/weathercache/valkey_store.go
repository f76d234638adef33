package weathercache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/outfitter/internal/domain/weather"
)

// ValkeyStore caches readings in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "weather"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, key string) (weather.Reading, bool, error) {
	result := s.client.Do(ctx, s.client.B().Get().Key(s.entryKey(key)).Build())
	payload, err := result.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return weather.Reading{}, false, nil
		}
		return weather.Reading{}, false, err
	}
	var reading weather.Reading
	if err := json.Unmarshal([]byte(payload), &reading); err != nil {
		return weather.Reading{}, false, err
	}
	return reading, true, nil
}

func (s *ValkeyStore) Set(ctx context.Context, key string, reading weather.Reading, ttl time.Duration) error {
	payload, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

var _ weather.Cache = (*ValkeyStore)(nil)
