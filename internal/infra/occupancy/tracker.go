// Package occupancy decides which fence matches become alerts.
package occupancy

import (
	"context"
	"log/slog"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/geofence"
	"guardian/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "occupancy:"

// TrackerParams holds dependencies for the occupancy tracker
type TrackerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Client *redis.Client `optional:"true"`
}

// NewTracker selects the tracker for the configured detection mode.
func NewTracker(params TrackerParams) (service.OccupancyTracker, error) {
	detection := config.DetectionEverySample
	ttl := time.Duration(0)
	if params.Config.Geofence != nil {
		detection = params.Config.Geofence.Detection
		ttl = params.Config.Geofence.OccupancyTTL
	}

	switch detection {
	case "", config.DetectionEverySample:
		return NewStatelessTracker(), nil
	case config.DetectionTransition:
		if params.Client == nil {
			return nil, errors.New("transition detection requires a redis client")
		}
		params.Logger.Info("Geofence transition detection enabled", slog.Duration("occupancy_ttl", ttl))

		return NewRedisTracker(params.Client, ttl), nil
	default:
		return nil, errors.Errorf("unknown geofence detection mode %q", detection)
	}
}

type statelessTracker struct{}

// NewStatelessTracker reports every matched fence on every sample.
func NewStatelessTracker() service.OccupancyTracker {
	return statelessTracker{}
}

func (statelessTracker) Transitions(_ context.Context, _ uuid.UUID, _, matched []*entity.Geofence) ([]geofence.Transition, error) {
	return geofence.EveryMatch(matched), nil
}

func (statelessTracker) Forget(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type redisTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTracker keeps each teen's set of occupied fences in Redis and
// reports only entries and exits.
func NewRedisTracker(client *redis.Client, ttl time.Duration) service.OccupancyTracker {
	return &redisTracker{client: client, ttl: ttl}
}

func occupancyKey(teenID uuid.UUID) string {
	return keyPrefix + teenID.String()
}

func (t *redisTracker) Transitions(ctx context.Context, teenID uuid.UUID, fences, matched []*entity.Geofence) ([]geofence.Transition, error) {
	key := occupancyKey(teenID)

	members, err := t.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load fence occupancy")
	}

	previous := make(map[uuid.UUID]struct{}, len(members))
	for _, member := range members {
		id, parseErr := uuid.Parse(member)
		if parseErr != nil {
			continue
		}
		previous[id] = struct{}{}
	}

	transitions, current := geofence.Diff(previous, fences, matched)

	var added, removed []any
	for id := range current {
		if _, ok := previous[id]; !ok {
			added = append(added, id.String())
		}
	}
	for id := range previous {
		if _, ok := current[id]; !ok {
			removed = append(removed, id.String())
		}
	}

	_, err = t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(removed) > 0 {
			pipe.SRem(ctx, key, removed...)
		}
		if len(added) > 0 {
			pipe.SAdd(ctx, key, added...)
		}
		if t.ttl > 0 && len(current) > 0 {
			pipe.Expire(ctx, key, t.ttl)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store fence occupancy")
	}

	return transitions, nil
}

func (t *redisTracker) Forget(ctx context.Context, teenID, fenceID uuid.UUID) error {
	if err := t.client.SRem(ctx, occupancyKey(teenID), fenceID.String()).Err(); err != nil {
		return errors.Wrap(err, "failed to clear fence occupancy")
	}

	return nil
}
