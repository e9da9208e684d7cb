package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const availabilityKeyPrefix = "availability:"

// Availability is the cached result of a slot computation for one
// (doctor, date) pair.
type Availability struct {
	Available bool     `json:"available"`
	Slots     []string `json:"slots"`
}

// AvailabilityCache is a best-effort read-through cache for computed slot
// listings. Misses and Redis failures fall back to the database; writes to
// the appointment table invalidate eagerly and a short TTL bounds staleness
// if an invalidation is lost.
type AvailabilityCache interface {
	Get(ctx context.Context, doctorID uuid.UUID, date string) (*Availability, bool)
	Set(ctx context.Context, doctorID uuid.UUID, date string, availability *Availability)
	Invalidate(ctx context.Context, doctorID uuid.UUID, date string)
}

type redisAvailabilityCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) AvailabilityCache {
	return &redisAvailabilityCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func availabilityKey(doctorID uuid.UUID, date string) string {
	return fmt.Sprintf("%s%s:%s", availabilityKeyPrefix, doctorID, date)
}

func (c *redisAvailabilityCache) Get(ctx context.Context, doctorID uuid.UUID, date string) (*Availability, bool) {
	payload, err := c.client.Get(ctx, availabilityKey(doctorID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Availability cache read failed: %+v", err)
		}
		return nil, false
	}

	var availability Availability
	if err := json.Unmarshal(payload, &availability); err != nil {
		c.log.Warnf("Availability cache entry corrupt, dropping: %+v", err)
		c.Invalidate(ctx, doctorID, date)
		return nil, false
	}

	return &availability, true
}

func (c *redisAvailabilityCache) Set(ctx context.Context, doctorID uuid.UUID, date string, availability *Availability) {
	payload, err := json.Marshal(availability)
	if err != nil {
		c.log.Warnf("Failed to encode availability for cache: %+v", err)
		return
	}

	if err := c.client.Set(ctx, availabilityKey(doctorID, date), payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Availability cache write failed: %+v", err)
	}
}

func (c *redisAvailabilityCache) Invalidate(ctx context.Context, doctorID uuid.UUID, date string) {
	if err := c.client.Del(ctx, availabilityKey(doctorID, date)).Err(); err != nil {
		c.log.Warnf("Availability cache invalidation failed: %+v", err)
	}
}
