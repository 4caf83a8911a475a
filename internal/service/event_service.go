package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	EventPatientCreated     = "patient.created"
	EventPatientUpdated     = "patient.updated"
	EventPatientDeleted     = "patient.deleted"
	EventDoctorCreated      = "doctor.created"
	EventDoctorUpdated      = "doctor.updated"
	EventDoctorDeleted      = "doctor.deleted"
	EventAppointmentCreated = "appointment.created"
	EventAppointmentUpdated = "appointment.updated"
	EventAppointmentDeleted = "appointment.deleted"

	// Timeout for a single publish
	eventPublishTimeout = 2 * time.Second
)

// Event is the message sent to subscribers after a record changes
type Event struct {
	Name       string      `json:"event"`
	EntityID   uint        `json:"entity_id"`
	Data       interface{} `json:"data,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// EventPublisher notifies listeners (dashboards, sync workers) about changes.
// Publishing is best effort: failures are logged and never reach the caller.
type EventPublisher interface {
	Publish(ctx context.Context, name string, entityID uint, data interface{})
}

// RedisEventPublisher sends events to a Redis channel. Each publish runs in
// its own goroutine so a slow Redis never delays the request that caused it.
type RedisEventPublisher struct {
	client  *redis.Client
	channel string
	log     *logrus.Logger
	wg      sync.WaitGroup
}

func NewRedisEventPublisher(client *redis.Client, channel string, log *logrus.Logger) *RedisEventPublisher {
	return &RedisEventPublisher{
		client:  client,
		channel: channel,
		log:     log,
	}
}

func (p *RedisEventPublisher) Publish(ctx context.Context, name string, entityID uint, data interface{}) {
	// Encode now, data may be reused by the caller once Publish returns
	body, err := json.Marshal(Event{
		Name:       name,
		EntityID:   entityID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		p.log.Warnf("Failed to encode event %s: %+v", name, err)
		return
	}

	// Detach from the request so a finished response does not cancel the publish
	pubCtx := context.WithoutCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.send(pubCtx, name, entityID, body)
	}()
}

func (p *RedisEventPublisher) send(ctx context.Context, name string, entityID uint, body []byte) {
	ctx, cancel := context.WithTimeout(ctx, eventPublishTimeout)
	defer cancel()

	if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		p.log.WithFields(logrus.Fields{
			"event":     name,
			"entity_id": entityID,
			"channel":   p.channel,
		}).Warnf("Failed to publish event: %+v", err)
		return
	}

	p.log.Debugf("Published event %s for entity %d", name, entityID)
}

// Wait blocks until every publish started so far has finished
func (p *RedisEventPublisher) Wait() {
	p.wg.Wait()
}

type noopEventPublisher struct{}

// NewNoopEventPublisher is used when Redis is disabled
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(context.Context, string, uint, interface{}) {}
