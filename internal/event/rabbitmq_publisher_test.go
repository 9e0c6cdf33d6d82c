package event

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange   string
	routingKey string
	msg        amqp.Publishing
	publishErr error
	closed     bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange = exchange
	c.routingKey = key
	c.msg = msg
	return c.publishErr
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewRabbitMQEventPublisherRejectsBadInput(t *testing.T) {
	_, err := NewRabbitMQEventPublisher(nil, "customers", testLogger)
	assert.EqualError(t, err, "RabbitMQ connection cannot be nil")
}

func TestPublishCustomerCreated(t *testing.T) {
	ch := &fakeChannel{}
	pub := newPublisher(func() (amqpChannel, error) { return ch, nil }, "customer-management", testLogger)

	evt := NewCustomerCreatedEvent(CustomerEventPayload{ID: 7, CustomerID: "CUST001", Shop: "YI"})
	require.NoError(t, pub.PublishCustomerCreated(context.Background(), evt))

	assert.Equal(t, "customer-management", ch.exchange)
	assert.Equal(t, routingKeyCustomerCreated, ch.routingKey)
	assert.Equal(t, evt.EventID, ch.msg.MessageId)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.True(t, ch.closed, "channel should be closed after publishing")

	var decoded CustomerCreatedEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, "CUST001", decoded.Payload.CustomerID)
	assert.Equal(t, int64(7), decoded.Payload.ID)
}

func TestPublishCustomerDeletedRoutingKey(t *testing.T) {
	ch := &fakeChannel{}
	pub := newPublisher(func() (amqpChannel, error) { return ch, nil }, "x", testLogger)

	require.NoError(t, pub.PublishCustomerDeleted(context.Background(), NewCustomerDeletedEvent("CUST001")))
	assert.Equal(t, routingKeyCustomerDeleted, ch.routingKey)
}

func TestPublishErrors(t *testing.T) {
	t.Run("channel cannot be opened", func(t *testing.T) {
		pub := newPublisher(func() (amqpChannel, error) { return nil, errors.New("connection closed") }, "x", testLogger)

		err := pub.PublishCustomerUpdated(context.Background(), NewCustomerUpdatedEvent(CustomerEventPayload{}))
		assert.ErrorContains(t, err, "failed to open channel")
	})

	t.Run("broker rejects the message", func(t *testing.T) {
		ch := &fakeChannel{publishErr: errors.New("channel/connection is not open")}
		pub := newPublisher(func() (amqpChannel, error) { return ch, nil }, "x", testLogger)

		err := pub.PublishCustomerUpdated(context.Background(), NewCustomerUpdatedEvent(CustomerEventPayload{}))
		assert.ErrorContains(t, err, "failed to publish message")
		assert.True(t, ch.closed)
	})
}

func TestNewEventsCarryUniqueIDs(t *testing.T) {
	a := NewCustomerDeletedEvent("CUST001")
	b := NewCustomerDeletedEvent("CUST001")

	assert.NotEqual(t, a.EventID, b.EventID)
	_, err := uuid.Parse(a.EventID)
	assert.NoError(t, err)
	assert.False(t, a.Timestamp.IsZero())
}

func TestNopPublisher(t *testing.T) {
	var pub EventPublisher = NopPublisher{}
	ctx := context.Background()

	assert.NoError(t, pub.PublishCustomerCreated(ctx, CustomerCreatedEvent{}))
	assert.NoError(t, pub.PublishCustomerUpdated(ctx, CustomerUpdatedEvent{}))
	assert.NoError(t, pub.PublishCustomerDeleted(ctx, CustomerDeletedEvent{}))
}
