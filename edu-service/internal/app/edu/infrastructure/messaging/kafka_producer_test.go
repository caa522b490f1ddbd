package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestNewKafkaProducer(t *testing.T) {
	producer := NewKafkaProducer([]string{"localhost:9092"}, "site_events")

	assert.Equal(t, "site_events", producer.topic)
	assert.Equal(t, "site_events", producer.writer.Topic)
	assert.Equal(t, "localhost:9092", producer.writer.Addr.String())
	assert.IsType(t, &kafka.LeastBytes{}, producer.writer.Balancer)
	assert.LessOrEqual(t, producer.writer.BatchTimeout, 100*time.Millisecond)

	assert.NoError(t, producer.Close())
}

func TestNoopPublisher(t *testing.T) {
	var publisher NoopPublisher

	assert.NoError(t, publisher.PublishMessage(context.Background(), "key", []byte("value")))
	assert.NoError(t, publisher.Close())
}
