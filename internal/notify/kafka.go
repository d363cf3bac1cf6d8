package notify

import (
	"context"
	"encoding/json"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/logger"
)

// LowStockEvent is the payload published to the restock topic.
type LowStockEvent struct {
	MovieID    string    `json:"movie_id"`
	Title      string    `json:"title"`
	Remaining  int       `json:"remaining"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaListener publishes low-stock events so external restock
// tooling can react. Publish failures are logged, not propagated.
type KafkaListener struct {
	threshold int
	writer    *kafkaGo.Writer
}

func NewKafkaListener(threshold int, brokers []string, topic string) *KafkaListener {
	return &KafkaListener{
		threshold: threshold,
		writer: &kafkaGo.Writer{
			Addr:     kafkaGo.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafkaGo.LeastBytes{},
		},
	}
}

func (l *KafkaListener) Threshold() int { return l.threshold }

func (l *KafkaListener) StockLow(movie *domain.Movie, remaining int) {
	event := LowStockEvent{
		MovieID:    movie.ID().String(),
		Title:      movie.Title(),
		Remaining:  remaining,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("failed to marshal low stock event", "title", movie.Title(), "error", err)
		return
	}
	err = l.writer.WriteMessages(context.Background(), kafkaGo.Message{
		Key:   []byte(movie.Title()),
		Value: payload,
	})
	if err != nil {
		logger.Error("failed to publish low stock event", "title", movie.Title(), "error", err)
	}
}

// Close releases the underlying Kafka writer.
func (l *KafkaListener) Close() error {
	return l.writer.Close()
}
