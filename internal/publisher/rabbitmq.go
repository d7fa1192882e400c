package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"mpu/internal/domain"
)

// ActionPriceUpdate is the action of messages announcing an applied price.
const ActionPriceUpdate = "price_update"

// RabbitMQ publishes applied price updates to a durable direct exchange.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger = logger.With("component", "publisher")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// declare sets up a durable direct exchange and the queue bound to it.
func declare(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", cfg.QueueName, err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", q.Name, err)
	}
	return nil
}

// PriceUpdateMessage is the JSON body of a published price update.
type PriceUpdateMessage struct {
	Action    string      `json:"action"`
	RunID     uuid.UUID   `json:"run_id"`
	Update    PriceChange `json:"update"`
	Timestamp time.Time   `json:"timestamp"`
}

type PriceChange struct {
	ArticleID     int64     `json:"article_id"`
	ProductID     int64     `json:"product_id"`
	PreviousPrice float64   `json:"previous_price"`
	NewPrice      float64   `json:"new_price"`
	Amount        int       `json:"amount"`
	Comments      string    `json:"comments,omitempty"`
	AppliedAt     time.Time `json:"applied_at"`
}

func (r *RabbitMQ) Publish(ctx context.Context, runID uuid.UUID, update *domain.AppliedUpdate) error {
	msg := PriceUpdateMessage{
		Action: ActionPriceUpdate,
		RunID:  runID,
		Update: PriceChange{
			ArticleID:     update.ArticleID,
			ProductID:     update.ProductID,
			PreviousPrice: update.PreviousPrice,
			NewPrice:      update.NewPrice,
			Amount:        update.Amount,
			Comments:      update.Comments,
			AppliedAt:     update.AppliedAt,
		},
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    runID.String() + "-" + strconv.FormatInt(update.ArticleID, 10),
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish price update of article %d: %w", update.ArticleID, err)
	}

	r.logger.Debug("published price update",
		"run_id", runID,
		"article_id", update.ArticleID,
		"new_price", update.NewPrice,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
