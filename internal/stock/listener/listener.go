package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/stock"
	"github.com/fekuna/omnipos-storefront-service/pkg/broker"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

// StockListener consumes inventory events and keeps the stock cache fresh so
// cart validation sees stock changes without a catalog refetch.
type StockListener struct {
	consumer *broker.KafkaConsumer
	writer   stock.Writer
	logger   logger.ZapLogger
}

func NewStockListener(consumer *broker.KafkaConsumer, writer stock.Writer, logger logger.ZapLogger) *StockListener {
	return &StockListener{
		consumer: consumer,
		writer:   writer,
		logger:   logger,
	}
}

func (l *StockListener) Start(ctx context.Context) {
	l.logger.Info("Starting Stock Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Stock Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				// Don't log context canceled error as error
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type StockChangedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   StockPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type StockPayload struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Stock     int    `json:"stock"`
}

func (l *StockListener) processMessage(ctx context.Context, value []byte) {
	var event StockChangedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != "StockChanged" {
		return
	}

	if event.Payload.Stock < 0 {
		l.logger.Warn("Dropping negative stock level",
			zap.String("product_id", event.Payload.ProductID),
			zap.Int("stock", event.Payload.Stock),
		)
		return
	}

	err := l.writer.SetStock(ctx, event.Payload.ProductID, event.Payload.VariantID, event.Payload.Stock)
	if err != nil {
		l.logger.Error("Failed to update stock cache",
			zap.String("product_id", event.Payload.ProductID),
			zap.String("variant_id", event.Payload.VariantID),
			zap.Error(err),
		)
	}
}
