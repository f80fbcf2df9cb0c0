package worker

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"levelup-api/internal/apperr"
	"levelup-api/internal/broker"
	"levelup-api/internal/models"
	"levelup-api/internal/store"
	"levelup-api/internal/util"
)

// StockAlertWorker watches boleta events and warns when a product's stock
// falls below the configured threshold. Events are processed at most once,
// tracked through the processed_events table.
type StockAlertWorker struct {
	consumer  *broker.Consumer
	store     *store.Store
	threshold int
	logger    *zap.Logger
}

// NewStockAlertWorker creates a new stock alert worker.
func NewStockAlertWorker(consumer *broker.Consumer, store *store.Store, threshold int) *StockAlertWorker {
	return &StockAlertWorker{
		consumer:  consumer,
		store:     store,
		threshold: threshold,
		logger:    util.GetLogger(),
	}
}

// Start consumes events until the context is cancelled.
func (w *StockAlertWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting stock alert worker")
	return w.consumer.StartConsuming(ctx, w.handleMessage)
}

// Stop closes the underlying consumer.
func (w *StockAlertWorker) Stop() error {
	w.logger.Info("Stopping stock alert worker")
	return w.consumer.Close()
}

func (w *StockAlertWorker) handleMessage(ctx context.Context, msg kafka.Message) error {
	var base models.BaseEvent
	if err := json.Unmarshal(msg.Value, &base); err != nil {
		w.logger.Error("Failed to unmarshal event", zap.Error(err))
		return nil
	}

	if base.EventType != models.EventTypeBoletaCreated {
		return nil
	}

	processed, err := w.store.IsEventProcessed(ctx, base.EventID)
	if err != nil {
		return err
	}
	if processed {
		return nil
	}

	var event models.BoletaCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		w.logger.Error("Failed to unmarshal BoletaCreated event", zap.Error(err))
		return nil
	}

	for _, line := range event.Lines {
		producto, err := w.store.GetProductoByID(ctx, line.ProductoID)
		if err != nil {
			if apperr.IsKind(err, apperr.KindNotFound) {
				continue
			}
			return err
		}
		if producto.Stock < w.threshold {
			w.logger.Warn("Producto con stock bajo",
				zap.Int64("producto_id", producto.ID),
				zap.String("nombre", producto.Nombre),
				zap.Int("stock", producto.Stock),
				zap.Int("threshold", w.threshold))
		}
	}

	return w.store.MarkEventProcessed(ctx, base.EventID, base.EventType)
}
