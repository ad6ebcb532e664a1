package ledgerqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/errs"
	"flash-coupon/internal/pkg/metrics"
	"flash-coupon/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
)

const fetchRetryDelay = time.Second

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.LedgerTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
}

func NewKafkaReader(cfg config.KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.LedgerTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

// KafkaQueue publishes issuance requests to a topic and consumes them back into the ledger.
// Offsets are committed only after the append was handled, so delivery is at-least-once.
type KafkaQueue struct {
	writer  MessageWriter
	reader  MessageReader
	deliver *deliverer
	logger  *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewKafkaQueue(writer MessageWriter, reader MessageReader, appender Appender, cfg config.LedgerConfig, m *metrics.Metrics, logger *slog.Logger) *KafkaQueue {
	return &KafkaQueue{
		writer:  writer,
		reader:  reader,
		deliver: newDeliverer(appender, cfg, m, logger),
		logger:  logger,
	}
}

func messageKey(req shared.IssuanceRequest) []byte {
	return []byte(req.CouponID.String() + ":" + req.UserID.String())
}

func (q *KafkaQueue) Enqueue(ctx context.Context, req shared.IssuanceRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return errs.Wrap(err, "failed to encode issuance request")
	}

	msg := kafka.Message{Key: messageKey(req), Value: payload}
	carrier := headerCarrier{headers: &msg.Headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	if err := q.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish issuance request")
	}
	return nil
}

func (q *KafkaQueue) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	q.cancel = cancel

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.consume(ctx)
	}()
	q.logger.Info("ledger queue started", "driver", config.LedgerDriverKafka)
}

func (q *KafkaQueue) Stop(ctx context.Context) error {
	if q.cancel != nil {
		q.cancel()
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	var stopErr error
	select {
	case <-done:
	case <-ctx.Done():
		stopErr = ctx.Err()
	}

	if err := q.reader.Close(); err != nil {
		stopErr = fmt.Errorf("failed to close kafka reader: %w", err)
	}
	if err := q.writer.Close(); err != nil {
		stopErr = fmt.Errorf("failed to close kafka writer: %w", err)
	}
	q.logger.Info("ledger queue stopped", "driver", config.LedgerDriverKafka)
	return stopErr
}

func (q *KafkaQueue) consume(ctx context.Context) {
	for {
		msg, err := q.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			q.logger.Error("failed to fetch ledger message", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(fetchRetryDelay):
			}
			continue
		}

		if !q.handle(ctx, msg) && ctx.Err() != nil {
			return
		}

		if err := q.reader.CommitMessages(ctx, msg); err != nil {
			q.logger.Error("failed to commit ledger message",
				"partition", msg.Partition,
				"offset", msg.Offset,
				"error", err,
			)
		}
	}
}

// handle reports false when the request was not delivered.
func (q *KafkaQueue) handle(ctx context.Context, msg kafka.Message) bool {
	var req shared.IssuanceRequest
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		q.logger.Error("skipping undecodable ledger message",
			"partition", msg.Partition,
			"offset", msg.Offset,
			"error", err,
		)
		return true
	}

	carrier := headerCarrier{headers: &msg.Headers}
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)
	return q.deliver.deliver(ctx, req)
}

type headerCarrier struct {
	headers *[]kafka.Header
}

func (c headerCarrier) Get(key string) string {
	for _, h := range *c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c headerCarrier) Set(key, value string) {
	for i, h := range *c.headers {
		if h.Key == key {
			(*c.headers)[i].Value = []byte(value)
			return
		}
	}
	*c.headers = append(*c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(*c.headers))
	for _, h := range *c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}
