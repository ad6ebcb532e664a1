//go:build unit

package ledgerqueue_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"flash-coupon/internal/infra/ledgerqueue"
	"flash-coupon/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

type fakeReader struct {
	incoming chan kafka.Message

	mu        sync.Mutex
	committed []kafka.Message
	closed    bool
}

func newFakeReader() *fakeReader {
	return &fakeReader{incoming: make(chan kafka.Message, 10)}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case msg := <-r.incoming:
		return msg, nil
	}
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *fakeReader) committedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.committed)
}

func TestKafkaQueueEnqueuePublishesKeyedJSON(t *testing.T) {
	writer := &fakeWriter{}
	q := ledgerqueue.NewKafkaQueue(writer, newFakeReader(), &fakeAppender{}, testLedgerConfig(), nil, discardLogger())
	req := newRequest()

	require.NoError(t, q.Enqueue(context.Background(), req))

	require.Len(t, writer.msgs, 1)
	msg := writer.msgs[0]
	assert.Equal(t, req.CouponID.String()+":"+req.UserID.String(), string(msg.Key))

	var got shared.IssuanceRequest
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	if diff := cmp.Diff(req, got); diff != "" {
		t.Errorf("published request mismatch (-want +got):\n%s", diff)
	}
}

func TestKafkaQueueConsumesAndCommits(t *testing.T) {
	writer := &fakeWriter{}
	reader := newFakeReader()
	appender := &fakeAppender{}
	q := ledgerqueue.NewKafkaQueue(writer, reader, appender, testLedgerConfig(), nil, discardLogger())

	payload, err := json.Marshal(newRequest())
	require.NoError(t, err)
	reader.incoming <- kafka.Message{Offset: 1, Value: payload}
	reader.incoming <- kafka.Message{Offset: 2, Value: []byte("not json")}

	q.Start()
	require.Eventually(t, func() bool { return reader.committedCount() == 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, q.Stop(context.Background()))

	assert.Equal(t, 1, appender.count())
	assert.True(t, reader.closed)
	assert.True(t, writer.closed)
}
