package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishMessageEncodesJSON(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "gzip")

	err := p.PublishMessage(context.Background(), "finframe.errors", []map[string]string{{"message": "call failed"}})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "finframe.errors", w.msgs[0].Topic)
	assert.Nil(t, w.msgs[0].Key)
	assert.JSONEq(t, `[{"message":"call failed"}]`, string(w.msgs[0].Value))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublishRawValues(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "lz4")

	require.NoError(t, p.Publish(context.Background(), "t", []byte("k"), "plain"))
	require.NoError(t, p.Publish(context.Background(), "t", nil, []byte{1, 2}))
	assert.Equal(t, []byte("plain"), w.msgs[0].Value)
	assert.Equal(t, []byte{1, 2}, w.msgs[1].Value)
}

func TestPublishWrapsWriterError(t *testing.T) {
	p := newProducer(&fakeWriter{err: errors.New("leader not available")}, "gzip")

	err := p.PublishMessage(context.Background(), "t", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leader not available")
}

func TestPublishRejectsUnencodable(t *testing.T) {
	p := newProducer(&fakeWriter{}, "gzip")
	assert.Error(t, p.PublishMessage(context.Background(), "t", make(chan int)))
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer()
	assert.Error(t, err)

	p, err := NewProducer(WithBrokers([]string{"localhost:9092"}), WithCompression("zstd"))
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestParseCompression(t *testing.T) {
	assert.Equal(t, kafka.Snappy, parseCompression("snappy"))
	assert.Equal(t, kafka.Gzip, parseCompression("unknown"))
}
