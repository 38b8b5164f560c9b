package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/robklaiss/foteam/internal/logger"
	"github.com/robklaiss/foteam/internal/model"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	failures  int
	published []amqp.Publishing
	keys      []string
}

func (f *fakeChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("channel closed")
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}
func (f *fakeChannel) Close() error { return nil }

type nopLogProducer struct{ logs int }

func (n *nopLogProducer) NewPhotoLog(level, place, traceid, msg string) { n.logs++ }

func testPhoto() *model.Photo {
	marathon := "m-1"
	return &model.Photo{
		ID:         "p-1",
		UserID:     "u-1",
		MarathonID: &marathon,
		URL:        "https://cdn.example/p-1.jpg",
		Numbers:    []string{"042", "7"},
		UploadedAt: time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC),
	}
}

func TestNewPhotoEvent_Publishes(t *testing.T) {
	ch := &fakeChannel{}
	rp := newProducer(ch, "photo_events", &nopLogProducer{}, logger.NewNopLogger())
	err := rp.NewPhotoEvent(context.Background(), PhotoUploadedKey, testPhoto(), "test", "trace-1")
	require.NoError(t, err)
	require.Equal(t, []string{PhotoUploadedKey}, ch.keys)

	var event PhotoEvent
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &event))
	require.Equal(t, "p-1", event.PhotoID)
	require.Equal(t, []string{"042", "7"}, event.Numbers)
	require.Equal(t, "2024-05-12T09:00:00Z", event.UploadedAt)
	require.Equal(t, "trace-1", event.Traceid)
}

func TestNewPhotoEvent_RetriesThenFails(t *testing.T) {
	retryDelay = time.Millisecond
	defer func() { retryDelay = time.Second }()

	ch := &fakeChannel{failures: 2}
	rp := newProducer(ch, "photo_events", &nopLogProducer{}, logger.NewNopLogger())
	require.NoError(t, rp.NewPhotoEvent(context.Background(), PhotoUploadedKey, testPhoto(), "test", "trace-2"))
	require.Len(t, ch.published, 1)

	ch = &fakeChannel{failures: 3}
	rp = newProducer(ch, "photo_events", &nopLogProducer{}, logger.NewNopLogger())
	require.Error(t, rp.NewPhotoEvent(context.Background(), PhotoUploadedKey, testPhoto(), "test", "trace-3"))
	require.Empty(t, ch.published)
}

func TestNewPhotoEvent_ClosedProducer(t *testing.T) {
	ch := &fakeChannel{}
	rp := newProducer(ch, "photo_events", &nopLogProducer{}, logger.NewNopLogger())
	rp.Close()
	require.ErrorIs(t, rp.NewPhotoEvent(context.Background(), PhotoUploadedKey, testPhoto(), "test", "trace-4"), context.Canceled)
}
