package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robklaiss/foteam/internal/brokers/kafka"
	"github.com/robklaiss/foteam/internal/model"
	"github.com/streadway/amqp"
)

const PhotoUploadedKey = "photo.uploaded"

type PhotoEvent struct {
	PhotoID    string   `json:"photoid"`
	UserID     string   `json:"userid"`
	MarathonID *string  `json:"marathonid,omitempty"`
	URL        string   `json:"url"`
	Numbers    []string `json:"numbers"`
	UploadedAt string   `json:"uploaded_at"`
	Traceid    string   `json:"traceid"`
}

func (rp *RabbitProducer) NewPhotoEvent(ctx context.Context, routingKey string, photo *model.Photo, place string, traceid string) error {
	body, err := json.Marshal(&PhotoEvent{
		PhotoID:    photo.ID,
		UserID:     photo.UserID,
		MarathonID: photo.MarathonID,
		URL:        photo.URL,
		Numbers:    photo.Numbers,
		UploadedAt: photo.UploadedAt.UTC().Format(time.RFC3339),
		Traceid:    traceid,
	})
	if err != nil {
		rp.logProducer.NewPhotoLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Failed to marshal message: %v", err))
		return err
	}
	for attempt := 1; attempt <= 3; attempt++ {
		select {
		case <-rp.context.Done():
			rp.logProducer.NewPhotoLog(kafka.LogLevelError, place, traceid, "RabbitProducer's context was canceled")
			return rp.context.Err()
		case <-ctx.Done():
			rp.logProducer.NewPhotoLog(kafka.LogLevelError, place, traceid, "Request context was canceled")
			return ctx.Err()
		default:
		}
		err = rp.channel.Publish(
			rp.exchange,
			routingKey,
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Timestamp:    time.Now(),
				Body:         body,
			},
		)
		if err == nil {
			rp.logProducer.NewPhotoLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("Photo Event with routing key: %s was published on attempt %d", routingKey, attempt))
			return nil
		}
		rp.logProducer.NewPhotoLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("Attempt %d failed to publish Photo Event: %v", attempt, err))
		if attempt < 3 {
			select {
			case <-ctx.Done():
			case <-time.After(retryDelay):
			}
		}
	}
	return err
}

var retryDelay = time.Second
