package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type PhotoLog struct {
	Level     string `json:"-"`
	Service   string `json:"service"`
	Place     string `json:"place"`
	TraceID   string `json:"trace_id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

func (kf *KafkaProducer) NewPhotoLog(level, place, traceid, msg string) {
	newlog := PhotoLog{
		Level:     level,
		Service:   "Photo-Service",
		Place:     place,
		TraceID:   traceid,
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   msg,
	}
	kf.mirror(newlog)
	select {
	case <-kf.context.Done():
		kf.logger.Warn("Producer closing, dropping log", zap.String("place", place), zap.String("trace_id", traceid))
	case kf.logchan <- newlog:
	default:
		kf.logger.Warn("Log channel is full, dropping log", zap.String("place", place), zap.String("trace_id", traceid))
	}
}

// mirror writes the log line locally so the service stays observable while Kafka is down.
func (kf *KafkaProducer) mirror(l PhotoLog) {
	fields := []zap.Field{zap.String("place", l.Place), zap.String("trace_id", l.TraceID)}
	switch l.Level {
	case LogLevelError:
		kf.logger.Error(l.Message, fields...)
	case LogLevelWarn:
		kf.logger.Warn(l.Message, fields...)
	default:
		kf.logger.Info(l.Message, fields...)
	}
}
func topicFor(level string) string {
	return "photo-" + strings.ToLower(level) + "-log-topic"
}
func (kf *KafkaProducer) sendLogs(num int) {
	defer kf.wg.Done()
	for {
		select {
		case <-kf.context.Done():
			kf.logger.Debug("Context canceled, stopping Kafka-worker", zap.Int("worker", num))
			return
		case logg := <-kf.logchan:
			kf.writeLog(num, logg)
		}
	}
}
func (kf *KafkaProducer) writeLog(num int, logg PhotoLog) {
	ctx, cancel := context.WithTimeout(kf.context, 5*time.Second)
	defer cancel()
	data, err := json.Marshal(logg)
	if err != nil {
		kf.logger.Error("Failed to marshal log", zap.Int("worker", num), zap.Error(err))
		return
	}
	for i := 0; i < 3; i++ {
		if ctx.Err() != nil {
			kf.logger.Warn("Context canceled or expired, dropping log", zap.Int("worker", num), zap.String("trace_id", logg.TraceID))
			return
		}
		err = kf.writer.WriteMessages(ctx, kafka.Message{
			Topic: topicFor(logg.Level),
			Key:   []byte(logg.TraceID),
			Value: data,
		})
		if err == nil {
			return
		}
		kf.logger.Warn("Retry failed to send log", zap.Int("worker", num), zap.Int("attempt", i+1), zap.Error(err))
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
		}
	}
	kf.logger.Error("Failed to send log after all retries", zap.Int("worker", num), zap.Error(err))
}

type serviceLog struct {
	Message string `json:"service_log"`
}

func (kf *KafkaProducer) LogStart() {
	kf.sendServiceLog(serviceLog{Message: logStartService})
}
func (kf *KafkaProducer) LogClose() {
	kf.sendServiceLog(serviceLog{Message: logCloseService})
}
func (kf *KafkaProducer) sendServiceLog(logg serviceLog) {
	data, err := json.Marshal(logg)
	if err != nil {
		kf.logger.Error("Failed to marshal service log", zap.Error(err))
		return
	}
	for _, topic := range kf.topics {
		if topic == "" {
			continue
		}
		if kf.context.Err() != nil {
			kf.logger.Debug("Context canceled or expired before send Service Log")
			return
		}
		ctx, cancel := context.WithTimeout(kf.context, 5*time.Second)
		err = kf.writer.WriteMessages(ctx, kafka.Message{Topic: topic, Value: data})
		cancel()
		if err != nil {
			kf.logger.Warn("Failed to send Service Log", zap.String("topic", topic), zap.Error(err))
		}
	}
}
