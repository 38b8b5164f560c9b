package kafka

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/robklaiss/foteam/internal/configs"
	"github.com/robklaiss/foteam/internal/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)
const (
	logStartService = "Photo-Service successfully started"
	logCloseService = "Photo-Service successfully closed"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
type KafkaProducer struct {
	writer  messageWriter
	logger  logger.PhotoLoggerInterface
	logchan chan PhotoLog
	topics  []string
	wg      *sync.WaitGroup
	context context.Context
	cancel  context.CancelFunc
}
type KafkaProducerService interface {
	NewPhotoLog(level, place, traceid, msg string)
}

func NewKafkaProducer(config configs.KafkaConfig, log logger.PhotoLoggerInterface) *KafkaProducer {
	brokers := strings.Split(config.BootstrapServers, ",")
	var acks kafka.RequiredAcks
	switch config.Acks {
	case "0":
		acks = kafka.RequireNone
	case "1":
		acks = kafka.RequireOne
	default:
		acks = kafka.RequireAll
	}
	w := &kafka.Writer{
		Addr:            kafka.TCP(brokers...),
		WriteTimeout:    10 * time.Second,
		WriteBackoffMin: time.Duration(config.RetryBackoffMs) * time.Millisecond,
		WriteBackoffMax: 5 * time.Second,
		BatchSize:       config.BatchSize,
		RequiredAcks:    acks,
	}
	producer := newProducer(w, log, []string{config.Topics.InfoLog, config.Topics.WarnLog, config.Topics.ErrorLog})
	log.Info("Successful connect to Kafka-Producer", zap.Strings("brokers", brokers))
	return producer
}
func newProducer(w messageWriter, log logger.PhotoLoggerInterface, topics []string) *KafkaProducer {
	ctx, cancel := context.WithCancel(context.Background())
	producer := &KafkaProducer{
		writer:  w,
		logger:  log,
		logchan: make(chan PhotoLog, 1000),
		topics:  topics,
		wg:      &sync.WaitGroup{},
		context: ctx,
		cancel:  cancel,
	}
	for i := 1; i <= 3; i++ {
		producer.wg.Add(1)
		go producer.sendLogs(i)
	}
	return producer
}
func (kf *KafkaProducer) Close() {
	kf.cancel()
	kf.wg.Wait()
	if err := kf.writer.Close(); err != nil {
		kf.logger.Warn("Failed to close Kafka-Producer writer", zap.Error(err))
	}
	kf.logger.Info("Successful close Kafka-Producer")
}
