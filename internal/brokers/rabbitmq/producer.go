package rabbitmq

import (
	"context"
	"fmt"
	"strconv"

	"github.com/robklaiss/foteam/internal/configs"
	"github.com/robklaiss/foteam/internal/logger"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}
type RabbitProducer struct {
	conn        *amqp.Connection
	channel     publisher
	exchange    string
	logProducer LogProducer
	logger      logger.PhotoLoggerInterface
	context     context.Context
	cancel      context.CancelFunc
}
type LogProducer interface {
	NewPhotoLog(level, place, traceid, msg string)
}

func NewRabbitProducer(config configs.RabbitMQConfig, kafkaprod LogProducer, log logger.PhotoLoggerInterface) (*RabbitProducer, error) {
	connString := fmt.Sprintf("amqp://%s:%s@%s:%s/", config.Name, config.Password, config.Host, strconv.Itoa(config.Port))
	conn, err := amqp.Dial(connString)
	if err != nil {
		log.Error("Failed to connect to Rabbit-Producer", zap.Error(err))
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		log.Error("Failed to open a channel to Rabbit-Producer", zap.Error(err))
		conn.Close()
		return nil, err
	}
	err = channel.ExchangeDeclare(
		config.Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Error("Failed to declare an exchange to Rabbit-Producer", zap.Error(err))
		conn.Close()
		return nil, err
	}
	producer := newProducer(channel, config.Exchange, kafkaprod, log)
	producer.conn = conn
	log.Info("Successful connect to Rabbit-Producer", zap.String("exchange", config.Exchange))
	return producer, nil
}
func newProducer(ch publisher, exchange string, kafkaprod LogProducer, log logger.PhotoLoggerInterface) *RabbitProducer {
	ctx, cancel := context.WithCancel(context.Background())
	return &RabbitProducer{channel: ch, exchange: exchange, logProducer: kafkaprod, logger: log, context: ctx, cancel: cancel}
}
func (rp *RabbitProducer) Close() {
	rp.cancel()
	rp.channel.Close()
	if rp.conn != nil {
		rp.conn.Close()
	}
	rp.logger.Info("Successful close Rabbit-Producer")
}
