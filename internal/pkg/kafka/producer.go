package kafka

import (
	"fmt"

	"github.com/IBM/sarama"

	"dispatch/pkg/logger"
)

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
}

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// подтверждение от всех ISR, иначе уведомление может потеряться молча
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	return cfg, nil
}

func NewProducer(log logger.Logger, brokers []string, versionStr string) (*Producer, error) {
	saramaConfig, err := NewProducerConfig(versionStr)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
	)

	return &Producer{
		log:      kafkaLog,
		producer: producer,
	}, nil
}

// Send публикует сообщение с ключом key в topic.
func (p *Producer) Send(topic, key string, value []byte) (partition int32, offset int64, err error) {
	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err = p.producer.SendMessage(message)
	if err != nil {
		return 0, 0, fmt.Errorf("send message to %s: %w", topic, err)
	}
	return partition, offset, nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
