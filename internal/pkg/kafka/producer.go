package kafka

import (
	"ProtectAdmin/internal/api/config"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// Producer 内容变更事件生产者，前台站点的缓存重建管线消费该主题
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal

	if cfg.Sasl.Enable {
		saramaCfg.Net.SASL.Enable = true
		saramaCfg.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		saramaCfg.Net.SASL.User = cfg.Sasl.Username
		saramaCfg.Net.SASL.Password = cfg.Sasl.Password
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	log.Info("Kafka producer initialized", "topic", cfg.Topic)
	return &Producer{producer: producer, topic: cfg.Topic}, nil
}

// Send 按集合名做 key，保证同一集合的事件有序
func (s *Producer) Send(key string, payload []byte) error {
	_, _, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})
	return errors.Wrap(err, "failed to send kafka message")
}

func (s *Producer) Close() error {
	return s.producer.Close()
}
