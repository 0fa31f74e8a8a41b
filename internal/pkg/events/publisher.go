package events

import (
	"ProtectAdmin/internal/pkg/consts"
	"ProtectAdmin/internal/pkg/kafka"
	"ProtectAdmin/internal/pkg/redis"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ContentEvent 内容变更事件
type ContentEvent struct {
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	At         time.Time `json:"at"`
}

// Publisher 把变更事件同时推到 Redis 频道（后台实时列表）和 Kafka（前台重建管线）
// 两条链路都是 best-effort，失败只记日志，不影响写入结果
type Publisher struct {
	producer *kafka.Producer
}

func NewPublisher(producer *kafka.Producer) *Publisher {
	return &Publisher{producer: producer}
}

func (s *Publisher) Publish(ctx context.Context, collection string, id string, action string) {
	evt := ContentEvent{
		Collection: collection,
		ID:         id,
		Action:     action,
		At:         time.Now(),
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		log.ErrorContext(ctx, "failed to marshal content event", "err", err)
		return
	}

	if err = redis.Publish(ctx, consts.ContentChannelPrefix+collection, string(payload)); err != nil {
		log.WarnContext(ctx, "failed to publish content event to redis",
			"collection", collection, "err", err)
	}

	if s.producer != nil {
		if err = s.producer.Send(collection, payload); err != nil {
			log.WarnContext(ctx, "failed to publish content event to kafka",
				"collection", collection, "err", err)
		}
	}
}
