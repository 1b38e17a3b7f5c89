package events

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// Publisher пишет события смены статуса в kafka. Вызывается после фиксации
// транзакции, поэтому ошибки доставки не откатывают переход: ретраи делает
// sarama, остаток логируется.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      logger.Logger
}

func New(producer sarama.SyncProducer, topic string, log logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

type statusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	OldStatus  string    `json:"oldStatus"`
	NewStatus  string    `json:"newStatus"`
	Note       string    `json:"note,omitempty"`
	ActorUID   string    `json:"actorUid"`
	ActorRole  string    `json:"actorRole"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (p *Publisher) PublishStatusChanged(event entities.OrderStatusEvent) {
	payload, err := json.Marshal(statusChangedMessage{
		OrderID:    event.OrderID,
		OldStatus:  event.OldStatus.String(),
		NewStatus:  event.NewStatus.String(),
		Note:       event.Note,
		ActorUID:   event.Actor.UID,
		ActorRole:  event.Actor.Role.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		p.log.Error("marshal status changed event",
			logger.NewField("order_id", event.OrderID),
			logger.NewField("error", err),
		)
		return
	}

	// ключ — id заказа, события одного заказа попадают в одну партицию
	// и читаются в порядке переходов
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		p.log.Error("publish status changed event",
			logger.NewField("order_id", event.OrderID),
			logger.NewField("error", err),
		)
		return
	}

	p.log.Debug("status changed event published",
		logger.NewField("order_id", event.OrderID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
}
