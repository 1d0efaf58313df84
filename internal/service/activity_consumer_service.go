package service

import (
	"context"
	"encoding/json"
	"log"

	"hireup-be/internal/dto"
	"hireup-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IActivityConsumerService interface {
	Consume(ctx context.Context) error
}

// activityConsumerService drains the in-process activity topic and appends
// entries to the per-company dashboard feed.
type activityConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	activities *memory.ActivityRepository
}

func NewActivityConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	activities *memory.ActivityRepository,
) IActivityConsumerService {
	return &activityConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		activities: activities,
	}
}

func (cs *activityConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *activityConsumerService) processMessage(msg *message.Message) {
	var payload dto.PublishActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal activity message: %v", err)
		msg.Ack() // invalid messages would never succeed, drop them
		return
	}

	cs.activities.Add(payload.CompanyId, payload.Action, payload.Detail)
	msg.Ack()
}
