// Package bus is the in-process event bus. Card reads, downlink frames
// and log entries flow through watermill topics so that any number of
// consumers (SSE streams, the WebSocket gateway, the MQTT bridge) can
// subscribe without the core knowing about them.
package bus

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const (
	TopicCardRead   = "cards.read"
	TopicDownlink   = "device.downlink"
	TopicLogEntries = "logs.entries"
)

// CardReadEvent is published whenever the launcher scans a card; the
// console's add/edit-player form waits on it to bind a card number.
type CardReadEvent struct {
	CardNumber int `json:"cardNumber"`
}

type Bus struct {
	pubsub *gochannel.GoChannel
}

func New() *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, watermill.NopLogger{}),
	}
}

func (b *Bus) Publish(topic string, payload []byte) error {
	return b.pubsub.Publish(topic, message.NewMessage(uuid.NewString(), payload))
}

func (b *Bus) PublishJSON(topic string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Publish(topic, payload)
}

func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}
