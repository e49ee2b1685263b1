package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/game"
	"foxhunt.xyz/fox-referee-service/pkg/protocol"
)

const (
	mqttUplinkFilter  = "fox/uplink/#"
	mqttDownlinkTopic = "fox/downlink/%s"
)

// MqttBridge is the broker-based radio path: LoRa gateways publish
// uplink frames to fox/uplink/<shortSN> and subscribe to their own
// fox/downlink/<shortSN>.
type MqttBridge struct {
	Game    *game.Game
	Bus     *bus.Bus
	Limiter *UplinkLimiterStore

	client mqtt.Client
}

func NewMqttBridge(broker string, g *game.Game, b *bus.Bus, limiter *UplinkLimiterStore) *MqttBridge {
	mb := &MqttBridge{Game: g, Bus: b, Limiter: limiter}
	logger := common.GetLoggerWith(common.LoggerNameGateway)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", broker))
	opts.SetClientID(fmt.Sprintf("fox-referee-%s", uuid.NewString()[:8]))
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetAutoReconnect(true)

	opts.OnConnect = func(client mqtt.Client) {
		logger.Info("Connected to MQTT broker", zap.String("broker", broker))
		token := client.Subscribe(mqttUplinkFilter, 0, mb.onUplink)
		if token.Wait() && token.Error() != nil {
			logger.Error("MQTT uplink subscribe failed", zap.Error(token.Error()))
		}
	}
	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		logger.Error("MQTT connection lost", zap.Error(err))
	}

	mb.client = mqtt.NewClient(opts)
	return mb
}

func (mb *MqttBridge) onUplink(client mqtt.Client, msg mqtt.Message) {
	dispatchUplink(mb.Game, mb.Limiter, msg.Payload(), func(resp *protocol.NfcResponse) {
		payload, err := json.Marshal(resp)
		if err != nil {
			return
		}
		mb.publishDownlink(resp.ShortSN, payload)
	})
}

// Start connects to the broker and begins forwarding bus downlink
// frames; frames also carried by a live WebSocket connection are
// published here too, duplicate delivery is harmless on this link.
func (mb *MqttBridge) Start(ctx context.Context) error {
	if token := mb.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	msgs, err := mb.Bus.Subscribe(ctx, bus.TopicDownlink)
	if err != nil {
		return err
	}

	logger := common.GetLoggerWith(common.LoggerNameGateway)
	go func() {
		for msg := range msgs {
			msg.Ack()
			shortSN, err := protocol.PeekShortSN(msg.Payload)
			if err != nil {
				logger.Warn("dropping unroutable downlink frame", zap.Error(err))
				continue
			}
			mb.publishDownlink(shortSN, msg.Payload)
		}
	}()
	return nil
}

func (mb *MqttBridge) Stop() {
	mb.client.Disconnect(250)
}

func (mb *MqttBridge) publishDownlink(shortSN string, payload []byte) {
	topic := fmt.Sprintf(mqttDownlinkTopic, strings.ReplaceAll(shortSN, "/", "_"))
	mb.client.Publish(topic, 0, false, payload)
}
