package gateway

import (
	"go.uber.org/zap"

	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/game"
	"foxhunt.xyz/fox-referee-service/pkg/protocol"
)

// dispatchUplink routes one decoded uplink frame into the core and
// hands any immediate ack to reply. Shared by the WebSocket and MQTT
// paths. Malformed or unexpected frames are logged and dropped;
// ingestion never blocks on bad input.
func dispatchUplink(g *game.Game, limiter *UplinkLimiterStore, data []byte, reply func(resp *protocol.NfcResponse)) (shortSN string) {
	logger := common.GetLoggerWith(common.LoggerNameGateway)

	frame, err := protocol.Decode(data)
	if err != nil {
		logger.Warn("dropping uplink frame", zap.Error(err))
		return ""
	}

	switch msg := frame.(type) {
	case *protocol.DeviceTelemetry:
		if !limiter.Allow(msg.ShortSN) {
			logger.Warn("telemetry rate limited", zap.String("short_sn", msg.ShortSN))
			return msg.ShortSN
		}
		g.Devices.UpsertTelemetry(msg)
		return msg.ShortSN

	case *protocol.NfcRequest:
		if !limiter.Allow(msg.ShortSN) {
			logger.Warn("nfc request rate limited", zap.String("short_sn", msg.ShortSN))
			return msg.ShortSN
		}
		if resp := g.Matcher.HandleNfcRequest(msg); resp != nil && reply != nil {
			reply(resp)
		}
		return msg.ShortSN

	default:
		// downlink-typed frames have no business arriving from a fox
		logger.Warn("dropping unexpected uplink frame type")
		return ""
	}
}
