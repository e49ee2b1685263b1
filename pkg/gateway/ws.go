// Package gateway terminates the radio link: foxes (or the base
// station bridging LoRa for them) speak the JSON wire protocol over
// WebSocket, with an optional MQTT path for broker-based LoRa gateways.
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/game"
	"foxhunt.xyz/fox-referee-service/pkg/protocol"
)

// Gateway owns the live device connections. One WebSocket connection
// may report for many serials (a base station relays a whole field of
// foxes), so routing is by shortSN, latest connection wins.
type Gateway struct {
	Game    *game.Game
	Bus     *bus.Bus
	Limiter *UplinkLimiterStore

	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[string]*deviceConn
}

type deviceConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (dc *deviceConn) writeJSON(v any) error {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.conn.WriteJSON(v)
}

func New(g *game.Game, b *bus.Bus, limiter *UplinkLimiterStore) *Gateway {
	return &Gateway{
		Game:    g,
		Bus:     b,
		Limiter: limiter,
		upgrader: websocket.Upgrader{
			// foxes do not send an Origin header, base stations may
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[string]*deviceConn),
	}
}

func (gw *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/gateway", gw.HandleWS)
	return mux
}

func (gw *Gateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	logger := common.GetLoggerWith(common.LoggerNameGateway)

	conn, err := gw.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	dc := &deviceConn{conn: conn}
	go gw.readLoop(dc)
}

func (gw *Gateway) readLoop(dc *deviceConn) {
	logger := common.GetLoggerWith(common.LoggerNameGateway)
	defer func() {
		gw.unbindAll(dc)
		dc.conn.Close()
	}()

	for {
		_, data, err := dc.conn.ReadMessage()
		if err != nil {
			logger.Info("device connection closed", zap.Error(err))
			return
		}

		shortSN := dispatchUplink(gw.Game, gw.Limiter, data, func(resp *protocol.NfcResponse) {
			if err := dc.writeJSON(resp); err != nil {
				logger.Warn("failed to write nfc response", zap.Error(err))
			}
		})
		if shortSN != "" {
			gw.bind(shortSN, dc)
		}
	}
}

func (gw *Gateway) bind(shortSN string, dc *deviceConn) {
	gw.mu.Lock()
	gw.conns[shortSN] = dc
	gw.mu.Unlock()
}

func (gw *Gateway) unbindAll(dc *deviceConn) {
	gw.mu.Lock()
	for sn, cur := range gw.conns {
		if cur == dc {
			delete(gw.conns, sn)
		}
	}
	gw.mu.Unlock()
}

func (gw *Gateway) lookup(shortSN string) *deviceConn {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	return gw.conns[shortSN]
}

// StartDownlink forwards bus downlink frames (device config, nfc
// responses queued by the core) to whichever connection currently
// serves the target serial. A device that is off the air simply misses
// the frame; config is reconciled through its next telemetry.
func (gw *Gateway) StartDownlink(ctx context.Context) error {
	msgs, err := gw.Bus.Subscribe(ctx, bus.TopicDownlink)
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
			dc := gw.lookup(shortSN)
			if dc == nil {
				logger.Info("device not connected, downlink frame skipped", zap.String("short_sn", shortSN))
				continue
			}
			if err := dc.writeJSON(json.RawMessage(msg.Payload)); err != nil {
				logger.Warn("failed to write downlink frame", zap.String("short_sn", shortSN), zap.Error(err))
			}
		}
	}()
	return nil
}

// Serve blocks serving the gateway endpoint on hostPort.
func (gw *Gateway) Serve(hostPort string) error {
	return http.ListenAndServe(hostPort, gw.Handler())
}
