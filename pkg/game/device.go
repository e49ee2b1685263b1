package game

import (
	"fmt"
	"slices"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/models"
	"foxhunt.xyz/fox-referee-service/pkg/protocol"
	"go.uber.org/zap"
)

// Radios above channel 10 have no short-wave repeater hardware.
const MaxRfFoxNumber = 10

// 80m band limits for the repeater frequency, in kHz.
const (
	MinRfFreqKHz = 3500
	MaxRfFreqKHz = 3600
)

func cloneDevice(d *models.Device) models.Device {
	c := *d
	if d.LastTelemetry != nil {
		t := *d.LastTelemetry
		c.LastTelemetry = &t
	}
	c.BaseStationSN = append([]int(nil), d.BaseStationSN...)
	return c
}

func connectedTransport(t protocol.ConnectedType) string {
	if t == protocol.ConnectedWiFi {
		return "wifi"
	}
	return "lora"
}

// upsertTelemetry registers the device on first sight and overwrites
// its last-known snapshot. It cannot fail; a fox that can reach us is a
// fox we track.
func (g *Game) upsertTelemetry(t *protocol.DeviceTelemetry) {
	tel := *t

	g.mu.Lock()
	d, ok := g.devices[tel.ShortSN]
	if !ok {
		d = &models.Device{ShortSN: tel.ShortSN}
		g.devices[tel.ShortSN] = d
		g.deviceOrder = append(g.deviceOrder, tel.ShortSN)
	}
	changed := d.LastTelemetry == nil || *d.LastTelemetry != tel
	d.LastTelemetry = &tel
	d.ConnectedType = connectedTransport(tel.ConnectedType)
	if tel.ConnectedFox > 0 && !slices.Contains(d.BaseStationSN, tel.ConnectedFox) {
		d.BaseStationSN = append(d.BaseStationSN, tel.ConnectedFox)
	}
	g.mu.Unlock()

	if !ok {
		g.Log.Info("device", fmt.Sprintf("device %s registered as fox %d", tel.ShortSN, tel.FoxNumber))
	} else if changed {
		// identical re-reports are absorbed silently, the radio link
		// retransmits a lot
		g.Log.Info("device", fmt.Sprintf("device %s telemetry updated (fox %d, %.2fV)", tel.ShortSN, tel.FoxNumber, tel.Voltage))
	}
}

func (g *Game) getDevice(shortSN string) (models.Device, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	d, ok := g.devices[shortSN]
	if !ok {
		return models.Device{}, ErrDeviceNotFound
	}
	return cloneDevice(d), nil
}

// listDevices returns devices in first-seen order.
func (g *Game) listDevices() []models.Device {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]models.Device, 0, len(g.deviceOrder))
	for _, sn := range g.deviceOrder {
		out = append(out, cloneDevice(g.devices[sn]))
	}
	return out
}

// applyDeviceConfig validates an operator config and queues it for
// downlink delivery. Delivery is best effort; the radio link is lossy
// and the fox confirms applied config in its next telemetry.
func (g *Game) applyDeviceConfig(shortSN string, in DeviceConfigInput) (*protocol.DeviceConfig, error) {
	what := fmt.Sprintf("device %s config", shortSN)
	if in.FoxNumber < 0 {
		return nil, g.refuse("device", what, fmt.Errorf("%w: fox number must be non-negative", ErrInvalidArgument))
	}
	if in.Nfc < protocol.NfcDisabled || in.Nfc > protocol.NfcClear {
		return nil, g.refuse("device", what, fmt.Errorf("%w: unknown nfc mode %d", ErrInvalidArgument, in.Nfc))
	}
	if in.RfDuration < protocol.RfContinuous || in.RfDuration > protocol.Rf60s {
		return nil, g.refuse("device", what, fmt.Errorf("%w: unknown rf duration %d", ErrInvalidArgument, in.RfDuration))
	}
	if in.RfFreq < MinRfFreqKHz || in.RfFreq > MaxRfFreqKHz {
		return nil, g.refuse("device", what, fmt.Errorf("%w: rf frequency %d kHz outside %d-%d", ErrInvalidArgument, in.RfFreq, MinRfFreqKHz, MaxRfFreqKHz))
	}
	if in.RfEnable && in.FoxNumber > MaxRfFoxNumber {
		return nil, g.refuse("device", what, fmt.Errorf("%w: fox %d cannot repeat on short wave", ErrDeviceConstraint, in.FoxNumber))
	}

	g.mu.RLock()
	_, ok := g.devices[shortSN]
	g.mu.RUnlock()
	if !ok {
		return nil, g.refuse("device", what, ErrDeviceNotFound)
	}

	cfg := &protocol.DeviceConfig{
		Type:       protocol.TypeDeviceConfig,
		ShortSN:    shortSN,
		FoxNumber:  in.FoxNumber,
		Beep:       in.Beep,
		Nfc:        in.Nfc,
		RfEnable:   in.RfEnable,
		RfFreq:     in.RfFreq,
		RfDuration: in.RfDuration,
	}

	if g.Bus != nil {
		if err := g.Bus.PublishJSON(bus.TopicDownlink, cfg); err != nil {
			common.GetLoggerWith(
				common.LoggerNameGameCore,
				zap.String(common.LoggerFieldGameCategory, common.LoggerCategoryDevice),
			).Error("failed to publish device config", zap.String("short_sn", shortSN), zap.Error(err))
		}
	}
	g.Log.Info("device", fmt.Sprintf("device %s configured as fox %d", shortSN, in.FoxNumber))
	return cfg, nil
}

type IDevicesImpl struct {
	game *Game
}

func (id *IDevicesImpl) UpsertTelemetry(t *protocol.DeviceTelemetry) {
	id.game.upsertTelemetry(t)
}

func (id *IDevicesImpl) Get(shortSN string) (models.Device, error) {
	return id.game.getDevice(shortSN)
}

func (id *IDevicesImpl) List() []models.Device {
	return id.game.listDevices()
}

func (id *IDevicesImpl) ApplyConfig(shortSN string, input DeviceConfigInput) (*protocol.DeviceConfig, error) {
	return id.game.applyDeviceConfig(shortSN, input)
}

func (g *Game) GetIDevices() IDevices {
	return &IDevicesImpl{game: g}
}
