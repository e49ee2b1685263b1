// Package protocol holds the JSON wire frames exchanged with fox
// transmitters over the radio link (WebSocket or MQTT bridged). Field
// names and enum values are fixed by the fox firmware.
package protocol

import (
	"encoding/json"
	"fmt"
)

type ConnectedType int

const (
	ConnectedLoRa ConnectedType = iota
	ConnectedWiFi
	ConnectedBLE
	ConnectedTypeC
)

type NfcStatus int

const (
	NfcDisabled NfcStatus = iota
	NfcReadWrite
	NfcReadOnly
	NfcClear
)

type NfcResponseStatus int

const (
	NfcRespStart NfcResponseStatus = 0
	NfcRespTag   NfcResponseStatus = 1
	// The firmware acks a mid-course tag and the finish tag with the
	// same wire value; the fox only beeps, it does not disambiguate.
	NfcRespFinished NfcResponseStatus = 1
	NfcRespOut      NfcResponseStatus = 3
)

type RfDuration int

const (
	RfContinuous RfDuration = iota
	Rf15s
	Rf30s
	Rf60s
)

const (
	TypeDeviceTelemetry = "device_telemetry"
	TypeNfcRequest      = "nfc_request"
	TypeDeviceConfig    = "device_config"
	TypeNfcResponse     = "nfc_response"
)

// A fox with no GPS fix reports exactly (-1, -1); it is never a real
// position.
const (
	NoFixLat float64 = -1
	NoFixLon float64 = -1
)

type DeviceTelemetry struct {
	Type          string        `json:"type"`
	ShortSN       string        `json:"shortSN"`
	FoxNumber     int           `json:"foxNumber"`
	Voltage       float64       `json:"voltage"`
	Beep          bool          `json:"beep"`
	Nfc           NfcStatus     `json:"nfc"`
	GpsLocked     int           `json:"gpsLocked"`
	GpsInUse      int           `json:"gpsInUse"`
	Time          int64         `json:"time"`
	Lat           float64       `json:"lat"`
	Lon           float64       `json:"lon"`
	ConnectedType ConnectedType `json:"connectedType"`
	ConnectedFox  int           `json:"connectedFox"`
	RfEnable      bool          `json:"rfEnable"`
	RfFreq        int           `json:"rfFreq"`
	RfDuration    RfDuration    `json:"rfDuration"`
}

func (t *DeviceTelemetry) HasFix() bool {
	return t.Lat != NoFixLat || t.Lon != NoFixLon
}

type NfcRequest struct {
	Type      string `json:"type"`
	ShortSN   string `json:"shortSN"`
	FoxNumber int    `json:"foxNumber"`
	Time      int64  `json:"time"`
	NfcID     int    `json:"nfcID"`
}

type DeviceConfig struct {
	Type       string     `json:"type"`
	ShortSN    string     `json:"shortSN"`
	FoxNumber  int        `json:"foxNumber"`
	Beep       bool       `json:"beep"`
	Nfc        NfcStatus  `json:"nfc"`
	RfEnable   bool       `json:"rfEnable"`
	RfFreq     int        `json:"rfFreq"`
	RfDuration RfDuration `json:"rfDuration"`
}

type NfcResponse struct {
	Type     string            `json:"type"`
	ShortSN  string            `json:"shortSN"`
	NfcID    int               `json:"nfcID"`
	PlayerID int               `json:"playerID"`
	Status   NfcResponseStatus `json:"status"`
}

type envelope struct {
	Type    string `json:"type"`
	ShortSN string `json:"shortSN"`
}

// Decode dispatches a raw frame on its type tag. The returned value is
// one of *DeviceTelemetry, *NfcRequest, *DeviceConfig or *NfcResponse.
func Decode(data []byte) (any, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}

	switch env.Type {
	case TypeDeviceTelemetry:
		var t DeviceTelemetry
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("malformed %s frame: %w", env.Type, err)
		}
		return &t, nil
	case TypeNfcRequest:
		var r NfcRequest
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("malformed %s frame: %w", env.Type, err)
		}
		return &r, nil
	case TypeDeviceConfig:
		var c DeviceConfig
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("malformed %s frame: %w", env.Type, err)
		}
		return &c, nil
	case TypeNfcResponse:
		var r NfcResponse
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("malformed %s frame: %w", env.Type, err)
		}
		return &r, nil
	default:
		return nil, fmt.Errorf("unknown frame type %q", env.Type)
	}
}

// PeekShortSN extracts the device serial from any frame without fully
// decoding it; used by the downlink router.
func PeekShortSN(data []byte) (string, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", fmt.Errorf("malformed frame: %w", err)
	}
	if env.ShortSN == "" {
		return "", fmt.Errorf("frame has no shortSN")
	}
	return env.ShortSN, nil
}
