// foxsim simulates a field of fox transmitters against a running
// referee service: every fox dials the WebSocket gateway, reports
// telemetry on a jittered interval and occasionally scans a card.
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"foxhunt.xyz/fox-referee-service/pkg/protocol"
)

var maxFoxes int = 50
var maxCards int = 200
var rounds int = 20
var httpHostPort string = "127.0.0.1:3000"
var gatewayHostPort string = "127.0.0.1:3001"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range maxFoxes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runFox(i + 1)
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	totalFrames := maxFoxes * rounds
	fmt.Printf(
		"\rsimulated %v foxes x %v rounds: used time=%v seconds, throughput=%v frame/second\n",
		maxFoxes, rounds, usedTime.Seconds(), float64(totalFrames)/usedTime.Seconds(),
	)
}

func runFox(foxNumber int) {
	url := fmt.Sprintf("ws://%s/gateway", gatewayHostPort)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		fmt.Printf("\nfox %v failed to dial gateway: %v\n", foxNumber, err)
		return
	}
	defer conn.Close()

	// drain acks so the write side never stalls
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	shortSN := fmt.Sprintf("SIM-%04d", foxNumber)
	voltage := rndFloat64(3.3, 4.2, 2)

	for round := range rounds {
		voltage = math.Max(3.0, voltage-rndFloat64(0.0, 0.01, 3))

		tel := protocol.DeviceTelemetry{
			Type:          protocol.TypeDeviceTelemetry,
			ShortSN:       shortSN,
			FoxNumber:     foxNumber,
			Voltage:       voltage,
			Beep:          true,
			Nfc:           protocol.NfcReadWrite,
			GpsLocked:     int(rnd.Int31n(12)),
			GpsInUse:      int(rnd.Int31n(8)),
			Time:          time.Now().Unix(),
			Lat:           protocol.NoFixLat,
			Lon:           protocol.NoFixLon,
			ConnectedType: protocol.ConnectedLoRa,
			RfEnable:      foxNumber <= 10,
			RfFreq:        3550,
			RfDuration:    protocol.Rf15s,
		}
		if flipCoin() {
			tel.Lat = rndFloat64(30.0, 32.0, 6)
			tel.Lon = rndFloat64(120.0, 122.0, 6)
		}
		if err := conn.WriteJSON(&tel); err != nil {
			fmt.Printf("\nfox %v telemetry write failed: %v\n", foxNumber, err)
			return
		}

		// roughly every third round somebody taps a card on this fox
		if rnd.Int31n(3) == 0 {
			scan := protocol.NfcRequest{
				Type:      protocol.TypeNfcRequest,
				ShortSN:   shortSN,
				FoxNumber: foxNumber,
				Time:      time.Now().Unix(),
				NfcID:     1000 + int(rnd.Int31n(int32(maxCards))),
			}
			if err := conn.WriteJSON(&scan); err != nil {
				fmt.Printf("\nfox %v scan write failed: %v\n", foxNumber, err)
				return
			}
		}

		fmt.Printf("\rfox %v finished round %v", foxNumber, round+1)
		time.Sleep(time.Duration(100+rnd.Int31n(400)) * time.Millisecond)
	}
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}
