package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"foxhunt.xyz/fox-referee-service/pkg/bus"
	"foxhunt.xyz/fox-referee-service/pkg/common"
	"foxhunt.xyz/fox-referee-service/pkg/db"
	"foxhunt.xyz/fox-referee-service/pkg/eventlog"
	"foxhunt.xyz/fox-referee-service/pkg/game"
	"foxhunt.xyz/fox-referee-service/pkg/gateway"
	refHttp "foxhunt.xyz/fox-referee-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	refDbType := os.Getenv(common.EnvKeyRefereeDBType)
	switch refDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown REFEREE_DB_TYPE: " + refDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyRefereeHttpHostPort))
	gatewayHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyRefereeGatewayHostPort))
	mqttBroker := strings.TrimSpace(os.Getenv(common.EnvKeyRefereeMqttBroker))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyRefereeDefaultRate), 64); err != nil {
		log.Fatal("Invalid REFEREE_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyRefereeDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid REFEREE_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logCap := eventlog.DefaultCapacity
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyRefereeLogCap)); raw != "" {
		if logCap, err = strconv.Atoi(raw); err != nil {
			log.Fatal("Invalid REFEREE_LOG_CAP, should be an int value")
		}
	}

	logger := common.GetLogger()

	eventBus := bus.New()
	defer eventBus.Close()

	logbook := eventlog.New(logCap, dbInstance, eventBus)
	if err := logbook.Load(); err != nil {
		log.Fatalf("failed to restore logbook: %v", err)
	}

	gameCore := game.New(dbInstance, eventBus, logbook)
	if err := gameCore.Load(); err != nil {
		log.Fatalf("failed to restore game state: %v", err)
	}

	limiter := gateway.NewUplinkLimiterStore(rate.Limit(defaultRate), int(defaultBurst))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if gatewayHostPort != "" {
		logger.Info("Starting device gateway on port " + gatewayHostPort)
		gw := gateway.New(gameCore, eventBus, limiter)
		if err := gw.StartDownlink(ctx); err != nil {
			log.Fatalf("failed to start downlink routing: %v", err)
		}
		go func() {
			logger.Info("gateway created with:",
				zap.String("default_limiter",
					fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))
			if err := gw.Serve(gatewayHostPort); err != nil {
				log.Fatalf("gateway failed to serve: %v", err)
			}
		}()
	}

	if mqttBroker != "" {
		logger.Info("Starting MQTT bridge for broker " + mqttBroker)
		bridge := gateway.NewMqttBridge(mqttBroker, gameCore, eventBus, limiter)
		if err := bridge.Start(ctx); err != nil {
			log.Fatalf("mqtt bridge failed to start: %v", err)
		}
		defer bridge.Stop()
	}

	if httpHostPort == "" {
		// the console points at :3000 by default
		httpHostPort = ":3000"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &refHttp.RestfulServer{
		Server: gin.Default(),
		Game:   gameCore,
		Bus:    eventBus,
		Log:    logbook,
	}
	rs.Setup()

	logbook.Info("system", "referee system started")

	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
