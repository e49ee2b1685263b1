package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyRefereeDBType string = "REFEREE_DB_TYPE"
	EnvKeyRefereeDbPath string = "REFEREE_DB_PATH"

	EnvKeyRefereeHttpHostPort    string = "REFEREE_HTTP_HOST_PORT"
	EnvKeyRefereeGatewayHostPort string = "REFEREE_GATEWAY_HOST_PORT"
	EnvKeyRefereeMqttBroker      string = "REFEREE_MQTT_BROKER"

	EnvKeyRefereeLogCap       string = "REFEREE_LOG_CAP"
	EnvKeyRefereeDefaultRate  string = "REFEREE_DEFAULT_RATE"
	EnvKeyRefereeDefaultBurst string = "REFEREE_DEFAULT_BURST"

	LoggerNameGameCore      string = "game_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGateway       string = "gateway"
	LoggerNameLogbook       string = "logbook"
	LoggerFieldGameCategory string = "category"
	LoggerCategoryPlayer    string = "player"
	LoggerCategoryDevice    string = "device"
	LoggerCategoryMatch     string = "match"
	LoggerCategorySettings  string = "settings"
)
