package configs

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"weather-bridge/pkg/resource"
)

// EnvConfig is the typed application configuration. All required keys are
// read once at startup and validated, so a missing setting stops the process
// before any component runs with partial configuration.
type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	ServerPort      string `validate:"required"`

	DBDriver string `validate:"required,oneof=sql gorm"`

	WeatherAPIBaseURL string `validate:"required,url"`
	WeatherAPIParams  string
	WeatherAPITimeout time.Duration `validate:"required"`

	BridgeEndpointURL string `validate:"required,url"`
	BridgeCron        string `validate:"required"`

	LoopEnabled  bool
	LoopInterval time.Duration

	RedisEnabled  bool
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDatabase int

	LockTTLSeconds     int
	LockRefreshSeconds int
}

var Env *EnvConfig

func init() {
	Env = &EnvConfig{
		ApplicationName: resource.GetString("app.name"),
		ContextPath:     resource.GetString("app.server.context-path"),
		ServerPort:      resource.GetString("app.server.port"),

		DBDriver: resource.GetString("app.db.driver"),

		WeatherAPIBaseURL: resource.GetString("app.weather-api.base-url"),
		WeatherAPIParams:  resource.GetString("app.weather-api.params"),
		WeatherAPITimeout: resource.GetDuration("app.weather-api.timeout"),

		BridgeEndpointURL: resource.GetString("app.bridge.endpoint-url"),
		BridgeCron:        resource.GetString("app.bridge.cron"),

		LoopEnabled:  resource.GetBool("app.loop.enabled"),
		LoopInterval: resource.GetDuration("app.loop.interval"),

		RedisEnabled:  resource.GetBool("app.redis.enabled"),
		RedisHost:     resource.GetString("app.redis.host"),
		RedisPort:     resource.GetInt("app.redis.port"),
		RedisPassword: resource.GetString("app.redis.password"),
		RedisDatabase: resource.GetInt("app.redis.database"),

		LockTTLSeconds:     resource.GetInt("app.bridge.lock-ttl-seconds"),
		LockRefreshSeconds: resource.GetInt("app.bridge.lock-refresh-seconds"),
	}

	if Env.WeatherAPITimeout == 0 {
		Env.WeatherAPITimeout = 10 * time.Second
	}
	if Env.LoopInterval == 0 {
		Env.LoopInterval = 10 * time.Minute
	}

	validate := validator.New()
	if err := validate.Struct(Env); err != nil {
		log.Fatalf("Invalid application configuration: %v", err)
	}
}
