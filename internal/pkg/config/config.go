package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	Allocation AllocationConfig
	Ledger     LedgerConfig
	Kafka      KafkaConfig
	Reconcile  ReconcileConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Tracing    TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"50"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"REDIS_PASSWORD" default:""`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"100"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"2s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"500ms"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"500ms"`
}

// MarkerTTL bounds how long the per-user issued marker lives in Redis.
// Offers whose window outlives it can hand a second coupon to the same user
// once the marker expires; the ledger unique index still rejects the row.
type AllocationConfig struct {
	MarkerTTL time.Duration `envconfig:"ALLOCATION_MARKER_TTL" default:"24h"`
}

type LedgerConfig struct {
	Driver       string        `envconfig:"LEDGER_QUEUE_DRIVER" default:"memory"`
	QueueSize    int           `envconfig:"LEDGER_QUEUE_SIZE" default:"10000"`
	Workers      int           `envconfig:"LEDGER_WORKERS" default:"8"`
	MaxAttempts  int           `envconfig:"LEDGER_MAX_ATTEMPTS" default:"5"`
	RetryBackoff time.Duration `envconfig:"LEDGER_RETRY_BACKOFF" default:"200ms"`
}

type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	LedgerTopic string   `envconfig:"KAFKA_LEDGER_TOPIC" default:"coupon.issuance"`
	GroupID     string   `envconfig:"KAFKA_GROUP_ID" default:"coupon-ledger"`
}

type ReconcileConfig struct {
	Interval    time.Duration `envconfig:"RECONCILE_INTERVAL" default:"0s"`
	Concurrency int           `envconfig:"RECONCILE_CONCURRENCY" default:"4"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// Tracing is disabled when Endpoint is empty.
type TracingConfig struct {
	Endpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	ServiceName string  `envconfig:"OTEL_SERVICE_NAME" default:"flash-coupon"`
	SampleRatio float64 `envconfig:"OTEL_SAMPLE_RATIO" default:"1.0"`
	Insecure    bool    `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Ledger.Driver {
	case LedgerDriverMemory, LedgerDriverKafka:
	default:
		return fmt.Errorf("invalid LEDGER_QUEUE_DRIVER %q", c.Ledger.Driver)
	}
	if c.Ledger.Workers <= 0 || c.Ledger.QueueSize <= 0 {
		return fmt.Errorf("ledger queue needs positive LEDGER_WORKERS and LEDGER_QUEUE_SIZE")
	}
	if c.Allocation.MarkerTTL < time.Second {
		return fmt.Errorf("ALLOCATION_MARKER_TTL must be at least 1s")
	}
	return nil
}

const (
	LedgerDriverMemory = "memory"
	LedgerDriverKafka  = "kafka"
)

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 20,
			MinConns: 1,
		},
		Redis: RedisConfig{
			Addr:         "localhost:16379",
			PoolSize:     20,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Allocation: AllocationConfig{
			MarkerTTL: 24 * time.Hour,
		},
		Ledger: LedgerConfig{
			Driver:       LedgerDriverMemory,
			QueueSize:    1000,
			Workers:      4,
			MaxAttempts:  3,
			RetryBackoff: 10 * time.Millisecond,
		},
		Reconcile: ReconcileConfig{
			Concurrency: 2,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Tracing: TracingConfig{
			ServiceName: "flash-coupon-test",
			SampleRatio: 1.0,
		},
	}
}
