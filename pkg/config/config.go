package config

import (
	"time"

	"github.com/shopspring/decimal"
)

type DB struct {
	Url string `envconfig:"URL"`
	// MigrateOnStart applies the embedded SQL migrations before serving.
	MigrateOnStart  bool          `envconfig:"MIGRATE_ON_START" default:"true"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"1h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:"redis://localhost:6379/0"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"fortiz:"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type Kafka struct {
	Brokers string `envconfig:"BROKERS" default:"localhost:9092"`
	GroupID string `envconfig:"GROUP_ID" default:"fortiz-notifications"`
	Topic   string `envconfig:"TOPIC" default:"fortiz.notifications"`
}

type EventBus struct {
	// Driver selects the transport of notification events: memory, redis or kafka.
	Driver string `envconfig:"DRIVER" default:"memory"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Email struct {
	ApiKey      string        `envconfig:"API_KEY"`
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.resend.com/emails"`
	From        string        `envconfig:"FROM" default:"Fortiz Bank <no-reply@fortizbank.com>"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	MaxElapsed  time.Duration `envconfig:"MAX_ELAPSED" default:"30s"`
}

type Transfer struct {
	// Atomic wraps the balance writes of an internal transfer in one
	// database transaction with row locks. Off by default.
	Atomic       bool            `envconfig:"ATOMIC" default:"false"`
	MfaThreshold decimal.Decimal `envconfig:"MFA_THRESHOLD" default:"1000"`
}

type Dashboard struct {
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"30s"`
	// CacheDriver is memory or redis.
	CacheDriver string `envconfig:"CACHE_DRIVER" default:"memory"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fortiz]"`
	// ReportCaller adds the source file and line to every record.
	ReportCaller bool `envconfig:"REPORT_CALLER" default:"false"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	Redis     *Redis     `envconfig:"REDIS"`
	Kafka     *Kafka     `envconfig:"KAFKA"`
	EventBus  *EventBus  `envconfig:"EVENT_BUS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Email     *Email     `envconfig:"EMAIL"`
	Transfer  *Transfer  `envconfig:"TRANSFER"`
	Dashboard *Dashboard `envconfig:"DASHBOARD"`
}
