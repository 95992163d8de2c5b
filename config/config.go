package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultWorkerPort         = 8081
	defaultBcryptCost         = 12
	defaultTokenTTL           = 7 * 24 * time.Hour
	defaultOccupancyTTL       = 30 * 24 * time.Hour
	defaultLiveWriteTimeout   = 5 * time.Second
	defaultLivePingInterval   = 30 * time.Second
)

const (
	DistanceModelPlanar    = "planar"
	DistanceModelHaversine = "haversine"

	DetectionEverySample = "every_sample"
	DetectionTransition  = "transition"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		WorkerPort         int    `json:"workerPort" yaml:"workerPort"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database holds schema management options layered on top of Postgres
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Geofence configuration for fence evaluation on location ingest
	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	// Redis backs fence occupancy in transition detection mode
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Live configuration for parent WebSocket sessions
	Live *LiveConfig `json:"live" yaml:"live"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for device pairing QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeofenceConfig controls how samples are matched against fences
type GeofenceConfig struct {
	// Distance model: "planar" (default) or "haversine"
	DistanceModel string `json:"distanceModel" yaml:"distanceModel"`

	// Meters per degree used by the planar model
	MetersPerDegree float64 `json:"metersPerDegree" yaml:"metersPerDegree"`

	// Detection mode: "every_sample" (default) or "transition"
	Detection string `json:"detection" yaml:"detection"`

	// Lifetime of a teen's occupancy set in transition mode
	OccupancyTTL time.Duration `json:"occupancyTTL" yaml:"occupancyTTL"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// LiveConfig defines WebSocket channel timings and the browser origins
// allowed to open it. Patterns use path.Match syntax against the Origin host.
type LiveConfig struct {
	WriteTimeout   time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	PingInterval   time.Duration `json:"pingInterval" yaml:"pingInterval"`
	OriginPatterns []string      `json:"originPatterns" yaml:"originPatterns"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// New loads config.yaml from the working directory or a parent config/
// directory, overlays the environment, then fills defaults and validates.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.WorkerPort == 0 {
		cfg.HTTP.WorkerPort = defaultWorkerPort
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Geofence == nil {
		cfg.Geofence = &GeofenceConfig{}
	}
	if cfg.Geofence.DistanceModel == "" {
		cfg.Geofence.DistanceModel = DistanceModelPlanar
	}
	if cfg.Geofence.Detection == "" {
		cfg.Geofence.Detection = DetectionEverySample
	}
	if cfg.Geofence.OccupancyTTL == 0 {
		cfg.Geofence.OccupancyTTL = defaultOccupancyTTL
	}

	if cfg.Live == nil {
		cfg.Live = &LiveConfig{}
	}
	if cfg.Live.WriteTimeout == 0 {
		cfg.Live.WriteTimeout = defaultLiveWriteTimeout
	}
	if cfg.Live.PingInterval == 0 {
		cfg.Live.PingInterval = defaultLivePingInterval
	}
	if cfg.Live.OriginPatterns == nil {
		cfg.Live.OriginPatterns = []string{"*"}
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func (cfg *Config) validate() error {
	switch cfg.Geofence.DistanceModel {
	case DistanceModelPlanar, DistanceModelHaversine:
	default:
		return errors.Errorf("geofence.distanceModel %q is not planar or haversine", cfg.Geofence.DistanceModel)
	}

	switch cfg.Geofence.Detection {
	case DetectionEverySample:
	case DetectionTransition:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return errors.New("geofence.detection transition needs redis.addr")
		}
	default:
		return errors.Errorf("geofence.detection %q is not every_sample or transition", cfg.Geofence.Detection)
	}

	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.New("secretKey.access is required")
	}

	return nil
}
