package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	yamlKeys := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "guardian"},
		},
		"geofence":  map[string]any{"distanceModel": "planar"},
		"pubsub":    map[string]any{"topicId": ""},
		"secretKey": map[string]any{"access": ""},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"PUBSUB_TOPICID":           "pubsub.topicId",
		"SECRETKEY_ACCESS":         "secretKey.access",
		"GEOFENCE_DISTANCEMODEL":   "geofence.distanceModel",
		"LIVE__PINGINTERVAL":       "live.pinginterval",
		"NEW_FEATURE_FLAG":         "new.feature.flag",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(envKey, yamlKeys); got != want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", envKey, got, want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Geofence.DistanceModel != DistanceModelPlanar || cfg.Geofence.Detection != DetectionEverySample {
		t.Fatalf("geofence defaults = %+v", cfg.Geofence)
	}
	if cfg.Auth.TokenTTL != defaultTokenTTL || cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("auth defaults = %+v", cfg.Auth)
	}
	if cfg.Live.WriteTimeout != defaultLiveWriteTimeout || cfg.Live.PingInterval != defaultLivePingInterval {
		t.Fatalf("live defaults = %+v", cfg.Live)
	}
	if len(cfg.Live.OriginPatterns) != 1 || cfg.Live.OriginPatterns[0] != "*" {
		t.Fatalf("live origin patterns = %v, want any origin", cfg.Live.OriginPatterns)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize || cfg.HTTP.WorkerPort != defaultWorkerPort {
		t.Fatalf("http defaults = %+v", cfg.HTTP)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Geofence: &GeofenceConfig{DistanceModel: DistanceModelHaversine, Detection: DetectionTransition},
		Metrics:  &MetricsConfig{Enabled: true},
		Live:     &LiveConfig{OriginPatterns: []string{"app.example.com"}},
	}
	cfg.HTTP.WorkerPort = 9090
	applyDefaults(cfg)

	if cfg.Geofence.DistanceModel != DistanceModelHaversine || cfg.Geofence.Detection != DetectionTransition {
		t.Fatalf("geofence overridden: %+v", cfg.Geofence)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("metrics path = %q", cfg.Metrics.Path)
	}
	if cfg.HTTP.WorkerPort != 9090 {
		t.Fatalf("worker port = %d", cfg.HTTP.WorkerPort)
	}
	if len(cfg.Live.OriginPatterns) != 1 || cfg.Live.OriginPatterns[0] != "app.example.com" {
		t.Fatalf("live origin patterns overridden: %v", cfg.Live.OriginPatterns)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "s3cret"
		applyDefaults(cfg)

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown distance model",
			mutate:  func(c *Config) { c.Geofence.DistanceModel = "vincenty" },
			wantErr: "distanceModel",
		},
		{
			name:    "unknown detection",
			mutate:  func(c *Config) { c.Geofence.Detection = "sometimes" },
			wantErr: "detection",
		},
		{
			name:    "transition without redis",
			mutate:  func(c *Config) { c.Geofence.Detection = DetectionTransition },
			wantErr: "redis.addr",
		},
		{
			name: "transition with redis",
			mutate: func(c *Config) {
				c.Geofence.Detection = DetectionTransition
				c.Redis = &RedisConfig{Addr: "localhost:6379"}
			},
		},
		{
			name:    "missing signing secret",
			mutate:  func(c *Config) { c.SecretKey.Access = " " },
			wantErr: "secretKey.access",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			switch {
			case tt.wantErr == "" && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "skipped",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}

	replicas := replicasFromEnv(func(key string) string { return vars[key] })

	if len(replicas) != 2 {
		t.Fatalf("replicas = %+v, want 2 entries", replicas)
	}
	if replicas[0].Host != "replica-a" || replicas[0].UserName != "reader" || replicas[1].Port != "5433" {
		t.Fatalf("replicas = %+v", replicas)
	}
}

func TestLoadWithEnv(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "config")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	yamlDoc := "geofence:\n  distanceModel: planar\n  metersPerDegree: 111000\nlive:\n  pingInterval: 30s\n"
	if err := os.WriteFile(filepath.Join(nested, "config.yaml"), []byte(yamlDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Chdir(dir)
	t.Setenv("GEOFENCE_DISTANCEMODEL", "haversine")
	t.Setenv("LIVE_PINGINTERVAL", "10s")

	cfg, err := LoadWithEnv[Config]("config", "config")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Geofence.DistanceModel != DistanceModelHaversine {
		t.Fatalf("distance model = %q, want env override", cfg.Geofence.DistanceModel)
	}
	if cfg.Geofence.MetersPerDegree != 111000 {
		t.Fatalf("meters per degree = %v", cfg.Geofence.MetersPerDegree)
	}
	if cfg.Live.PingInterval != 10*time.Second {
		t.Fatalf("ping interval = %v", cfg.Live.PingInterval)
	}

	if _, err := LoadWithEnv[Config]("absent"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
