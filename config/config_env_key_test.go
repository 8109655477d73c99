package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"publicPrefix": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "STORAGE_PUBLICPREFIX", want: "storage.publicPrefix"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsAuthAndStorage(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Auth.TokenTTL != defaultTokenTTL {
		t.Fatalf("TokenTTL = %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.PasswordResetTTL != defaultPasswordResetTTL {
		t.Fatalf("PasswordResetTTL = %v", cfg.Auth.PasswordResetTTL)
	}
	if cfg.Auth.OTPHistoryLimit != defaultOTPHistoryLimit {
		t.Fatalf("OTPHistoryLimit = %d", cfg.Auth.OTPHistoryLimit)
	}
	if cfg.Storage.PublicPrefix != "/uploads" || cfg.Storage.Root != "uploads" {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{OTPHistoryLimit: 3},
		Storage: &StorageConfig{Root: "/var/data", MaxUploadSize: 1024},
	}
	applyDefaults(cfg)

	if cfg.Auth.OTPHistoryLimit != 3 {
		t.Fatalf("OTPHistoryLimit = %d, want 3", cfg.Auth.OTPHistoryLimit)
	}
	if cfg.Storage.Root != "/var/data" || cfg.Storage.MaxUploadSize != 1024 {
		t.Fatalf("storage overridden: %+v", cfg.Storage)
	}
}

func TestApplyDefaults_DatabaseDiagnostics(t *testing.T) {
	cfg := &Config{}
	cfg.Database.SlowQueryThreshold = defaultSlowQuery * 2
	applyDefaults(cfg)

	if cfg.Database.SlowQueryThreshold != 2*defaultSlowQuery {
		t.Fatalf("SlowQueryThreshold overwritten: %v", cfg.Database.SlowQueryThreshold)
	}
	if cfg.Database.PoolMonitorInterval != defaultPoolMonitor {
		t.Fatalf("PoolMonitorInterval = %v", cfg.Database.PoolMonitorInterval)
	}
	if cfg.Database.PoolWaitWarn != defaultPoolWaitWarn {
		t.Fatalf("PoolWaitWarn = %v", cfg.Database.PoolWaitWarn)
	}
}

func TestFindConfigFile_Missing(t *testing.T) {
	if _, err := findConfigFile("does-not-exist", []string{"testdata"}); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
