package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.DutyTeamID != 579 {
		t.Fatalf("unexpected default DutyTeamID: %d", cfg.DutyTeamID)
	}
	if cfg.DutySize != 2 {
		t.Fatalf("unexpected default DutySize: %d", cfg.DutySize)
	}
	if cfg.DutyWindowLimit != 6 {
		t.Fatalf("unexpected default DutyWindowLimit: %d", cfg.DutyWindowLimit)
	}
	if cfg.ScoresBaseURL != "https://webws.365scores.com" {
		t.Fatalf("unexpected default ScoresBaseURL: %q", cfg.ScoresBaseURL)
	}
	if cfg.ScoresTimezoneName != "Asia/Jerusalem" {
		t.Fatalf("unexpected default ScoresTimezoneName: %q", cfg.ScoresTimezoneName)
	}
	if cfg.CycleInterval != time.Hour {
		t.Fatalf("unexpected default CycleInterval: %s", cfg.CycleInterval)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected default CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_DutyOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DUTY_TEAM_ID", "1234")
	t.Setenv("DUTY_SIZE", "3")
	t.Setenv("DUTY_WINDOW_LIMIT", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DutyTeamID != 1234 {
		t.Fatalf("unexpected DutyTeamID: %d", cfg.DutyTeamID)
	}
	if cfg.DutySize != 3 {
		t.Fatalf("unexpected DutySize: %d", cfg.DutySize)
	}
	if cfg.DutyWindowLimit != 10 {
		t.Fatalf("unexpected DutyWindowLimit: %d", cfg.DutyWindowLimit)
	}
}

func TestLoad_RejectsInvalidDutyValues(t *testing.T) {
	t.Run("zero team id", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("DUTY_TEAM_ID", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for DUTY_TEAM_ID=0")
		}
	})

	t.Run("zero duty size", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("DUTY_SIZE", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for DUTY_SIZE=0")
		}
	})

	t.Run("bad cycle interval", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CYCLE_INTERVAL", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for CYCLE_INTERVAL=soon")
		}
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "debug", want: "debug"},
		{in: "WARN", want: "warn"},
		{in: "error", want: "error"},
		{in: "unknown", want: "info"},
		{in: "", want: "info"},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in).String(); got != tt.want {
			t.Fatalf("parseLogLevel(%q)=%s want=%s", tt.in, got, tt.want)
		}
	}
}
