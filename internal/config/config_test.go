package config

import (
	"os"
	"testing"
)

// unsetPort removes PORT for the duration of the test
func unsetPort(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	if err := os.Unsetenv("PORT"); err != nil {
		t.Fatalf("failed to unset PORT: %v", err)
	}
}

func TestLoad_DefaultPort(t *testing.T) {
	unsetPort(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if got := cfg.GetHTTPAddr(); got != ":3000" {
		t.Errorf("GetHTTPAddr() = %q, want %q", got, ":3000")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"empty falls back to default", "", 3000, false},
		{"custom port", "8080", 8080, false},
		{"lowest port", "1", 1, false},
		{"highest port", "65535", 65535, false},
		{"zero", "0", 0, true},
		{"negative", "-1", 0, true},
		{"out of range", "70000", 0, true},
		{"not a number", "http", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.value)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load() with PORT=%q succeeded, want error", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Port != tt.want {
				t.Errorf("Port = %d, want %d", cfg.Port, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := (&Config{Port: 3000}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := (&Config{}).Validate(); err == nil {
		t.Error("Validate() on zero port succeeded, want error")
	}
}
