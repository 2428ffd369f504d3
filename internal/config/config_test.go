package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		session string
		wantErr bool
	}{
		{"development without session secret", "development", "s", "", false},
		{"production with session secret", "production", "s", "k", false},
		{"production without session secret", "production", "s", "", true},
		{"staging without session secret", "staging", "s", "  ", true},
		{"missing api secret", "development", "", "k", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				App:     AppConfig{Env: tt.env},
				API:     APIConfig{Secret: tt.secret},
				Session: SessionConfig{Secret: tt.session},
			}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
