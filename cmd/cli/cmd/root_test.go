package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskapp/taskapp/internal/config"
	"github.com/taskapp/taskapp/internal/constants"
)

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "", want: 2 * time.Minute},
		{input: "30s", want: 30 * time.Second},
		{input: "1h", want: time.Hour},
		{input: "120", want: 120 * time.Second},
		{input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseTimeout(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetConfigFromContext(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := getConfigFromContext(cmd)
	assert.ErrorContains(t, err, "configure")

	cfg := &config.Config{APIEndpoint: "https://api.example.com"}
	cmd.SetContext(context.WithValue(cmd.Context(), constants.ConfigCtxKey, cfg))
	got, err := getConfigFromContext(cmd)
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range RootCmd().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"configure", "signup", "confirm", "login", "tasks", "users", "health", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
