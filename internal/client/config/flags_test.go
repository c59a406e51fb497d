package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "127.0.0.1:9090", "-t", "grpc", "-i", "5"},
			expectPanic: false,
			expected: &Config{
				ServerEndpointAddr:  "127.0.0.1:9090",
				Transport:           "grpc",
				UnreadCheckInterval: 5 * time.Second,
			}},
		{name: "Test2 unknown flags ignored", args: []string{"cmd", "-z", "oops", "-a", "h:1"},
			expectPanic: false,
			expected: &Config{
				ServerEndpointAddr:  "h:1",
				UnreadCheckInterval: 0,
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
