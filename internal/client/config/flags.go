package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophtalk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-t string   transport, "wire" or "grpc"
//	-i int      unread poll interval in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.Transport, "t", cfg.Transport, "transport (wire or grpc)")
	unreadCheckInterval := fs.Int("i", int(cfg.UnreadCheckInterval.Seconds()), "unread poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.UnreadCheckInterval = time.Duration(*unreadCheckInterval) * time.Second
}
