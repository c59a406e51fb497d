package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophtalk/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-w string   wire protocol bind address (e.g., ":5555")
//	-a string   gRPC bind address (e.g., ":50051")
//	-k string   snapshot backend: "file", "s3" or "postgres"
//	-f string   snapshot file path (file backend)
//	-d string   PostgreSQL DSN (postgres backend)
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-o string   S3 object key
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-w", "-a", "-k", "-f", "-d", "-u", "-p", "-b", "-g", "-e", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrWire, "w", config.EndpointAddrWire, "address and port for the wire endpoint")
	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port for the gRPC endpoint")
	fs.StringVar(&config.SnapshotBackend, "k", config.SnapshotBackend, "snapshot backend (file, s3, postgres)")
	fs.StringVar(&config.SnapshotPath, "f", config.SnapshotPath, "snapshot file path")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3Key, "o", config.S3Key, "S3 object key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
