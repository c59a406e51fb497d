package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophtalk/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	EndpointAddrWire string `json:"endpoint_addr_wire"`
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	SnapshotBackend  string `json:"snapshot_backend"`
	SnapshotPath     string `json:"snapshot_path"`
	DatabaseDSN      string `json:"database_dsn"`
	S3RootUser       string `json:"s3_root_user"`
	S3RootPassword   string `json:"s3_root_password"`
	S3Bucket         string `json:"s3_bucket"`
	S3Region         string `json:"s3_region"`
	S3BaseEndpoint   string `json:"s3_base_endpoint"`
	S3Key            string `json:"s3_key"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrWire = c.EndpointAddrWire
	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.SnapshotBackend = c.SnapshotBackend
	config.SnapshotPath = c.SnapshotPath
	config.DatabaseDSN = c.DatabaseDSN
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.S3Key = c.S3Key
}
