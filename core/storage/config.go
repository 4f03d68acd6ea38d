package storage

// Config holds configuration for the optional S3/MinIO index mirror.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket to mirror the index document into.
	// The mirror target is disabled when empty.
	Bucket string `mapstructure:"bucket" default:""`
	// Object is the object key of the mirrored index document.
	Object string `mapstructure:"object" default:"search-index.json"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Enabled reports whether the mirror target is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}
