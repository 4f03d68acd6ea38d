package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the webhook server will listen.
	Port string `mapstructure:"port" default:"8080"`
}
