package config

import (
	"fmt"
	"reflect"
	"strings"

	"search-sync/core/logger"
	"search-sync/core/server"
	"search-sync/core/storage"
	"search-sync/core/webflow"
	"search-sync/feature/publish"
	"search-sync/feature/webhook"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the webhook HTTP server.
	Server server.Config `mapstructure:"server"`
	// Webflow holds the CMS API credentials and collection identifiers.
	Webflow webflow.Config `mapstructure:"webflow"`
	// Publish holds the local and GitHub publish target settings.
	Publish publish.Config `mapstructure:"publish"`
	// Webhook holds the receiver secret and dispatch target settings.
	Webhook webhook.Config `mapstructure:"webhook"`
	// Storage holds the optional S3/MinIO mirror settings.
	Storage storage.Config `mapstructure:"storage"`
	// Schedule holds the optional in-process rebuild schedule.
	Schedule ScheduleConfig `mapstructure:"schedule"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// ScheduleConfig holds the optional in-process full-rebuild schedule.
type ScheduleConfig struct {
	// Spec is a cron expression (e.g. "0 6 * * *"). Empty disables the
	// built-in schedule; an external scheduler can still hit the webhook.
	Spec string `mapstructure:"spec" default:""`
}

// MissingKeysError reports every required configuration key absent for an
// entry point, collected in one pass so operators fix a deploy in one go.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Keys, ", "))
}

// Require flattens per-section missing-key lists into a single error, or nil
// when nothing is missing.
func Require(missing ...[]string) error {
	var all []string
	for _, keys := range missing {
		all = append(all, keys...)
	}
	if len(all) == 0 {
		return nil
	}
	return &MissingKeysError{Keys: all}
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. WEBFLOW_TOKEN -> webflow.token)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
