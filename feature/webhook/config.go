package webhook

// Config holds configuration for the webhook receiver and its dispatch target.
type Config struct {
	// Secret is the shared secret the CMS sends in the X-Webhook-Secret header.
	Secret string `mapstructure:"secret" default:""`
	// DispatchToken is the access token used for the repository dispatch.
	DispatchToken string `mapstructure:"dispatch_token" default:""`
	// DispatchOwner is the owner of the repository receiving the dispatch.
	DispatchOwner string `mapstructure:"dispatch_owner" default:""`
	// DispatchRepo is the repository receiving the dispatch.
	DispatchRepo string `mapstructure:"dispatch_repo" default:""`
	// EventType tags the dispatch event.
	EventType string `mapstructure:"event_type" default:"cms-content-updated"`
}

// MissingKeys returns the env keys of required options that are unset, all
// checked together so a misconfigured deploy fails with the complete list.
func (c Config) MissingKeys() []string {
	required := []struct {
		key   string
		value string
	}{
		{"WEBHOOK_SECRET", c.Secret},
		{"WEBHOOK_DISPATCH_TOKEN", c.DispatchToken},
		{"WEBHOOK_DISPATCH_OWNER", c.DispatchOwner},
		{"WEBHOOK_DISPATCH_REPO", c.DispatchRepo},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	return missing
}
