package publish

// Config holds configuration for the publish targets.
type Config struct {
	// LocalPath is where the serialized index document is written on disk.
	LocalPath string `mapstructure:"local_path" default:"search-index.json"`
	// GitHub holds the version-controlled remote store settings.
	GitHub GitHubConfig `mapstructure:"github"`
}

// GitHubConfig identifies the repository file the index is committed to.
type GitHubConfig struct {
	// Token is the access token used for the contents API.
	Token string `mapstructure:"token" default:""`
	// Owner is the repository owner.
	Owner string `mapstructure:"owner" default:""`
	// Repo is the repository name.
	Repo string `mapstructure:"repo" default:""`
	// Branch is the branch the index file lives on.
	Branch string `mapstructure:"branch" default:"main"`
	// Path is the repository path of the index file.
	Path string `mapstructure:"path" default:"public/search-index.json"`
}

// Enabled reports whether the GitHub target is configured at all.
func (c GitHubConfig) Enabled() bool {
	return c.Token != "" || c.Owner != "" || c.Repo != ""
}

// MissingKeys returns the env keys of the credential/owner/repo triple that
// are unset. A partially configured target is a configuration error rather
// than a silent skip.
func (c GitHubConfig) MissingKeys() []string {
	var missing []string
	if c.Token == "" {
		missing = append(missing, "PUBLISH_GITHUB_TOKEN")
	}
	if c.Owner == "" {
		missing = append(missing, "PUBLISH_GITHUB_OWNER")
	}
	if c.Repo == "" {
		missing = append(missing, "PUBLISH_GITHUB_REPO")
	}
	return missing
}
