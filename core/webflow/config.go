package webflow

// Config holds configuration for the Webflow CMS API.
type Config struct {
	// Token is the bearer token used to authenticate against the CMS API.
	Token string `mapstructure:"token" default:""`
	// SiteID identifies the CMS site the collections belong to.
	SiteID string `mapstructure:"site_id" default:""`
	// BaseURL is the root URL of the CMS API.
	BaseURL string `mapstructure:"base_url" default:"https://api.webflow.com"`
	// APIVersion is the value sent in the accept-version header.
	APIVersion string `mapstructure:"api_version" default:"1.0.0"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`

	// BlogCollectionID is the collection holding blog posts.
	BlogCollectionID string `mapstructure:"blog_collection_id" default:""`
	// CaseStudyCollectionID is the collection holding case studies.
	CaseStudyCollectionID string `mapstructure:"case_study_collection_id" default:""`
	// ResourceCollectionID is the collection holding resource-library entries.
	ResourceCollectionID string `mapstructure:"resource_collection_id" default:""`

	// AuthorCollectionID is the reference collection holding authors.
	AuthorCollectionID string `mapstructure:"author_collection_id" default:""`
	// ResourceTypeCollectionID is the reference collection holding resource types.
	ResourceTypeCollectionID string `mapstructure:"resource_type_collection_id" default:""`
	// UseCaseCollectionID is the reference collection holding use cases.
	UseCaseCollectionID string `mapstructure:"use_case_collection_id" default:""`
	// IndustryCollectionID is the reference collection holding industries.
	IndustryCollectionID string `mapstructure:"industry_collection_id" default:""`
}

// MissingKeys returns the env keys of required options that are unset.
// All required fields are checked together so a misconfigured deploy fails
// with the complete list instead of one key at a time.
func (c Config) MissingKeys() []string {
	required := []struct {
		key   string
		value string
	}{
		{"WEBFLOW_TOKEN", c.Token},
		{"WEBFLOW_SITE_ID", c.SiteID},
		{"WEBFLOW_BLOG_COLLECTION_ID", c.BlogCollectionID},
		{"WEBFLOW_CASE_STUDY_COLLECTION_ID", c.CaseStudyCollectionID},
		{"WEBFLOW_RESOURCE_COLLECTION_ID", c.ResourceCollectionID},
		{"WEBFLOW_AUTHOR_COLLECTION_ID", c.AuthorCollectionID},
		{"WEBFLOW_RESOURCE_TYPE_COLLECTION_ID", c.ResourceTypeCollectionID},
		{"WEBFLOW_USE_CASE_COLLECTION_ID", c.UseCaseCollectionID},
		{"WEBFLOW_INDUSTRY_COLLECTION_ID", c.IndustryCollectionID},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	return missing
}
