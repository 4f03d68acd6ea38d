package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

// Dispatcher emits the trigger signal that starts a full sync run elsewhere.
// Fire-and-forget: no delivery confirmation loop. The scheduled full rebuild
// is the reconciliation mechanism when a trigger is lost.
type Dispatcher interface {
	DispatchSync(ctx context.Context, origin string) error
}

// dispatchPayload is the small payload carried by the trigger event.
type dispatchPayload struct {
	TriggeredAt string `json:"triggeredAt"`
	Origin      string `json:"origin"`
}

// GitHubDispatcher triggers the sync workflow via a repository_dispatch event.
type GitHubDispatcher struct {
	gh  *gh.Client
	cfg Config
}

// NewGitHubDispatcher creates a dispatcher on an existing GitHub client.
func NewGitHubDispatcher(client *gh.Client, cfg Config) *GitHubDispatcher {
	return &GitHubDispatcher{
		gh:  client,
		cfg: cfg,
	}
}

func (d *GitHubDispatcher) DispatchSync(ctx context.Context, origin string) error {
	payload, err := json.Marshal(dispatchPayload{
		TriggeredAt: time.Now().UTC().Format(time.RFC3339),
		Origin:      origin,
	})
	if err != nil {
		return fmt.Errorf("encode dispatch payload: %w", err)
	}

	raw := json.RawMessage(payload)
	_, _, err = d.gh.Repositories.Dispatch(ctx, d.cfg.DispatchOwner, d.cfg.DispatchRepo,
		gh.DispatchRequestOptions{
			EventType:     d.cfg.EventType,
			ClientPayload: &raw,
		})
	if err != nil {
		return fmt.Errorf("dispatch %s: %w", d.cfg.EventType, err)
	}
	return nil
}
