package publish

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v80/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const commitMessage = "chore: update search index"

// GitHubTarget commits the index document to a repository file via the
// contents API. Revision history is the repository's concern, not ours.
type GitHubTarget struct {
	gh     *gh.Client
	cfg    GitHubConfig
	logger *zap.Logger
}

// NewGitHubClient builds an authenticated GitHub API client.
func NewGitHubClient(ctx context.Context, token string) *gh.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return gh.NewClient(oauth2.NewClient(ctx, ts))
}

// NewGitHubTarget creates a GitHub contents target on an existing client.
func NewGitHubTarget(client *gh.Client, cfg GitHubConfig, logger *zap.Logger) *GitHubTarget {
	return &GitHubTarget{
		gh:     client,
		cfg:    cfg,
		logger: logger,
	}
}

func (t *GitHubTarget) Name() string {
	return fmt.Sprintf("github:%s/%s/%s", t.cfg.Owner, t.cfg.Repo, t.cfg.Path)
}

// Publish updates the index file on the configured branch. The current blob
// SHA is fetched first so the write is an update rather than a conflicting
// create; a missing file means a fresh create. A SHA fetch that fails for any
// other reason is non-fatal: the upload is attempted as a create anyway.
func (t *GitHubTarget) Publish(ctx context.Context, data []byte) error {
	sha := t.currentSHA(ctx)

	opts := &gh.RepositoryContentFileOptions{
		Message: gh.Ptr(commitMessage),
		Content: data,
		Branch:  gh.Ptr(t.cfg.Branch),
		SHA:     sha,
	}

	var err error
	if sha != nil {
		_, _, err = t.gh.Repositories.UpdateFile(ctx, t.cfg.Owner, t.cfg.Repo, t.cfg.Path, opts)
	} else {
		_, _, err = t.gh.Repositories.CreateFile(ctx, t.cfg.Owner, t.cfg.Repo, t.cfg.Path, opts)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", t.cfg.Path, err)
	}
	return nil
}

// currentSHA returns the blob SHA of the stored index file, or nil when the
// file does not exist yet or the marker could not be read.
func (t *GitHubTarget) currentSHA(ctx context.Context) *string {
	file, _, _, err := t.gh.Repositories.GetContents(ctx, t.cfg.Owner, t.cfg.Repo, t.cfg.Path,
		&gh.RepositoryContentGetOptions{Ref: t.cfg.Branch})
	if err != nil {
		if !isNotFound(err) {
			t.logger.Warn("Could not read current index revision, attempting fresh create",
				zap.String("path", t.cfg.Path),
				zap.Error(err),
			)
		}
		return nil
	}
	if file == nil {
		return nil
	}
	return file.SHA
}

func isNotFound(err error) bool {
	var ghErr *gh.ErrorResponse
	return errors.As(err, &ghErr) &&
		ghErr.Response != nil &&
		ghErr.Response.StatusCode == http.StatusNotFound
}
