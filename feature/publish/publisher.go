package publish

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Target persists one serialized index document somewhere.
type Target interface {
	// Name identifies the target in logs and errors.
	Name() string
	// Publish persists the document, replacing any previous revision.
	Publish(ctx context.Context, data []byte) error
}

// Error is a rejected publish to a specific target.
type Error struct {
	Target string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("publish to %s: %v", e.Target, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Service fans the document out to the local target and the remote targets.
type Service struct {
	local   Target
	remotes []Target
	logger  *zap.Logger
}

// NewService creates a publisher. The local target is mandatory; remote
// targets are optional and may be empty.
func NewService(local Target, remotes []Target, logger *zap.Logger) *Service {
	return &Service{
		local:   local,
		remotes: remotes,
		logger:  logger,
	}
}

// Publish writes the document locally, then to every remote target.
//
// The local write is fatal on failure. A remote rejection is reported but
// does not fail the run: the computed document already exists locally, and
// the next scheduled rebuild republishes it. This asymmetry is deliberate.
func (s *Service) Publish(ctx context.Context, data []byte) error {
	if err := s.local.Publish(ctx, data); err != nil {
		return &Error{Target: s.local.Name(), Err: err}
	}
	s.logger.Info("Index published", zap.String("target", s.local.Name()))

	for _, remote := range s.remotes {
		if err := remote.Publish(ctx, data); err != nil {
			s.logger.Error("Remote publish failed",
				zap.String("target", remote.Name()),
				zap.Error(err),
			)
			continue
		}
		s.logger.Info("Index published", zap.String("target", remote.Name()))
	}
	return nil
}
