package files

import (
	"sync"

	"go.uber.org/zap"

	"github.com/peterkovacs/files/backend"
	"github.com/peterkovacs/files/backend/billy"
	platformerrors "github.com/peterkovacs/files/errors"
)

// Option configures handle creation.
type Option func(*config)

type config struct {
	backend backend.Backend
	logger  *zap.Logger
}

// WithBackend makes handles use b instead of the local disk.
func WithBackend(b backend.Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// WithLogger makes handles log mutations to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// localBackend is shared by every handle created without WithBackend, so
// that such handles compare equal to each other.
var localBackend = sync.OnceValues(func() (backend.Backend, error) {
	b, err := billy.NewLocal()
	if err != nil {
		return nil, err
	}
	return b, nil
})

func newConfig(opts []Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.backend == nil {
		b, err := localBackend()
		if err != nil {
			return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to create local backend")
		}
		c.backend = b
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c, nil
}

// RenameOption configures Rename.
type RenameOption func(*renameOptions)

type renameOptions struct {
	keepExtension bool
}

// KeepExtension controls whether Rename carries the current extension over
// to a new name that lacks it. The default is true.
func KeepExtension(keep bool) RenameOption {
	return func(o *renameOptions) {
		o.keepExtension = keep
	}
}

// ContentsOption configures the folder operations that act on every direct
// child: Empty, IsEmpty and MoveContents.
type ContentsOption func(*contentsOptions)

type contentsOptions struct {
	includeHidden bool
}

// IncludeHidden makes a contents operation also act on hidden entries.
// By default hidden entries are left alone.
func IncludeHidden() ContentsOption {
	return func(o *contentsOptions) {
		o.includeHidden = true
	}
}

func newContentsOptions(opts []ContentsOption) contentsOptions {
	var o contentsOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
