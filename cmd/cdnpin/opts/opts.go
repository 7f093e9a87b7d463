package opts

import (
	"github.com/walteh/cdnpin/pkg/config"
	"github.com/walteh/cdnpin/pkg/log"
)

// RootOpts contains shared options used by all commands.
// It is populated before any command runs.
type RootOpts struct {
	Config  *config.Config
	Console *log.Logger
	Debug   bool
}
