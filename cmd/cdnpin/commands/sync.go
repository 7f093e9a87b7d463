package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/cdnpin/cmd/cdnpin/opts"
	"github.com/walteh/cdnpin/pkg/log"
	"github.com/walteh/cdnpin/pkg/pipeline"
	"gitlab.com/tozd/go/errors"
)

// NewSyncCmd creates a new sync command
func NewSyncCmd(o *opts.RootOpts) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Bring the local mirrors up to date",
		Long: `Sync searches for candidate files, clones every repository that has no
local mirror yet, then fetches every mirror in the store. No files are rewritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)

			console.Header("searching for stale references")
			found, err := findCandidates(ctx, o)
			if err != nil {
				return err
			}

			console.Header("syncing mirrors")
			syncer := &reportingSyncer{syncer: newSyncer(o, reset), console: console}
			mirrors, err := syncer.Sync(ctx, pipeline.Requirements(found))
			if err != nil {
				return errors.Errorf("syncing mirrors: %w", err)
			}

			console.Successf("%d mirrors up to date in %s", len(mirrors), o.Config.Store)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "hard reset each mirror's worktree to the fetched remote branch")

	return cmd
}
