package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/cdnpin/cmd/cdnpin/opts"
	"github.com/walteh/cdnpin/pkg/log"
	"github.com/walteh/cdnpin/pkg/pipeline"
	"github.com/walteh/cdnpin/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates the command that searches, syncs and rewrites
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Find, sync and rewrite stale references",
		Long: `Run executes the full remediation:
1. Search for files referencing stale assets
2. Clone missing mirrors and update every mirror
3. Rewrite each candidate file with the rule set
4. Print the absolute path of every rewritten file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)

			rules, err := o.Config.RuleSet()
			if err != nil {
				return errors.Errorf("compiling rules: %w", err)
			}

			console.Header("searching for stale references")
			found, err := findCandidates(ctx, o)
			if err != nil {
				return err
			}
			console.Infof("found %d candidate files", len(found))

			p, err := pipeline.New(pipeline.Options{
				Syncer:      &reportingSyncer{syncer: newSyncer(o, reset), console: console},
				Rewriter:    rewrite.New(rules),
				Concurrency: o.Config.Concurrency,
			})
			if err != nil {
				return errors.Errorf("creating pipeline: %w", err)
			}

			console.Header("syncing mirrors and rewriting files")
			outcomes, err := p.Run(ctx, found)
			if err != nil {
				return errors.Errorf("running pipeline: %w", err)
			}

			for _, out := range outcomes {
				repo, rel := splitStorePath(o.Config.Store, out.Path)
				console.LogFileOperation(ctx, log.FileOperation{
					Path:         rel,
					Repository:   repo,
					Changed:      out.Changed,
					Replacements: out.Replacements,
				})
				fmt.Fprintln(cmd.OutOrStdout(), out.Path)
			}

			console.Summary(len(found))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "hard reset each mirror's worktree to the fetched remote branch")

	return cmd
}
