package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/cdnpin/cmd/cdnpin/opts"
	"github.com/walteh/cdnpin/pkg/log"
	"github.com/walteh/cdnpin/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// NewRewriteCmd creates the command that rewrites local files without searching or syncing
func NewRewriteCmd(o *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rewrite FILE...",
		Short: "Rewrite local files with the rule set",
		Long: `Rewrite applies the rule set to each file in place and prints the paths
that changed. With --dry-run nothing is written and an inline diff of each
change is printed instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)

			rules, err := o.Config.RuleSet()
			if err != nil {
				return errors.Errorf("compiling rules: %w", err)
			}
			rw := rewrite.New(rules)

			for _, path := range args {
				var out rewrite.Outcome
				if dryRun {
					plan, err := rw.Plan(ctx, path)
					if err != nil {
						return errors.Errorf("planning %s: %w", path, err)
					}
					if plan.Changed {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", path, wordDiff(plan.Before, plan.After))
					}
					out = plan.Outcome
				} else {
					out, err = rw.Rewrite(ctx, path)
					if err != nil {
						return errors.Errorf("rewriting %s: %w", path, err)
					}
					if out.Changed {
						fmt.Fprintln(cmd.OutOrStdout(), out.Path)
					}
				}

				console.LogFileOperation(ctx, log.FileOperation{
					Path:         path,
					Changed:      out.Changed,
					Replacements: out.Replacements,
				})
			}

			console.Summary(len(args))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print an inline diff instead of writing files")

	return cmd
}
