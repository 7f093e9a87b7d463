package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/cdnpin/cmd/cdnpin/opts"
	"github.com/walteh/cdnpin/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewSearchCmd creates the command that lists candidate files without touching the store
func NewSearchCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List files that reference stale assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)

			found, err := findCandidates(ctx, o)
			if err != nil {
				return err
			}

			if len(found) == 0 {
				console.Info("no candidate files found")
				return nil
			}

			data := pterm.TableData{{"Repository", "Path", "Clone URL"}}
			for _, c := range found {
				data = append(data, []string{c.Repository, c.Path, c.CloneURL})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)

			console.Infof("%d candidate files", len(found))
			return nil
		},
	}

	return cmd
}
