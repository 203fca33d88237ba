package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ulid"
)

func newValidateCommand(log *slog.Logger) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate <id>...",
		Short: "Check that each argument is a well-formed ULID",
		Long: `Check that each argument is a well-formed ULID.

Prints one line per argument and exits non-zero if any is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			invalid := 0
			for _, id := range args {
				err := ulid.Validate(id)
				if err != nil {
					invalid++
					log.DebugContext(cmd.Context(), "invalid ULID", slog.String("id", id), slog.String("reason", err.Error()))
				}
				if quiet {
					continue
				}
				line := fmt.Sprintf("%s\tok", id)
				if err != nil {
					line = fmt.Sprintf("%s\tinvalid: %v", id, err)
				}
				if _, werr := fmt.Fprintln(w, line); werr != nil {
					return werr
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidIDs, invalid, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing, only set the exit status")
	return cmd
}
