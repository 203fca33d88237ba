package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/ulid"
)

// timeRecord is one decoded ID.
type timeRecord struct {
	ID           string `json:"id"   yaml:"id"`
	Time         string `json:"time" yaml:"time"`
	Milliseconds int64  `json:"ms"   yaml:"ms"`
}

func newTimeCommand(log *slog.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "time <id>...",
		Short: "Print the timestamp encoded in each ULID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := decodeAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			log.DebugContext(cmd.Context(), "decoded", slog.Int("count", len(records)))
			return writeRecords(cmd.OutOrStdout(), output, records)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

// decodeAll decodes ids concurrently and keeps their order. The worker pool
// pays off for large argument lists, e.g. `xargs ulid time < ids.txt`.
func decodeAll(ctx context.Context, ids []string) ([]timeRecord, error) {
	records := make([]timeRecord, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ms, err := ulid.DecodeTime(id)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			records[i] = timeRecord{
				ID:           id,
				Milliseconds: ms,
				Time:         time.UnixMilli(ms).UTC().Format(time.RFC3339Nano),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

func writeRecords(w io.Writer, output string, records []timeRecord) error {
	switch output {
	case "text":
		for _, r := range records {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", r.ID, r.Milliseconds, r.Time); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}
}
