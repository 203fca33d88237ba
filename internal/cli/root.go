package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/ulid"
	"github.com/dmitrymomot/ulid/pkg/logger"
)

// MaxCount caps how many IDs one invocation may print.
const MaxCount = 1_000_000

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
)

type generateFlags struct {
	at        string
	format    string
	count     int
	monotonic bool
}

// NewRootCommand builds the command tree. Options given to the generator
// (entropy, clock) are applied after the configured monotonic setting.
func NewRootCommand(cfg Config, log *slog.Logger, opts ...ulid.Option) *cobra.Command {
	flags := generateFlags{count: 1, format: "ulid", monotonic: cfg.Monotonic}

	root := &cobra.Command{
		Use:   "ulid",
		Short: "Generate and inspect ULIDs",
		Long: `Generate Universally Unique Lexicographically Sortable Identifiers.

Without a subcommand, prints new ULIDs one per line. IDs from a single
invocation sort strictly in generation order unless --monotonic=false.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(logger.WithCommand(cmd.Context(), cmd.Name()))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := ulid.New(append([]ulid.Option{ulid.WithMonotonic(flags.monotonic)}, opts...)...)
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), log, gen, flags)
		},
	}

	root.Flags().IntVarP(&flags.count, "count", "n", flags.count, "number of IDs to generate")
	root.Flags().StringVarP(&flags.at, "time", "t", "", "timestamp as milliseconds or RFC 3339 (default now)")
	root.Flags().StringVarP(&flags.format, "format", "f", flags.format, "ID format: ulid or uuid")
	root.Flags().BoolVarP(&flags.monotonic, "monotonic", "m", flags.monotonic, "keep IDs strictly increasing within this run (env ULID_MONOTONIC)")

	root.AddCommand(newTimeCommand(log), newValidateCommand(log))
	return root
}

func runGenerate(ctx context.Context, w io.Writer, log *slog.Logger, gen ulid.Generator, flags generateFlags) error {
	if flags.count < 1 || flags.count > MaxCount {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrCount, flags.count, MaxCount)
	}

	render, err := idFormatter(flags.format)
	if err != nil {
		return err
	}

	next := gen.Generate
	if flags.at != "" {
		ms, err := ulid.ParseTimestamp(flags.at)
		if err != nil {
			return err
		}
		next = func() (string, error) { return gen.GenerateAt(ms) }
	}

	for range flags.count {
		id, err := next()
		if err != nil {
			return err
		}
		out, err := render(id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}

	log.DebugContext(ctx, "generated",
		slog.Int("count", flags.count),
		slog.Bool("monotonic", flags.monotonic),
		slog.String("format", flags.format),
	)
	return nil
}

func idFormatter(format string) (func(string) (string, error), error) {
	switch format {
	case "ulid":
		return func(id string) (string, error) { return id, nil }, nil
	case "uuid":
		return func(id string) (string, error) {
			b, err := ulid.ToBytes(id)
			if err != nil {
				return "", err
			}
			return uuid.UUID(b).String(), nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, format)
	}
}

// Run loads configuration, executes the command and returns the exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log, err := logger.NewWithSentry(stderr, cfg.Log, cfg.Sentry, logger.CommandExtractor)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer logger.Flush(2 * time.Second)

	root := NewRootCommand(cfg, log)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		if cmd != nil && cmd.Context() != nil {
			ctx = cmd.Context()
		}
		log.ErrorContext(ctx, "command failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
