package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/maptel/pkg/maptel/observability"
)

var errCyclesFound = errors.New("tables contain cycles")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report numbers whose chains end in a cycle",
	Long: `Resolves every source number of every table and lists the ones that
run into a cycle. Exits non-zero when any cycle is found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, tel, err := openSession(cmd)
		if err != nil {
			return err
		}

		cycles, runErr := runCheck(cmd.Context(), cmd.OutOrStdout(), s)
		if err := tel.flush(cmd.Context(), cmd.ErrOrStderr()); err != nil {
			s.logger.Warn("telemetry flush failed", "error", err)
		}
		if runErr != nil {
			return runErr
		}
		if cycles > 0 {
			return errCyclesFound
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck traces every mapped source of every table, in name then
// source order, and returns how many ended in a cycle.
func runCheck(ctx context.Context, w io.Writer, s *session) (int, error) {
	names := make([]string, 0, len(s.handles))
	for name := range s.handles {
		names = append(names, name)
	}
	sort.Strings(names)

	var keys, cycles int
	for _, name := range names {
		h := s.handles[name]
		logger := observability.EnrichLogger(s.logger, s.registry.ID(), uint64(h))

		entries, err := s.registry.Entries(h)
		if err != nil {
			return cycles, err
		}

		sources := make([]string, 0, len(entries))
		for src := range entries {
			sources = append(sources, src)
		}
		sort.Strings(sources)

		var found int
		for _, src := range sources {
			res, err := s.registry.TraceContext(ctx, h, src)
			if err != nil {
				return cycles, err
			}
			keys++
			if res.Cycle {
				found++
				fmt.Fprintf(w, "%s: %s cycles via %s\n", name, src, strings.Join(res.Path, " -> "))
			}
		}
		cycles += found

		logger.Debug("table checked",
			slog.String("table", name),
			slog.Int("numbers", len(sources)),
			slog.Int("cycles", found),
		)
	}

	fmt.Fprintf(w, "checked %d tables, %d numbers: %d in cycles\n", len(names), keys, cycles)
	return cycles, nil
}
