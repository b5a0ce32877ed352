package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve NUMBER...",
	Short: "Resolve numbers through one table",
	Long: `Follows each NUMBER through the table named by --table and prints
"NUMBER -> RESULT". Numbers caught in a cycle resolve to themselves and
are marked "(cycle)".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := cmd.Flags().GetString("table")
		if err != nil {
			return err
		}

		s, tel, err := openSession(cmd)
		if err != nil {
			return err
		}

		runErr := runResolve(cmd.Context(), cmd.OutOrStdout(), s, name, args)
		if err := tel.flush(cmd.Context(), cmd.ErrOrStderr()); err != nil {
			s.logger.Warn("telemetry flush failed", "error", err)
		}
		return runErr
	},
}

func init() {
	resolveCmd.Flags().StringP("table", "t", "main", "Name of the table to resolve against")
	rootCmd.AddCommand(resolveCmd)
}

// runResolve prints one line per number. It stops at the first number
// that is not a valid telephone number.
func runResolve(ctx context.Context, w io.Writer, s *session, table string, numbers []string) error {
	h, err := s.handle(table)
	if err != nil {
		return err
	}

	for _, n := range numbers {
		res, err := s.registry.TraceContext(ctx, h, n)
		if err != nil {
			return err
		}

		if res.Cycle {
			fmt.Fprintf(w, "%s -> %s (cycle)\n", n, res.Result)
		} else {
			fmt.Fprintf(w, "%s -> %s\n", n, res.Result)
		}
	}
	return nil
}
