package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"soundvault/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var (
		limit  int
		follow bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the soundvault log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logPath := filepath.Join(cfg.Paths.LogDir, "soundvault.log")

			opts := logs.TailOptions{Limit: limit, Follow: follow}
			if follow {
				opts.Wait = 30 * time.Second
			}
			lines, err := logs.Tail(cmd.Context(), logPath, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(lines) == 0 {
				fmt.Fprintf(out, "No log entries at %s\n", logPath)
				return nil
			}
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "lines", "n", 50, "Number of trailing lines to print")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Wait briefly for new lines when the tail is empty")
	return cmd
}
