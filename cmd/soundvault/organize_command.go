package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"soundvault/internal/organizer"
	"soundvault/internal/resolver"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var (
		threshold float64
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "File all tagged, unfiled tracks whose best suggestion is confident enough",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if threshold <= 0 {
				threshold = cfg.Organizer.ConfidenceThreshold
			}

			logger := ctx.ensureLogger()
			res := resolver.New(store, logger)
			out := cmd.OutOrStdout()

			if dryRun {
				return runDryOrganize(cmd, ctx, res, threshold)
			}

			org, err := organizer.New(cfg, store, res, logger)
			if err != nil {
				return err
			}
			report, err := org.Run(cmd.Context(), threshold)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Run %s: processed %d track(s), organized %d\n",
				report.RunID, report.Processed, report.Organized)
			if len(report.Results) == 0 {
				return nil
			}

			colorize := shouldColorize(out)
			rows := make([][]string, 0, len(report.Results))
			for _, result := range report.Results {
				status := "skipped"
				confidence := ""
				target := result.Note
				if result.Organized {
					status = "filed"
					confidence = colorizeConfidence(formatConfidence(result.Confidence), result.Confidence, threshold, colorize)
					target = result.FolderName
				}
				rows = append(rows, []string{
					strconv.FormatInt(result.TrackID, 10),
					result.Title,
					status,
					target,
					confidence,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Status", "Folder / Note", "Confidence"}, rows, 0, 4))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Minimum confidence required to file a track")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be filed without writing")
	return cmd
}

// runDryOrganize previews the batch without taking the run lock or writing
// memberships.
func runDryOrganize(cmd *cobra.Command, ctx *commandContext, res *resolver.Resolver, threshold float64) error {
	store, err := ctx.ensureStore(cmd)
	if err != nil {
		return err
	}
	trackIDs, err := store.UnfiledTaggedTrackIDs(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(trackIDs) == 0 {
		fmt.Fprintln(out, "No tagged, unfiled tracks to organize")
		return nil
	}

	colorize := shouldColorize(out)
	rows := make([][]string, 0, len(trackIDs))
	for _, trackID := range trackIDs {
		track, err := store.TrackByID(cmd.Context(), trackID)
		if err != nil {
			return err
		}
		suggestions, err := res.Suggest(cmd.Context(), trackID, 1)
		if err != nil {
			return err
		}
		title := track.Title
		if title == "" {
			title = titleFromFilename(track.FilePath)
		}
		if len(suggestions) == 0 || suggestions[0].Confidence < threshold {
			rows = append(rows, []string{
				strconv.FormatInt(trackID, 10), title, "would skip", "", "",
			})
			continue
		}
		best := suggestions[0]
		rows = append(rows, []string{
			strconv.FormatInt(trackID, 10),
			title,
			"would file",
			best.Folder.Name,
			colorizeConfidence(formatConfidence(best.Confidence), best.Confidence, threshold, colorize),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"ID", "Title", "Action", "Folder", "Confidence"}, rows, 0, 4))
	return nil
}
