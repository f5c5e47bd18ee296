package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"soundvault/internal/resolver"
)

func newSuggestCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest <track-id>",
		Short: "Suggest folders for a track based on its tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			trackID, err := parseTrackID(args[0])
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.Organizer.SuggestionLimit
			}

			res := resolver.New(store, ctx.ensureLogger())
			suggestions, err := res.Suggest(cmd.Context(), trackID, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				fmt.Fprintln(out, "No suggestions; tag the track or file similar tracks first")
				return nil
			}

			colorize := shouldColorize(out)
			rows := make([][]string, 0, len(suggestions))
			for _, suggestion := range suggestions {
				path, err := store.FolderPath(cmd.Context(), suggestion.Folder.ID)
				if err != nil {
					return err
				}
				names := make([]string, 0, len(path))
				for _, segment := range path {
					names = append(names, segment.Name)
				}

				matching, err := res.MatchingTags(cmd.Context(), trackID, suggestion.Folder.ID)
				if err != nil {
					return err
				}
				why := dim(strings.Join(matching, ", "), colorize)

				rows = append(rows, []string{
					strconv.FormatInt(suggestion.Folder.ID, 10),
					joinFolderNames(names),
					colorizeConfidence(formatConfidence(suggestion.Confidence), suggestion.Confidence, cfg.Organizer.ConfidenceThreshold, colorize),
					why,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"ID", "Folder", "Confidence", "Matching Tags"}, rows, 0, 2))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of suggestions")
	return cmd
}
