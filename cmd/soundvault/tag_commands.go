package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"soundvault/internal/library"
)

func newTagCommands(ctx *commandContext) []*cobra.Command {
	tagCmd := &cobra.Command{
		Use:   "tag <track-id> <type:value>...",
		Short: "Attach semantic tags to a track",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			trackID, err := parseTrackID(args[0])
			if err != nil {
				return err
			}
			for _, tag := range args[1:] {
				tagType, tagValue, err := parseTag(tag)
				if err != nil {
					return err
				}
				if err := store.AddTag(cmd.Context(), trackID, tagType, tagValue); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tagged track %d with %d tag(s)\n", trackID, len(args)-1)
			return nil
		},
	}

	untagCmd := &cobra.Command{
		Use:   "untag <track-id> <type:value>...",
		Short: "Remove semantic tags from a track",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			trackID, err := parseTrackID(args[0])
			if err != nil {
				return err
			}
			for _, tag := range args[1:] {
				tagType, tagValue, err := parseTag(tag)
				if err != nil {
					return err
				}
				if err := store.RemoveTag(cmd.Context(), trackID, tagType, tagValue); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d tag(s) from track %d\n", len(args)-1, trackID)
			return nil
		},
	}

	return []*cobra.Command{tagCmd, untagCmd}
}

func parseTag(tag string) (string, string, error) {
	tagType, tagValue := library.SplitTag(strings.TrimSpace(tag))
	if tagType == "" || tagValue == "" {
		return "", "", fmt.Errorf("invalid tag %q: expected type:value", tag)
	}
	return tagType, tagValue, nil
}
