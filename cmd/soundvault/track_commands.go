package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"soundvault/internal/library"
)

func newTrackCommand(ctx *commandContext) *cobra.Command {
	trackCmd := &cobra.Command{
		Use:   "track",
		Short: "Manage the track catalog",
	}

	trackCmd.AddCommand(newTrackAddCommand(ctx))
	trackCmd.AddCommand(newTrackListCommand(ctx))
	trackCmd.AddCommand(newTrackShowCommand(ctx))
	trackCmd.AddCommand(newTrackFileCommand(ctx))
	trackCmd.AddCommand(newTrackUnfileCommand(ctx))

	return trackCmd
}

func newTrackAddCommand(ctx *commandContext) *cobra.Command {
	var (
		title  string
		artist string
		album  string
	)

	cmd := &cobra.Command{
		Use:   "add <file-path>",
		Short: "Catalog an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			if title == "" {
				title = titleFromFilename(path)
			}
			track, err := store.AddTrack(cmd.Context(), library.NewTrack{
				FilePath: path,
				Title:    title,
				Artist:   artist,
				Album:    album,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cataloged track %d: %s\n", track.ID, track.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Track title (derived from the file name when omitted)")
	cmd.Flags().StringVar(&artist, "artist", "", "Track artist")
	cmd.Flags().StringVar(&album, "album", "", "Track album")
	return cmd
}

func newTrackListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cataloged tracks",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			tracks, err := store.ListTracks(cmd.Context())
			if err != nil {
				return err
			}
			if len(tracks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tracks cataloged")
				return nil
			}
			rows := make([][]string, 0, len(tracks))
			for _, track := range tracks {
				tags, err := store.TagsForTrack(cmd.Context(), track.ID)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					strconv.FormatInt(track.ID, 10),
					track.Title,
					track.FilePath,
					strconv.Itoa(len(tags)),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Title", "File", "Tags"}, rows, 0, 3))
			return nil
		},
	}
}

func newTrackShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a track's tags and folder memberships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			id, err := parseTrackID(args[0])
			if err != nil {
				return err
			}
			track, err := store.TrackByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Track %d: %s\n", track.ID, track.Title)
			fmt.Fprintf(out, "File: %s\n", track.FilePath)
			if track.Artist != "" {
				fmt.Fprintf(out, "Artist: %s\n", track.Artist)
			}

			tags, err := store.TagsForTrack(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(tags) > 0 {
				fmt.Fprintln(out, "Tags:")
				for _, tag := range tags {
					fmt.Fprintf(out, "  %s\n", tag)
				}
			} else {
				fmt.Fprintln(out, "No tags")
			}

			folders, err := store.FoldersForTrack(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(folders) > 0 {
				fmt.Fprintln(out, "Filed in:")
				for _, folder := range folders {
					path, err := store.FolderPath(cmd.Context(), folder.ID)
					if err != nil {
						return err
					}
					names := make([]string, 0, len(path))
					for _, segment := range path {
						names = append(names, segment.Name)
					}
					fmt.Fprintf(out, "  %s\n", joinFolderNames(names))
				}
			} else {
				fmt.Fprintln(out, "Not filed in any folder")
			}
			return nil
		},
	}
}

func newTrackFileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "file <track-id> <folder-id>",
		Short: "File a track into a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			trackID, err := parseTrackID(args[0])
			if err != nil {
				return err
			}
			folderID, err := parseFolderID(args[1])
			if err != nil {
				return err
			}
			added, err := store.AddToFolder(cmd.Context(), folderID, trackID)
			if err != nil {
				return err
			}
			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "Filed track %d into folder %d\n", trackID, folderID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Track %d was already filed in folder %d\n", trackID, folderID)
			}
			return nil
		},
	}
}

func newTrackUnfileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unfile <track-id> <folder-id>",
		Short: "Remove a track from a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			trackID, err := parseTrackID(args[0])
			if err != nil {
				return err
			}
			folderID, err := parseFolderID(args[1])
			if err != nil {
				return err
			}
			if err := store.RemoveFromFolder(cmd.Context(), folderID, trackID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed track %d from folder %d\n", trackID, folderID)
			return nil
		},
	}
}

func parseTrackID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid track id %q", arg)
	}
	return id, nil
}
