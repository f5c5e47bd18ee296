package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/spf13/cobra"

	"soundvault/internal/library"
)

func newFolderCommand(ctx *commandContext) *cobra.Command {
	folderCmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage the virtual folder taxonomy",
	}

	folderCmd.AddCommand(newFolderTreeCommand(ctx))
	folderCmd.AddCommand(newFolderCreateCommand(ctx))
	folderCmd.AddCommand(newFolderMoveCommand(ctx))
	folderCmd.AddCommand(newFolderDeleteCommand(ctx))
	folderCmd.AddCommand(newFolderPathCommand(ctx))
	folderCmd.AddCommand(newFolderSearchCommand(ctx))
	folderCmd.AddCommand(newFolderShowCommand(ctx))

	return folderCmd
}

func newFolderTreeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the folder hierarchy with track counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			tree, err := store.FolderTree(cmd.Context())
			if err != nil {
				return err
			}

			lw := list.NewWriter()
			lw.SetStyle(list.StyleConnectedRounded)
			for _, root := range tree {
				appendTreeNode(lw, root)
			}
			fmt.Fprintln(cmd.OutOrStdout(), lw.Render())
			return nil
		},
	}
}

func appendTreeNode(lw list.Writer, node library.FolderNode) {
	label := node.Folder.Name
	if node.TotalFileCount > 0 {
		label = fmt.Sprintf("%s (%d)", label, node.TotalFileCount)
	}
	lw.AppendItem(label)
	if len(node.Children) == 0 {
		return
	}
	lw.Indent()
	for _, child := range node.Children {
		appendTreeNode(lw, child)
	}
	lw.UnIndent()
}

func newFolderCreateCommand(ctx *commandContext) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a folder, including any missing parent segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			folder, err := store.CreatePath(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if description != "" {
				folder.Description = description
				if err := store.UpdateFolder(cmd.Context(), folder); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created folder %d: %s\n", folder.ID, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Folder description")
	return cmd
}

func newFolderMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <new-parent-id|root>",
		Short: "Re-parent a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			id, err := parseFolderID(args[0])
			if err != nil {
				return err
			}
			var parentID *int64
			if !strings.EqualFold(args[1], "root") {
				parsed, err := parseFolderID(args[1])
				if err != nil {
					return err
				}
				parentID = &parsed
			}
			if err := store.MoveFolder(cmd.Context(), id, parentID); err != nil {
				if errors.Is(err, library.ErrFolderCycle) {
					return fmt.Errorf("cannot move folder %d under its own subtree", id)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved folder %d\n", id)
			return nil
		},
	}
}

func newFolderDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a folder without children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			id, err := parseFolderID(args[0])
			if err != nil {
				return err
			}
			if err := store.DeleteFolder(cmd.Context(), id); err != nil {
				if errors.Is(err, library.ErrFolderNotEmpty) {
					return fmt.Errorf("folder %d still has child folders; delete or move them first", id)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted folder %d\n", id)
			return nil
		},
	}
}

func newFolderPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path <id>",
		Short: "Print a folder's path from the root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			id, err := parseFolderID(args[0])
			if err != nil {
				return err
			}
			path, err := store.FolderPath(cmd.Context(), id)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(path))
			for _, folder := range path {
				names = append(names, folder.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinFolderNames(names))
			return nil
		},
	}
}

func newFolderSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find folders by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			folders, err := store.SearchFolders(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(folders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No folders matched")
				return nil
			}
			rows := make([][]string, 0, len(folders))
			for _, folder := range folders {
				path, err := store.FolderPath(cmd.Context(), folder.ID)
				if err != nil {
					return err
				}
				names := make([]string, 0, len(path))
				for _, segment := range path {
					names = append(names, segment.Name)
				}
				rows = append(rows, []string{
					strconv.FormatInt(folder.ID, 10),
					joinFolderNames(names),
					folder.Description,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Path", "Description"}, rows, 0))
			return nil
		},
	}
}

func newFolderShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a folder's subfolders and filed tracks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore(cmd)
			if err != nil {
				return err
			}
			id, err := parseFolderID(args[0])
			if err != nil {
				return err
			}
			view, err := store.FolderContentsView(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			names := make([]string, 0, len(view.Breadcrumb))
			for _, segment := range view.Breadcrumb {
				names = append(names, segment.Name)
			}
			fmt.Fprintf(out, "Folder: %s\n", joinFolderNames(names))
			if view.Folder.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", view.Folder.Description)
			}

			if len(view.Subfolders) > 0 {
				rows := make([][]string, 0, len(view.Subfolders))
				for _, sub := range view.Subfolders {
					rows = append(rows, []string{
						strconv.FormatInt(sub.Folder.ID, 10),
						sub.Folder.Name,
						strconv.FormatInt(sub.TotalFileCount, 10),
					})
				}
				fmt.Fprintln(out, renderTable([]string{"ID", "Subfolder", "Tracks"}, rows, 0, 2))
			}

			if len(view.Tracks) > 0 {
				rows := make([][]string, 0, len(view.Tracks))
				for _, track := range view.Tracks {
					title := track.Title
					if title == "" {
						title = titleFromFilename(track.FilePath)
					}
					rows = append(rows, []string{
						strconv.FormatInt(track.ID, 10),
						title,
						track.FilePath,
					})
				}
				fmt.Fprintln(out, renderTable([]string{"ID", "Title", "File"}, rows, 0))
			} else {
				fmt.Fprintln(out, "No tracks filed directly in this folder")
			}
			return nil
		},
	}
}

func parseFolderID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid folder id %q", arg)
	}
	return id, nil
}
