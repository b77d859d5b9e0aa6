package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"haven/internal/services"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List the pinned boards",
	Long:  "Shows every board category with the references pinned under it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		boards := loadBoards()
		set := boards.Boards()
		if len(set.Categories) == 0 {
			fmt.Println("No boards yet. Pin something with: haven boards pin <category> <reference>")
			return nil
		}
		for _, cat := range set.Categories {
			fmt.Printf("%s (%d)\n", cat.Name, len(cat.Refs))
			for i, ref := range cat.Refs {
				fmt.Printf("  %d. %s\n", i, ref)
			}
		}
		return nil
	},
}

var boardsAddCmd = &cobra.Command{
	Use:   "add <category>",
	Short: "Create an empty board category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boards := loadBoards()
		if err := boards.AddCategory(args[0]); err != nil {
			return err
		}
		fmt.Printf("Added category %q\n", args[0])
		return nil
	},
}

var boardsRemoveCmd = &cobra.Command{
	Use:   "remove <category>",
	Short: "Delete a category and everything pinned to it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boards := loadBoards()
		if err := boards.RemoveCategory(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed category %q\n", args[0])
		return nil
	},
}

var boardsPinCmd = &cobra.Command{
	Use:   "pin <category> <reference>",
	Short: "Pin a reference under a category",
	Long:  "Pins a reference under the category, creating the category when it does not exist yet.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		boards := loadBoards()
		if err := boards.AddRef(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Pinned to %q\n", args[0])
		return nil
	},
}

var boardsUnpinCmd = &cobra.Command{
	Use:   "unpin <category> <index>",
	Short: "Unpin the reference at an index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("index must be a number: %w", err)
		}
		boards := loadBoards()
		if err := boards.RemoveRef(args[0], idx); err != nil {
			return err
		}
		fmt.Printf("Unpinned %d from %q\n", idx, args[0])
		return nil
	},
}

func loadBoards() *services.BoardService {
	boards := services.NewBoardService(flagStore, logger)
	boards.Load()
	return boards
}

func init() {
	rootCmd.AddCommand(boardsCmd)
	boardsCmd.AddCommand(boardsAddCmd)
	boardsCmd.AddCommand(boardsRemoveCmd)
	boardsCmd.AddCommand(boardsPinCmd)
	boardsCmd.AddCommand(boardsUnpinCmd)
}
