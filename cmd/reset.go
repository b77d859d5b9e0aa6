package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"haven/internal/config"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved state (moods, tasks, reminders, garden)",
	Long: `Permanently deletes the Haven state directory, removing every mood,
task, reminder, board and garden note. The config file is kept.
This cannot be undone. Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetStatePath(appConfig)

		if !resetForce {
			fmt.Printf("This will permanently delete: %s\n", path)
			fmt.Print("Are you sure? Type 'yes' to confirm: ")
			reader := bufio.NewReader(os.Stdin)
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to delete state: %w", err)
		}

		fmt.Println("State deleted. Fresh start.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
}
