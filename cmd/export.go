package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"haven/internal/services"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export reminders to a dated JSON file",
	Long:  "Writes the current reminders to reminders-YYYY-MM-DD.json in the chosen directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := exportDir
		if dir == "" {
			var err error
			dir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}
		}

		reminders := services.NewReminderService(flagStore, logger, timeNow)
		reminders.Load()

		path, err := reminders.Export(dir)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d reminders to %s\n", len(reminders.All()), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Directory to write the export into (default: current directory)")
}
