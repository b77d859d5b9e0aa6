package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"haven/internal/domain"
	"haven/internal/services"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace reminders from a JSON file",
	Long: `Replaces the reminder list with the contents of a JSON file. The file
must hold an array of strings; anything else is rejected and the current
reminders are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reminders := services.NewReminderService(flagStore, logger, timeNow)
		reminders.Load()

		if err := reminders.Import(args[0]); err != nil {
			if errors.Is(err, domain.ErrInvalidImport) {
				return fmt.Errorf("%s does not hold a JSON array of strings", args[0])
			}
			return err
		}
		fmt.Printf("Imported %d reminders from %s\n", len(reminders.All()), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
