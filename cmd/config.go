package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"haven/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	Long:  "Prints the resolved configuration and where it lives.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		target := appConfig.Countdown.TargetTime()

		fmt.Println()
		fmt.Printf("  Config file:  %s\n", path)
		fmt.Printf("  State dir:    %s\n", config.GetStatePath(appConfig))
		fmt.Println()
		fmt.Printf("  Countdown target:  %s\n", target.Format(time.RFC3339))
		if time.Now().After(target) {
			fmt.Println("  Gate:              open (target has passed)")
		} else {
			fmt.Printf("  Gate:              closed, %s remaining\n", time.Until(target).Round(time.Second))
		}
		fmt.Println()
		bypass := "disabled"
		if appConfig.Bypass.Secret != "" {
			bypass = fmt.Sprintf("enabled (%d activations)", appConfig.Bypass.RequiredActivations)
		}
		fmt.Printf("  Bypass:            %s\n", bypass)
		fmt.Printf("  Garden view:       %v\n", appConfig.Views.GardenEnabled)
		fmt.Printf("  Zen day window:    %02d:00 - %02d:00\n", appConfig.Zen.DayStartHour, appConfig.Zen.DayEndHour)
		fmt.Printf("  Zen exits:         %02d:00 evening / %02d:00 morning\n",
			appConfig.Zen.EveningExitHour, appConfig.Zen.MorningExitHour)
		fmt.Printf("  Notifications:     %v\n", appConfig.Notifications.Enabled)
		fmt.Printf("  Letters:           %d\n", len(appConfig.Letters))
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
