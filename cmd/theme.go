package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/streaming-history-tools/internal/settings"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Shows or changes the saved theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	Run: func(cmd *cobra.Command, args []string) {
		err := runTheme(os.Stdout, viper.GetString("settings"), args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)

	var settingsPath string
	themeCmd.Flags().StringVar(&settingsPath, "settings", "", "settings file (default is $HOME/.streaming-history-tools/settings.yaml)")
	viper.BindPFlag("settings", themeCmd.Flags().Lookup("settings"))
}

func runTheme(out io.Writer, settingsPath string, args []string) error {
	if settingsPath == "" {
		var err error
		settingsPath, err = settings.DefaultPath()
		if err != nil {
			return err
		}
	}

	s, err := settings.Open(settingsPath)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Fprintln(out, s.Theme())
		return nil
	}

	switch args[0] {
	case "toggle":
		if _, err := s.Toggle(); err != nil {
			return err
		}
	default:
		if err := s.SetTheme(settings.Theme(args[0])); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, s.Theme())
	return nil
}
