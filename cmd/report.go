package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var reportFormat string
var reportCmd = &cobra.Command{
	Use:   "report <file> [from] [to (optional)]",
	Short: "Writes every view of a streaming history export as YAML or JSON",
	Long:  `Writes the complete set of views, for use by other tools. The optional date or date range limits the daily trend.`,
	Args:  cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport(os.Stdout, args[0], args[1:], viper.GetInt("number"), reportFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportFormat, "format", "yaml", "Output format: yaml or json")
}

func runReport(out io.Writer, path string, dateArgs []string, numToReturn int, format string) error {
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}
	start, end, err := windowFromArgs(dateArgs)
	if err != nil {
		return err
	}

	b, err := loadBundle(path, numToReturn)
	if err != nil {
		return fmt.Errorf("analyzing data: %w", err)
	}
	b = b.Window(start, end)

	if format == "json" {
		encoded, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(b); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}
