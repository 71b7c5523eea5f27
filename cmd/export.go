package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/streaming-history-tools/internal/logging"
	"github.com/ademuri/streaming-history-tools/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Saves the views of a streaming history export to SQLite",
	Long: `Adds a snapshot of every view to the database given by --database. Only the
derived views are stored. Use 'snapshots' to list them and 'show' to print one.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := exportSnapshot(os.Stdout, args[0], viper.GetString("database"), viper.GetInt("number"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func exportSnapshot(out io.Writer, path string, dbPath string, numToReturn int) error {
	b, err := loadBundle(path, numToReturn)
	if err != nil {
		return err
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	id, err := db.SaveBundle(filepath.Base(path), b)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	logging.Info().Int64("snapshot", id).Str("database", dbPath).Msg("Saved snapshot")
	fmt.Fprintf(out, "Saved snapshot %d to %s\n", id, dbPath)
	return nil
}
