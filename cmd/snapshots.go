package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/streaming-history-tools/internal/store"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Lists snapshots saved with 'export'",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := listSnapshots(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show [snapshot id]",
	Short: "Prints a snapshot saved with 'export'",
	Long:  `Prints the given snapshot, or the most recent one if no id is given.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := showSnapshot(os.Stdout, viper.GetString("database"), args, viper.GetInt("number"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(showCmd)
}

func openExistingStore(dbPath string) (*store.Store, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("Database %s doesn't exist - run export first.", dbPath)
	}
	return store.New(dbPath)
}

func listSnapshots(out io.Writer, dbPath string) error {
	db, err := openExistingStore(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := db.ListSnapshots()
	if err != nil {
		return err
	}

	var a Analysis
	a.results = [][]string{{"ID", "Source", "Created"}}
	for _, s := range snapshots {
		a.results = append(a.results, []string{fmt.Sprint(s.ID), s.Source, s.Created.Format("2006-01-02 15:04")})
	}
	a.summary = fmt.Sprintf("%d snapshots in %s\n", len(snapshots), dbPath)
	fmt.Fprintln(out, a)
	return nil
}

func showSnapshot(out io.Writer, dbPath string, args []string, numToReturn int) error {
	db, err := openExistingStore(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	var id int64
	if len(args) == 1 {
		id, err = strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("Invalid snapshot id %q", args[0])
		}
	} else {
		latest, ok, err := db.LatestSnapshot()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("No snapshots in %s - run export first.", dbPath)
		}
		id = latest.ID
	}

	b, err := db.LoadBundle(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Snapshot %d\n\n", id)
	return bundleViews(out, b, numToReturn)
}
