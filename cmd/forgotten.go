package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
	"github.com/ademuri/streaming-history-tools/internal/history"
)

var (
	minArtistPlays       int
	minAlbumPlays        int
	resultsPerBand       int
	sortBy               string
	lastListenAfterStr   string
	lastListenBeforeStr  string
	firstListenAfterStr  string
	firstListenBeforeStr string
)

var forgottenCmd = &cobra.Command{
	Use:   "forgotten <file>",
	Short: "Surfaces artists and albums heavily listened to in the past but not recently",
	Long: `Identifies music that has fallen out of rotation based on dormancy and historical
listen counts. Dormancy is measured from the last play in the export, and durations
like '90d' count back from it too.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printForgotten(os.Stdout, args[0], forgottenFlags())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(forgottenCmd)

	forgottenCmd.Flags().IntVar(&minArtistPlays, "min-artist", 10, "Minimum plays for artist inclusion")
	forgottenCmd.Flags().IntVar(&minAlbumPlays, "min-album", 5, "Minimum plays for album inclusion")
	forgottenCmd.Flags().IntVar(&resultsPerBand, "results", 10, "Max results shown per interest band")
	forgottenCmd.Flags().StringVar(&sortBy, "sort", "dormancy", "Sort order: 'dormancy' or 'listens'")
	forgottenCmd.Flags().StringVar(&lastListenAfterStr, "last_listen_after", "", "Only include entities with last listen after this date (YYYY-MM-DD or duration like 365d)")
	forgottenCmd.Flags().StringVar(&lastListenBeforeStr, "last_listen_before", "90d", "Only include entities with last listen before this date (YYYY-MM-DD or duration like 90d)")
	forgottenCmd.Flags().StringVar(&firstListenAfterStr, "first_listen_after", "", "Only include entities with first listen after this date (YYYY-MM-DD)")
	forgottenCmd.Flags().StringVar(&firstListenBeforeStr, "first_listen_before", "", "Only include entities with first listen before this date (YYYY-MM-DD)")
}

// ForgottenFlags holds the unparsed bounds, which may depend on the export.
type ForgottenFlags struct {
	MinArtistPlays    int
	MinAlbumPlays     int
	ResultsPerBand    int
	SortBy            string
	LastListenAfter   string
	LastListenBefore  string
	FirstListenAfter  string
	FirstListenBefore string
}

func forgottenFlags() ForgottenFlags {
	return ForgottenFlags{
		MinArtistPlays:    minArtistPlays,
		MinAlbumPlays:     minAlbumPlays,
		ResultsPerBand:    resultsPerBand,
		SortBy:            sortBy,
		LastListenAfter:   lastListenAfterStr,
		LastListenBefore:  lastListenBeforeStr,
		FirstListenAfter:  firstListenAfterStr,
		FirstListenBefore: firstListenBeforeStr,
	}
}

// parseListenBound parses a date, or a number of days before ref like "90d".
// An empty string is no bound.
func parseListenBound(name, s string, ref time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("invalid %s: %q", name, s)
		}
		return ref.AddDate(0, 0, -n), nil
	}
	pd, err := parseSingleDatestring(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return pd.Date, nil
}

func (f ForgottenFlags) config(ref time.Time) (config analysis.ForgottenConfig, err error) {
	if f.SortBy != "dormancy" && f.SortBy != "listens" {
		err = fmt.Errorf("invalid sort: %q", f.SortBy)
		return
	}
	config = analysis.ForgottenConfig{
		MinArtistPlays: f.MinArtistPlays,
		MinAlbumPlays:  f.MinAlbumPlays,
		ResultsPerBand: f.ResultsPerBand,
		SortBy:         f.SortBy,
	}
	if config.LastListenAfter, err = parseListenBound("last_listen_after", f.LastListenAfter, ref); err != nil {
		return
	}
	if config.LastListenBefore, err = parseListenBound("last_listen_before", f.LastListenBefore, ref); err != nil {
		return
	}
	if config.FirstListenAfter, err = parseListenBound("first_listen_after", f.FirstListenAfter, ref); err != nil {
		return
	}
	config.FirstListenBefore, err = parseListenBound("first_listen_before", f.FirstListenBefore, ref)
	return
}

func printForgotten(out io.Writer, path string, flags ForgottenFlags) error {
	batch, err := history.IngestFile(path)
	if err != nil {
		return describeIngestError(path, err)
	}

	now := analysis.LatestListen(batch.Events)
	config, err := flags.config(now)
	if err != nil {
		return err
	}

	artists := analysis.ForgottenArtists(batch.Events, config, now)
	fmt.Fprintln(out, "## Forgotten Artists")
	for _, band := range analysis.Bands {
		printArtistBand(out, artists, band)
	}
	fmt.Fprintln(out)

	albums := analysis.ForgottenAlbums(batch.Events, config, now)
	fmt.Fprintln(out, "## Forgotten Albums")
	for _, band := range analysis.Bands {
		printAlbumBand(out, albums, band)
	}

	return nil
}

func printArtistBand(out io.Writer, results map[string][]analysis.ForgottenArtist, band string) {
	items, ok := results[band]
	if !ok || len(items) == 0 {
		return
	}

	fmt.Fprintf(out, "\n### %s Interest (%d+ plays)\n", band, analysis.GetThreshold(band, true))

	var a Analysis
	a.results = [][]string{{"Artist", "Plays", "Last Listen", "Days Since"}}
	for _, artist := range items {
		a.results = append(a.results, []string{
			artist.Artist,
			strconv.FormatInt(artist.TotalPlays, 10),
			artist.LastListen.Format("2006-01-02"),
			strconv.Itoa(artist.DaysSinceLast),
		})
	}
	fmt.Fprint(out, a)
}

func printAlbumBand(out io.Writer, results map[string][]analysis.ForgottenAlbum, band string) {
	items, ok := results[band]
	if !ok || len(items) == 0 {
		return
	}

	fmt.Fprintf(out, "\n### %s Interest (%d+ plays)\n", band, analysis.GetThreshold(band, false))

	var a Analysis
	a.results = [][]string{{"Artist", "Album", "Plays", "Last Listen", "Days Since"}}
	for _, album := range items {
		a.results = append(a.results, []string{
			album.Artist,
			album.Album,
			strconv.FormatInt(album.TotalPlays, 10),
			album.LastListen.Format("2006-01-02"),
			strconv.Itoa(album.DaysSinceLast),
		})
	}
	fmt.Fprint(out, a)
}
