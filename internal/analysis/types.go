package analysis

// Bundle is the full set of dashboard views derived from one export.
type Bundle struct {
	TotalHours        int `yaml:"total_hours" json:"totalHours"`
	UniqueTrackCount  int `yaml:"unique_track_count" json:"uniqueTrackCount"`
	UniqueArtistCount int `yaml:"unique_artist_count" json:"uniqueArtistCount"`
	UniqueDayCount    int `yaml:"unique_day_count" json:"uniqueDayCount"`

	TopTracks  []RankedEntry      `yaml:"top_tracks" json:"topTracks"`
	TopArtists []RankedEntry      `yaml:"top_artists" json:"topArtists"`
	DailyTrend []DailyListening   `yaml:"daily_trend" json:"dailyTrend"`
	Sessions   []ListeningSession `yaml:"sessions" json:"sessions"`
	Heatmap    []HeatmapCell      `yaml:"heatmap" json:"heatmap"`
}

// Summary holds the headline counters.
type Summary struct {
	TotalHours        int
	UniqueTrackCount  int
	UniqueArtistCount int
	UniqueDayCount    int
}

type RankedEntry struct {
	Name  string `yaml:"name" json:"name"`
	Plays int64  `yaml:"plays" json:"plays"`
}

type DailyListening struct {
	Date    string  `yaml:"date" json:"date"`
	Minutes float64 `yaml:"minutes" json:"minutes"`
}

// ListeningSession is a single play plotted by hour. It is not merged with
// neighbouring plays.
type ListeningSession struct {
	Hour     int     `yaml:"hour" json:"hour"`
	Duration float64 `yaml:"duration" json:"duration"`
}

type HeatmapCell struct {
	DayOfWeek int     `yaml:"day_of_week" json:"dayOfWeek"`
	Hour      int     `yaml:"hour" json:"hour"`
	Intensity float64 `yaml:"intensity" json:"intensity"`
}

// Config controls the aggregation.
type Config struct {
	// Number of ranked entries to keep. Zero or less keeps all of them.
	TopN int
}

const DefaultTopN = 10

func DefaultConfig() Config {
	return Config{TopN: DefaultTopN}
}
