package analysis

import (
	"math"
	"unicode/utf16"

	"github.com/ademuri/streaming-history-tools/internal/history"
)

// MoodScore is one axis of the mood radar.
type MoodScore struct {
	Mood  string `yaml:"mood" json:"mood"`
	Score int    `yaml:"score" json:"score"`
}

type moodCategory struct {
	name string
	key  string
}

var moodCategories = []moodCategory{
	{"Energetic", "energetic"},
	{"Relaxed", "relaxed"},
	{"Happy", "happy"},
	{"Melancholic", "melancholic"},
	{"Intense", "intense"},
	{"Calm", "calm"},
}

// Moods scores each mood category from a hash of the track names.
//
// This is a placeholder with no musical meaning: the same track names always
// give the same radar. Scores are averaged over every event, so plays
// without a track name pull the averages down.
func Moods(events []history.PlayEvent) []MoodScore {
	hashes := make([]int32, len(events))
	named := make([]bool, len(events))
	for i, e := range events {
		if e.TrackName != "" {
			hashes[i] = stringHash(e.TrackName)
			named[i] = true
		}
	}

	scores := make([]MoodScore, 0, len(moodCategories))
	for _, category := range moodCategories {
		var total float64
		for i := range events {
			if named[i] {
				total += trackScore(hashes[i], category.key)
			}
		}
		var avg float64
		if len(events) > 0 {
			avg = total / float64(len(events))
		}
		score := roundHalfUp(avg)
		if score > 100 {
			score = 100
		}
		scores = append(scores, MoodScore{Mood: category.name, Score: score})
	}
	return scores
}

// stringHash is the 31-multiplier hash over UTF-16 code units, wrapping at
// 32 bits.
func stringHash(s string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	return h
}

func trackScore(hash int32, key string) float64 {
	seed := float64(hash) + float64(len(key))
	return math.Mod(math.Abs(math.Sin(seed)*100), 100)
}
