package history

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/ademuri/streaming-history-tools/internal/logging"
)

// Batch is the result of ingesting one export file.
type Batch struct {
	Events  []PlayEvent
	Skipped []MalformedRecordError
}

// record covers both Spotify export flavours. Pointers distinguish absent
// fields from zero values.
type record struct {
	TS        *string `json:"ts"`
	EndTime   *string `json:"endTime"`
	Timestamp *string `json:"timestamp"`

	MasterTrackName  *string `json:"master_metadata_track_name"`
	MasterArtistName *string `json:"master_metadata_album_artist_name"`
	MasterAlbumName  *string `json:"master_metadata_album_name"`
	TrackName        *string `json:"trackName"`
	ArtistName       *string `json:"artistName"`

	MsPlayedSnake *float64 `json:"ms_played"`
	MsPlayedCamel *float64 `json:"msPlayed"`
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IngestFile reads and ingests the export at path.
func IngestFile(path string) (*Batch, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Ingest(raw)
}

// Decode reads all of r and ingests it.
func Decode(r io.Reader) (*Batch, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading streaming history: %w", err)
	}
	return Ingest(raw)
}

// Ingest decodes raw as a JSON array of play events. It returns a
// *DecodeError for text that isn't valid JSON and a *ShapeError when the
// top-level value isn't an array. Elements without a usable timestamp are
// skipped and reported in Batch.Skipped.
func Ingest(raw []byte) (*Batch, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		return nil, &DecodeError{Err: fmt.Errorf("input is not valid UTF-8")}
	}
	if !json.Valid(raw) {
		var v interface{}
		err := json.Unmarshal(raw, &v)
		if err == nil {
			err = fmt.Errorf("invalid JSON")
		}
		return nil, &DecodeError{Err: err}
	}
	if kind := jsonKind(raw); kind != "array" {
		return nil, &ShapeError{Kind: kind}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, &DecodeError{Err: err}
	}

	batch := &Batch{
		Events:  make([]PlayEvent, 0, len(elements)),
		Skipped: []MalformedRecordError{},
	}
	for i, element := range elements {
		event, err := decodeRecord(element)
		if err != nil {
			skipped := MalformedRecordError{Index: i, Reason: err.Error()}
			batch.Skipped = append(batch.Skipped, skipped)
			logging.Warn().Int("index", i).Str("reason", skipped.Reason).Msg("Skipping malformed record")
			continue
		}
		batch.Events = append(batch.Events, event)
	}

	logging.Info().
		Int("events", len(batch.Events)).
		Int("skipped", len(batch.Skipped)).
		Msg("Ingested streaming history")
	return batch, nil
}

func decodeRecord(element json.RawMessage) (PlayEvent, error) {
	if kind := jsonKind(element); kind != "object" {
		return PlayEvent{}, fmt.Errorf("expected object, got %s", kind)
	}

	var r record
	if err := json.Unmarshal(element, &r); err != nil {
		return PlayEvent{}, fmt.Errorf("decoding fields: %w", err)
	}

	rawTS := firstNonEmpty(r.TS, r.EndTime, r.Timestamp)
	if rawTS == "" {
		return PlayEvent{}, fmt.Errorf("missing timestamp")
	}
	ts, err := ParseTimestamp(rawTS)
	if err != nil {
		return PlayEvent{}, err
	}

	var ms float64
	switch {
	case r.MsPlayedSnake != nil:
		ms = *r.MsPlayedSnake
	case r.MsPlayedCamel != nil:
		ms = *r.MsPlayedCamel
	}
	if ms < 0 {
		return PlayEvent{}, fmt.Errorf("negative ms_played %v", ms)
	}

	return PlayEvent{
		Timestamp:    ts,
		RawTimestamp: rawTS,
		TrackName:    firstNonEmpty(r.MasterTrackName, r.TrackName),
		ArtistName:   firstNonEmpty(r.MasterArtistName, r.ArtistName),
		AlbumName:    firstNonEmpty(r.MasterAlbumName),
		MsPlayed:     ms,
	}, nil
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

// jsonKind reports the type of an already validated JSON value from its
// first significant byte.
func jsonKind(raw []byte) string {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return "empty"
	}
	switch trimmed[0] {
	case '[':
		return "array"
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
