package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rlion219-collab/tanzania-political-dashboard/internal/models"
)

// requiredColumns is the input contract for the pre-computed CSV. The file
// is produced by an offline scoring job; columns may appear in any order.
var requiredColumns = []string{
	"tweet_id",
	"timestamp",
	"topic",
	"text",
	"predicted_sentiment",
	"predicted_confidence",
	"trust_score",
	"trust_explanation",
}

// timestampLayouts are the accepted timestamp formats, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseError reports a cell that could not be converted while loading the
// dataset. Row numbering includes the header, matching what an editor shows.
type ParseError struct {
	Row    int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the annotated posts CSV at path, preserving file order.
// Timestamps are interpreted in loc when the format carries no offset.
func Load(path string, loc *time.Location) ([]models.Post, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	posts, err := parse(file, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	return posts, nil
}

func parse(r io.Reader, loc *time.Location) ([]models.Post, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row+1, err)
		}
		row++

		post, err := parseRow(record, columns, row, loc)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

// columnIndex maps each required column name to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}

	columns := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		pos, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
		columns[name] = pos
	}
	return columns, nil
}

func parseRow(record []string, columns map[string]int, row int, loc *time.Location) (models.Post, error) {
	cell := func(name string) string { return record[columns[name]] }

	timestamp, err := parseTimestamp(cell("timestamp"), loc)
	if err != nil {
		return models.Post{}, &ParseError{Row: row, Column: "timestamp", Err: err}
	}

	confidence, err := strconv.ParseFloat(cell("predicted_confidence"), 64)
	if err != nil {
		return models.Post{}, &ParseError{Row: row, Column: "predicted_confidence", Err: err}
	}

	trustScore, err := strconv.ParseFloat(cell("trust_score"), 64)
	if err != nil {
		return models.Post{}, &ParseError{Row: row, Column: "trust_score", Err: err}
	}

	return models.Post{
		TweetID:             cell("tweet_id"),
		Timestamp:           timestamp,
		Topic:               cell("topic"),
		Text:                cell("text"),
		PredictedSentiment:  models.Sentiment(cell("predicted_sentiment")),
		PredictedConfidence: confidence,
		TrustScore:          trustScore,
		TrustExplanation:    cell("trust_explanation"),
	}, nil
}

func parseTimestamp(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}
