package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rlion219-collab/tanzania-political-dashboard/internal/models"
)

const sampleCSV = `tweet_id,timestamp,topic,text,predicted_sentiment,predicted_confidence,trust_score,trust_explanation
t1,2024-03-01 08:30:00,Economy,Bei ya mafuta imepanda,negative,0.91,42.5,Low source credibility
t2,2024-03-01 12:00:00,Economy,Serikali yaahidi punguzo,positive,0.74,68.0,Verified account
t3,2024-03-02 09:15:00,Elections,Kampeni zaanza rasmi,neutral,0.55,80.0,Consistent with news reports
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	posts, err := Load(writeCSV(t, sampleCSV), time.UTC)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}

	first := posts[0]
	if first.TweetID != "t1" {
		t.Errorf("unexpected tweet id: %q", first.TweetID)
	}
	want := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	if !first.Timestamp.Equal(want) {
		t.Errorf("unexpected timestamp: %v", first.Timestamp)
	}
	if first.Topic != "Economy" {
		t.Errorf("unexpected topic: %q", first.Topic)
	}
	if first.PredictedSentiment != models.SentimentNegative {
		t.Errorf("unexpected sentiment: %q", first.PredictedSentiment)
	}
	if first.PredictedConfidence != 0.91 {
		t.Errorf("unexpected confidence: %v", first.PredictedConfidence)
	}
	if first.TrustScore != 42.5 {
		t.Errorf("unexpected trust score: %v", first.TrustScore)
	}
	if first.TrustExplanation != "Low source credibility" {
		t.Errorf("unexpected explanation: %q", first.TrustExplanation)
	}

	// File order must be preserved.
	if posts[1].TweetID != "t2" || posts[2].TweetID != "t3" {
		t.Errorf("posts out of order: %q, %q", posts[1].TweetID, posts[2].TweetID)
	}
}

func TestLoadColumnOrderIndependent(t *testing.T) {
	shuffled := `trust_score,tweet_id,text,timestamp,trust_explanation,topic,predicted_confidence,predicted_sentiment
55.0,t9,Habari mpya,2024-04-10,Why not,Security,0.8,positive
`
	posts, err := Load(writeCSV(t, shuffled), time.UTC)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if posts[0].TweetID != "t9" || posts[0].TrustScore != 55.0 || posts[0].Topic != "Security" {
		t.Errorf("columns mapped incorrectly: %+v", posts[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), time.UTC)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	truncated := `tweet_id,timestamp,topic,text,predicted_sentiment,predicted_confidence,trust_score
t1,2024-03-01,Economy,Habari,neutral,0.5,50
`
	if _, err := Load(writeCSV(t, truncated), time.UTC); err == nil {
		t.Fatal("expected error for missing column")
	}
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		column string
	}{
		{
			name:   "bad timestamp",
			row:    "t1,not-a-time,Economy,Habari,neutral,0.5,50,ok",
			column: "timestamp",
		},
		{
			name:   "bad confidence",
			row:    "t1,2024-03-01,Economy,Habari,neutral,high,50,ok",
			column: "predicted_confidence",
		},
		{
			name:   "bad trust score",
			row:    "t1,2024-03-01,Economy,Habari,neutral,0.5,lots,ok",
			column: "trust_score",
		},
	}

	header := "tweet_id,timestamp,topic,text,predicted_sentiment,predicted_confidence,trust_score,trust_explanation\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCSV(t, header+tt.row+"\n"), time.UTC)
			if err == nil {
				t.Fatal("expected parse error")
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if parseErr.Column != tt.column {
				t.Errorf("expected column %q, got %q", tt.column, parseErr.Column)
			}
			if parseErr.Row != 2 {
				t.Errorf("expected row 2, got %d", parseErr.Row)
			}
		})
	}
}

func TestLoadTimestampLocation(t *testing.T) {
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	posts, err := Load(writeCSV(t, sampleCSV), nairobi)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if posts[0].Timestamp.Location() != nairobi {
		t.Errorf("timestamp not parsed in configured location: %v", posts[0].Timestamp)
	}
}
