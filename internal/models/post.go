package models

import "time"

// Sentiment is the predicted sentiment label attached to a post. The label
// set in the data is open; only the three known labels carry a trend value.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// SentimentNA is the sentinel reported when a record set has no posts to
// take a mode over.
const SentimentNA Sentiment = "N/A"

var sentimentValues = map[Sentiment]int{
	SentimentPositive: 1,
	SentimentNeutral:  0,
	SentimentNegative: -1,
}

// Value returns the signed trend value for the label (1=positive, 0=neutral,
// -1=negative). The second return is false for labels outside the known set;
// such labels produce a missing point on the trend chart.
func (s Sentiment) Value() (int, bool) {
	v, ok := sentimentValues[s]
	return v, ok
}

// Post represents one annotated social-media post from the source CSV.
// The record set is immutable after load; posts are never mutated or deleted.
type Post struct {
	TweetID             string    `json:"tweet_id"`
	Timestamp           time.Time `json:"timestamp"`
	Topic               string    `json:"topic"`
	Text                string    `json:"text"`
	PredictedSentiment  Sentiment `json:"predicted_sentiment"`
	PredictedConfidence float64   `json:"predicted_confidence"`
	TrustScore          float64   `json:"trust_score"`
	TrustExplanation    string    `json:"trust_explanation"`
}
