package models

// KPIs represents the scalar metrics shown at the top of the dashboard.
type KPIs struct {
	TotalPosts            int       `json:"total_posts"`
	AvgTrustScore         float64   `json:"avg_trust_score"`
	AvgConfidence         float64   `json:"avg_sentiment_confidence"`
	MostFrequentSentiment Sentiment `json:"most_frequent_sentiment"`
}

// DailyPoint is one day of the sentiment trend chart. SentimentValue is nil
// when the dominant label is outside the known sentiment set.
type DailyPoint struct {
	Day               string    `json:"day"`
	DominantSentiment Sentiment `json:"dominant_sentiment"`
	SentimentValue    *int      `json:"sentiment_value"`
	AvgTrustScore     float64   `json:"avg_trust_score"`
}

// TopicSummary is one row of the topic insights table.
type TopicSummary struct {
	Topic                 string    `json:"topic"`
	TotalPosts            int       `json:"total_posts"`
	AvgTrustScore         float64   `json:"avg_trust_score"`
	AvgConfidence         float64   `json:"avg_sentiment_confidence"`
	MostFrequentSentiment Sentiment `json:"most_frequent_sentiment"`
}

// HistogramBin is one bucket of the trust score distribution. From is
// inclusive, To exclusive, except the last bin which includes its upper edge.
type HistogramBin struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// Overview carries everything the dashboard renders for one filter setting.
// PostIDs doubles as the option list for the explainability selector, so the
// selector domain and the lookup domain are always identical.
type Overview struct {
	KPIs                  KPIs           `json:"kpis"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
	TrustHistogram        []HistogramBin `json:"trust_score_histogram"`
	DailyTrend            []DailyPoint   `json:"daily_sentiment_trend"`
	TopicSummary          []TopicSummary `json:"topic_insights"`
	PostIDs               []string       `json:"post_ids"`
}

// PostDetail is the explainability view for a single post. Details holds
// every field except the trust explanation, which is shown separately.
type PostDetail struct {
	TweetID             string         `json:"tweet_id"`
	Text                string         `json:"text"`
	PredictedSentiment  Sentiment      `json:"predicted_sentiment"`
	PredictedConfidence float64        `json:"predicted_confidence"`
	TrustScore          float64        `json:"trust_score"`
	TrustExplanation    string         `json:"trust_explanation"`
	Details             map[string]any `json:"details"`
}
