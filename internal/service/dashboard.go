package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rlion219-collab/tanzania-political-dashboard/internal/dataset"
	"github.com/rlion219-collab/tanzania-political-dashboard/internal/models"
)

var (
	// ErrEmptyResult signals that the filters matched no posts. The
	// pipeline halts before any aggregation runs.
	ErrEmptyResult = errors.New("no data available based on the current filter settings")

	// ErrPostNotFound signals a lookup for an id outside the filtered set.
	ErrPostNotFound = errors.New("post not found in the filtered set")
)

// Dashboard runs the filter → aggregate pipeline over the loaded record set.
// Every call recomputes from scratch; there is no intermediate state beyond
// the shared read-only store.
type Dashboard struct {
	store  *dataset.Store
	loc    *time.Location
	logger *zap.Logger
}

func NewDashboard(store *dataset.Store, loc *time.Location, logger *zap.Logger) *Dashboard {
	return &Dashboard{store: store, loc: loc, logger: logger}
}

// Topics returns the distinct topic labels of the full set, driving the
// topic multi-select.
func (d *Dashboard) Topics() []string {
	return d.store.Topics()
}

// Filtered applies the filter and returns the matching posts, or
// ErrEmptyResult when nothing matches.
func (d *Dashboard) Filtered(f models.Filter) ([]models.Post, error) {
	filtered := d.store.Filter(f)
	if len(filtered) == 0 {
		d.logger.Info("Filters matched no posts",
			zap.Int("topics", len(f.Topics)),
			zap.Float64("min_trust", f.MinTrust),
			zap.Float64("min_confidence", f.MinConfidence))
		return nil, ErrEmptyResult
	}
	return filtered, nil
}

// Overview computes everything the dashboard renders for one filter setting.
func (d *Dashboard) Overview(f models.Filter) (*models.Overview, error) {
	filtered, err := d.Filtered(f)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(filtered))
	for i := range filtered {
		ids[i] = filtered[i].TweetID
	}

	return &models.Overview{
		KPIs:                  ComputeKPIs(filtered),
		SentimentDistribution: SentimentDistribution(filtered),
		TrustHistogram:        TrustHistogram(filtered),
		DailyTrend:            DailyTrend(filtered, d.loc),
		TopicSummary:          TopicSummaries(filtered),
		PostIDs:               ids,
	}, nil
}

// Explain retrieves a single post by id from the currently filtered set.
// Posts outside the filtered set are not reachable, keeping the lookup
// domain identical to the selector's option list.
func (d *Dashboard) Explain(f models.Filter, tweetID string) (*models.PostDetail, error) {
	filtered, err := d.Filtered(f)
	if err != nil {
		return nil, err
	}

	for i := range filtered {
		if filtered[i].TweetID == tweetID {
			return newPostDetail(&filtered[i]), nil
		}
	}
	return nil, ErrPostNotFound
}

// newPostDetail builds the explainability view. The generic field dump
// excludes the trust explanation, which is rendered on its own.
func newPostDetail(p *models.Post) *models.PostDetail {
	return &models.PostDetail{
		TweetID:             p.TweetID,
		Text:                p.Text,
		PredictedSentiment:  p.PredictedSentiment,
		PredictedConfidence: p.PredictedConfidence,
		TrustScore:          p.TrustScore,
		TrustExplanation:    p.TrustExplanation,
		Details: map[string]any{
			"tweet_id":             p.TweetID,
			"timestamp":            p.Timestamp,
			"topic":                p.Topic,
			"text":                 p.Text,
			"predicted_sentiment":  p.PredictedSentiment,
			"predicted_confidence": p.PredictedConfidence,
			"trust_score":          p.TrustScore,
		},
	}
}
