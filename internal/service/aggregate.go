package service

import (
	"math"
	"sort"
	"time"

	"github.com/rlion219-collab/tanzania-political-dashboard/internal/models"
)

const (
	trustHistogramBins = 20
	trustScoreMax      = 100.0
)

// ComputeKPIs derives the four scalar metrics from the filtered set.
// Averages are rounded to two decimal places for display.
func ComputeKPIs(posts []models.Post) models.KPIs {
	kpis := models.KPIs{
		TotalPosts:            len(posts),
		MostFrequentSentiment: modeSentiment(posts, models.SentimentNA),
	}
	if len(posts) == 0 {
		return kpis
	}

	var trustSum, confidenceSum float64
	for i := range posts {
		trustSum += posts[i].TrustScore
		confidenceSum += posts[i].PredictedConfidence
	}
	kpis.AvgTrustScore = round2(trustSum / float64(len(posts)))
	kpis.AvgConfidence = round2(confidenceSum / float64(len(posts)))
	return kpis
}

// SentimentDistribution counts posts per sentiment label.
func SentimentDistribution(posts []models.Post) map[string]int {
	distribution := make(map[string]int)
	for i := range posts {
		distribution[string(posts[i].PredictedSentiment)]++
	}
	return distribution
}

// TrustHistogram buckets trust scores into 20 fixed-width bins over the
// declared [0,100] domain. The last bin includes its upper edge so a score
// of exactly 100 is counted.
func TrustHistogram(posts []models.Post) []models.HistogramBin {
	width := trustScoreMax / trustHistogramBins
	bins := make([]models.HistogramBin, trustHistogramBins)
	for i := range bins {
		bins[i].From = float64(i) * width
		bins[i].To = float64(i+1) * width
	}

	for i := range posts {
		idx := int(posts[i].TrustScore / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= trustHistogramBins {
			idx = trustHistogramBins - 1
		}
		bins[idx].Count++
	}
	return bins
}

// DailyTrend groups the filtered set by calendar day in loc and emits one
// point per day present, sorted ascending. Days with no posts produce no
// point; the chart shows exactly the distinct days of the filtered set.
func DailyTrend(posts []models.Post, loc *time.Location) []models.DailyPoint {
	buckets := make(map[string][]models.Post)
	for i := range posts {
		day := posts[i].Timestamp.In(loc).Format("2006-01-02")
		buckets[day] = append(buckets[day], posts[i])
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	trend := make([]models.DailyPoint, 0, len(days))
	for _, day := range days {
		bucket := buckets[day]
		dominant := modeSentiment(bucket, models.SentimentNeutral)

		var trustSum float64
		for i := range bucket {
			trustSum += bucket[i].TrustScore
		}

		point := models.DailyPoint{
			Day:               day,
			DominantSentiment: dominant,
			AvgTrustScore:     round2(trustSum / float64(len(bucket))),
		}
		if v, ok := dominant.Value(); ok {
			point.SentimentValue = &v
		}
		trend = append(trend, point)
	}
	return trend
}

// TopicSummaries groups the filtered set by topic, in first-encountered
// order. The rows partition the filtered set exactly.
func TopicSummaries(posts []models.Post) []models.TopicSummary {
	groups := make(map[string][]models.Post)
	var order []string
	for i := range posts {
		topic := posts[i].Topic
		if _, ok := groups[topic]; !ok {
			order = append(order, topic)
		}
		groups[topic] = append(groups[topic], posts[i])
	}

	summaries := make([]models.TopicSummary, 0, len(order))
	for _, topic := range order {
		group := groups[topic]

		var trustSum, confidenceSum float64
		for i := range group {
			trustSum += group[i].TrustScore
			confidenceSum += group[i].PredictedConfidence
		}

		summaries = append(summaries, models.TopicSummary{
			Topic:                 topic,
			TotalPosts:            len(group),
			AvgTrustScore:         round2(trustSum / float64(len(group))),
			AvgConfidence:         round2(confidenceSum / float64(len(group))),
			MostFrequentSentiment: modeSentiment(group, models.SentimentNA),
		})
	}
	return summaries
}

// modeSentiment returns the most frequent sentiment label; ties go to the
// first-encountered label. An empty set yields the fallback.
func modeSentiment(posts []models.Post, fallback models.Sentiment) models.Sentiment {
	if len(posts) == 0 {
		return fallback
	}

	counts := make(map[models.Sentiment]int)
	var order []models.Sentiment
	for i := range posts {
		label := posts[i].PredictedSentiment
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}

	mode := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[mode] {
			mode = label
		}
	}
	return mode
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
