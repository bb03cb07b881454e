package handler

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rlion219-collab/tanzania-political-dashboard/internal/service"
)

type ExportHandler interface {
	ExportCSV(c *gin.Context)
	ExportJSON(c *gin.Context)
}

type exportHandler struct {
	dashboard *service.Dashboard
	logger    *zap.Logger
}

func NewExportHandler(dashboard *service.Dashboard, logger *zap.Logger) ExportHandler {
	return &exportHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// ExportCSV streams the filtered set as CSV, using the same column layout
// as the source file.
func (h *exportHandler) ExportCSV(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts, err := h.dashboard.Filtered(filter)
	if err != nil {
		if errors.Is(err, service.ErrEmptyResult) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to export CSV", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=posts.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"tweet_id", "timestamp", "topic", "text", "predicted_sentiment", "predicted_confidence", "trust_score", "trust_explanation"})
	for i := range posts {
		writer.Write([]string{
			posts[i].TweetID,
			posts[i].Timestamp.Format("2006-01-02 15:04:05"),
			posts[i].Topic,
			posts[i].Text,
			string(posts[i].PredictedSentiment),
			strconv.FormatFloat(posts[i].PredictedConfidence, 'f', -1, 64),
			strconv.FormatFloat(posts[i].TrustScore, 'f', -1, 64),
			posts[i].TrustExplanation,
		})
	}
}

// ExportJSON streams the filtered set as indented JSON.
func (h *exportHandler) ExportJSON(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts, err := h.dashboard.Filtered(filter)
	if err != nil {
		if errors.Is(err, service.ErrEmptyResult) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to export JSON", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	c.Header("Content-Type", "application/json")
	c.Header("Content-Disposition", "attachment; filename=posts.json")

	encoder := json.NewEncoder(c.Writer)
	encoder.SetIndent("", "  ")
	encoder.Encode(posts)
}
