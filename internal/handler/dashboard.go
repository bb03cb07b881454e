package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rlion219-collab/tanzania-political-dashboard/internal/models"
	"github.com/rlion219-collab/tanzania-political-dashboard/internal/service"
)

type DashboardHandler interface {
	GetTopics(c *gin.Context)
	GetOverview(c *gin.Context)
	GetPost(c *gin.Context)
}

type dashboardHandler struct {
	dashboard *service.Dashboard
	logger    *zap.Logger
}

func NewDashboardHandler(dashboard *service.Dashboard, logger *zap.Logger) DashboardHandler {
	return &dashboardHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// parseFilter reads the three filter inputs from query parameters:
// - topics: comma-separated topic labels (empty selects all topics)
// - min_trust: integer in [0,100], default 0
// - min_confidence: real in [0,1], default 0
func parseFilter(c *gin.Context) (models.Filter, error) {
	var topics []string
	if raw := c.Query("topics"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, t)
			}
		}
	}

	minTrust := 0
	if raw := c.Query("min_trust"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > 100 {
			return models.Filter{}, fmt.Errorf("min_trust must be an integer between 0 and 100, got %q", raw)
		}
		minTrust = v
	}

	minConfidence := 0.0
	if raw := c.Query("min_confidence"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 1 {
			return models.Filter{}, fmt.Errorf("min_confidence must be a number between 0 and 1, got %q", raw)
		}
		minConfidence = v
	}

	return models.NewFilter(topics, float64(minTrust), minConfidence), nil
}

// GetTopics handles GET /api/v1/topics
func (h *dashboardHandler) GetTopics(c *gin.Context) {
	topics := h.dashboard.Topics()
	c.JSON(http.StatusOK, gin.H{
		"topics": topics,
		"total":  len(topics),
	})
}

// GetOverview handles GET /api/v1/dashboard
func (h *dashboardHandler) GetOverview(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	overview, err := h.dashboard.Overview(filter)
	if err != nil {
		if errors.Is(err, service.ErrEmptyResult) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to compute dashboard overview", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute dashboard"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetPost handles GET /api/v1/posts/:id — the explainability lookup. The id
// must belong to the currently filtered set.
func (h *dashboardHandler) GetPost(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.dashboard.Explain(filter, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEmptyResult) || errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to look up post", zap.String("tweet_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up post"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
