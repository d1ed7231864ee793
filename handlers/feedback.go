package handlers

import (
	"net/http"
	"strconv"

	"tolet/models"
	"tolet/services/feedback"
	"tolet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedbackHandler exposes the feedback endpoints.
type FeedbackHandler struct {
	Service feedback.FeedbackService
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedback.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: svc}
}

// SubmitFeedbackHandler handles POST /api/feedback.
func (h *FeedbackHandler) SubmitFeedbackHandler(c *gin.Context) {
	var input models.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.GetLogger().Warn("Invalid feedback submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	created, err := h.Service.Submit(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Feedback submitted successfully",
		"feedback": created.PublicView(),
	})
}

// GetPublicFeedbackHandler handles GET /api/feedback/public.
func (h *FeedbackHandler) GetPublicFeedbackHandler(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	feedbacks, err := h.Service.ListPublic(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks})
}

// GetAllFeedbackHandler handles GET /api/feedback/all.
func (h *FeedbackHandler) GetAllFeedbackHandler(c *gin.Context) {
	page, limit := 1, 10
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	result, err := h.Service.ListAll(c.Query("status"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedbacks": result.Feedbacks,
		"pagination": gin.H{
			"current": result.Page,
			"pages":   result.Pages,
			"total":   result.Total,
		},
	})
}

// UpdateFeedbackStatusHandler handles PUT /api/feedback/:id/status.
func (h *FeedbackHandler) UpdateFeedbackStatusHandler(c *gin.Context) {
	var req struct {
		Status   *string `json:"status"`
		IsPublic *bool   `json:"isPublic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Warn("Invalid feedback status update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updated, err := h.Service.UpdateStatus(c.Param("id"), req.Status, req.IsPublic)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Feedback status updated successfully",
		"feedback": updated,
	})
}
