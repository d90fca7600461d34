package handlers

import (
	"errors"
	"net/http"

	"joino/middleware"
	"joino/models"
	"joino/services/feed"
	"joino/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler serves the assembled feed and its supporting endpoints.
type FeedHandler struct {
	Service feed.FeedService
	Logger  *zap.Logger
}

func NewFeedHandler(service feed.FeedService, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{Service: service, Logger: logger}
}

// GetFeedHandler handles GET /api/feed.
//
// Query parameters:
//
//	filter  "near_me" for the proximity view, otherwise a tag name;
//	        empty or "all" for the default view.
//	q       optional title/location search.
//	refresh "true" on pull-to-refresh, bumping the rotation counter.
func (h *FeedHandler) GetFeedHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user identity")
		return
	}

	filter := parseFilter(c.Query("filter"))
	filter.Search = c.Query("q")
	refresh := c.Query("refresh") == "true"

	page, err := h.Service.GetFeed(c.Request.Context(), userID, filter, refresh)
	if err != nil {
		if errors.Is(err, feed.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Profile not found", "no profile exists for this user")
			return
		}
		h.Logger.Error("failed to assemble feed", zap.String("user", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to assemble feed", err.Error())
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetOccurrencesHandler handles GET /api/events/:id/occurrences, used by
// the "My events" screen to show upcoming dates of a recurring event.
func (h *FeedHandler) GetOccurrencesHandler(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing event id", "")
		return
	}

	occurrences, err := h.Service.GetOccurrences(c.Request.Context(), eventID)
	if err != nil {
		h.Logger.Error("failed to expand event", zap.String("event", eventID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to expand event", err.Error())
		return
	}
	if occurrences == nil {
		utils.JSONError(c, http.StatusNotFound, "Event not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"occurrences": occurrences})
}

// GetTagsHandler handles GET /api/tags, backing the tags bar.
func (h *FeedHandler) GetTagsHandler(c *gin.Context) {
	tags, err := h.Service.ListTags(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list tags", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list tags", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func parseFilter(raw string) models.FeedFilter {
	switch raw {
	case "", "all":
		return models.FeedFilter{}
	case "near_me":
		return models.FeedFilter{NearMe: true}
	default:
		return models.FeedFilter{Tag: raw}
	}
}
