package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/app/services"
	"github.com/rbvitales/yearbook-api/internal/middleware"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
)

// SearchController handles the unified search and search history
type SearchController struct {
	searchService services.SearchService
}

// NewSearchController creates a new SearchController
func NewSearchController(searchService services.SearchService) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// Search runs the unified album and student search
// @Summary Unified search
// @Description Searches albums and students independently and returns both collections
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Success 200 {object} dto.APIResponse{data=dto.UnifiedSearchResponse} "Search results retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /search [get]
func (c *SearchController) Search(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	result, err := c.searchService.SearchAll(ctx, accountID, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// RecentSearches returns the account's newest history rows
// @Summary Recent searches
// @Description Returns the authenticated account's most recent searches, newest first
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows" default(5)
// @Success 200 {object} dto.APIResponse{data=[]models.SearchHistory} "Recent searches retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /searches/recent [get]
func (c *SearchController) RecentSearches(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	limit, _ := strconv.Atoi(ctx.Query("limit"))

	searches, err := c.searchService.RecentSearches(ctx, accountID, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      searches,
		Timestamp: time.Now(),
	})
}
