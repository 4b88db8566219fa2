package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/app/services"
	"github.com/rbvitales/yearbook-api/internal/middleware"
	"github.com/rbvitales/yearbook-api/internal/pkg/helpers"
)

// AlbumController handles album browsing and management
type AlbumController struct {
	albumService services.AlbumService
}

// NewAlbumController creates a new AlbumController
func NewAlbumController(albumService services.AlbumService) *AlbumController {
	return &AlbumController{
		albumService: albumService,
	}
}

// ListAlbums lists active albums
// @Summary Browse albums
// @Description Lists active albums newest first, optionally narrowed by a free-text query
// @Tags albums
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over title, description, department and year"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Albums retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /albums [get]
func (c *AlbumController) ListAlbums(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx)

	albums, pagination, err := c.albumService.List(ctx, ctx.Query("search"), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      albums,
			Pagination: pagination,
		},
		Timestamp: time.Now(),
	})
}

// GetAlbum returns an album with one page of its photos
// @Summary Get album detail
// @Description Retrieves an album and one page of its photos, featured photos first
// @Tags albums
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Param page query int false "Photo page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.AlbumDetailResponse} "Album retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid album ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Album not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /albums/{id} [get]
func (c *AlbumController) GetAlbum(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid album ID")
	if !ok {
		return
	}

	page := helpers.ParsePageParam(ctx)

	// Staff can open hidden albums
	roleType, _ := ctx.Get(middleware.ContextRoleType)
	includeInactive := roleType == "STAFF"

	detail, err := c.albumService.GetWithPhotos(ctx, id, page, includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}

// AdminListAlbums lists every album including hidden ones
// @Summary List albums for administration
// @Description Lists every album regardless of visibility with the admin page size
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Albums retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/albums [get]
func (c *AlbumController) AdminListAlbums(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx)

	albums, pagination, err := c.albumService.AdminList(ctx, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      albums,
			Pagination: pagination,
		},
		Timestamp: time.Now(),
	})
}

// CreateAlbum adds an album
// @Summary Create an album
// @Description Creates an album for an unused department and year pair, with an optional cover photo
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param cover_photo formData file false "Cover photo"
// @Success 201 {object} dto.APIResponse{data=models.Album} "Album created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 409 {object} dto.ErrorResponse "Album for this department and year already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /albums [post]
func (c *AlbumController) CreateAlbum(ctx *gin.Context) {
	var req dto.CreateAlbumRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	cover, err := ctx.FormFile("cover_photo")
	if err != nil {
		cover = nil
	}

	album, err := c.albumService.Create(ctx, req, cover)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      album,
		Timestamp: time.Now(),
	})
}

// UpdateAlbum edits an album
// @Summary Update an album
// @Description Edits an album's fields, visibility and optionally its cover photo
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Param cover_photo formData file false "Cover photo"
// @Success 200 {object} dto.APIResponse{data=models.Album} "Album updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 404 {object} dto.ErrorResponse "Album not found"
// @Failure 409 {object} dto.ErrorResponse "Album for this department and year already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /albums/{id} [put]
func (c *AlbumController) UpdateAlbum(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid album ID")
	if !ok {
		return
	}

	var req dto.UpdateAlbumRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	cover, err := ctx.FormFile("cover_photo")
	if err != nil {
		cover = nil
	}

	album, err := c.albumService.Update(ctx, id, req, cover)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      album,
		Timestamp: time.Now(),
	})
}

// DeleteAlbum removes an album
// @Summary Delete an album
// @Description Deletes an album, its photos and their stored files
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Success 204 "Album deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid album ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 404 {object} dto.ErrorResponse "Album not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /albums/{id} [delete]
func (c *AlbumController) DeleteAlbum(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid album ID")
	if !ok {
		return
	}

	if err := c.albumService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
