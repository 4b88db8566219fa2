package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/app/services"
	"github.com/rbvitales/yearbook-api/internal/middleware"
	"github.com/rbvitales/yearbook-api/internal/pkg/apperrors"
)

// PhotoController handles photo uploads and removal
type PhotoController struct {
	photoService services.PhotoService
}

// NewPhotoController creates a new PhotoController
func NewPhotoController(photoService services.PhotoService) *PhotoController {
	return &PhotoController{
		photoService: photoService,
	}
}

// AddPhotos uploads photos to an album
// @Summary Upload photos
// @Description Stores one or more uploaded images as photos in an album
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Album ID"
// @Param images formData file true "Image files"
// @Success 201 {object} dto.APIResponse{data=dto.AddPhotosResponse} "Photos uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 404 {object} dto.ErrorResponse "Album not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /albums/{id}/photos [post]
func (c *PhotoController) AddPhotos(ctx *gin.Context) {
	albumID, ok := parseIDParam(ctx, "id", "Invalid album ID")
	if !ok {
		return
	}

	accountID, ok := middleware.GetAccountID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.AddPhotosRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.photoService.AddPhotos(ctx, albumID, accountID, req, form.File["images"])
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetPhoto retrieves a photo with its album and student details
// @Summary Get photo by ID
// @Description Retrieves a photo with its album title and associated student
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.APIResponse{data=models.Photo} "Photo retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid photo ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /photos/{id} [get]
func (c *PhotoController) GetPhoto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid photo ID")
	if !ok {
		return
	}

	photo, err := c.photoService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      photo,
		Timestamp: time.Now(),
	})
}

// DeletePhoto removes a photo
// @Summary Delete a photo
// @Description Deletes a photo row and its stored image file
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 204 "Photo deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid photo ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /photos/{id} [delete]
func (c *PhotoController) DeletePhoto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid photo ID")
	if !ok {
		return
	}

	if err := c.photoService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
