package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rbvitales/yearbook-api/internal/app/models/dto"
	"github.com/rbvitales/yearbook-api/internal/app/search"
	"github.com/rbvitales/yearbook-api/internal/app/services"
	"github.com/rbvitales/yearbook-api/internal/middleware"
	"github.com/rbvitales/yearbook-api/internal/pkg/helpers"
)

// StudentController handles the student directory and record management
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

func directoryFilters(ctx *gin.Context) search.StudentFilters {
	return search.NewStudentFilters(
		ctx.Query("search"),
		ctx.Query("department"),
		ctx.Query("year"),
		ctx.Query("block"),
		ctx.Query("section"),
	)
}

// Directory lists students with optional filters
// @Summary Browse the student directory
// @Description Lists students filtered by free-text search, department, year, block and section
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over name, school ID and email"
// @Param department query string false "Department filter" Enums(BSHM, STEM, ABM, BSIT, BSED)
// @Param year query string false "Enrollment year filter" Enums(2021, 2022, 2023, 2024, 2025)
// @Param block query string false "Block filter"
// @Param section query string false "Section filter"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Students retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) Directory(ctx *gin.Context) {
	accountID, _ := middleware.GetAccountID(ctx)
	page := helpers.ParsePageParam(ctx)

	students, pagination, err := c.studentService.Directory(ctx, accountID, directoryFilters(ctx), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      students,
			Pagination: pagination,
		},
		Timestamp: time.Now(),
	})
}

// Typeahead returns compact matches for a partial query
// @Summary Student typeahead
// @Description Returns up to 10 compact student matches for a partial name or school ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param q query string true "Partial query"
// @Success 200 {object} dto.APIResponse{data=dto.TypeaheadResponse} "Matches retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/typeahead [get]
func (c *StudentController) Typeahead(ctx *gin.Context) {
	results, err := c.studentService.Typeahead(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.TypeaheadResponse{Results: results},
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves a single student record
// @Summary Get student by ID
// @Description Retrieves a specific student record by its ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid student ID")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// AdminList lists students for staff with the admin page size
// @Summary List students for administration
// @Description Lists students with the same filters as the directory and the larger admin page size
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over name, school ID and email"
// @Param department query string false "Department filter"
// @Param year query string false "Enrollment year filter"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Students retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [get]
func (c *StudentController) AdminList(ctx *gin.Context) {
	page := helpers.ParsePageParam(ctx)

	students, pagination, err := c.studentService.AdminList(ctx, directoryFilters(ctx), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      students,
			Pagination: pagination,
		},
		Timestamp: time.Now(),
	})
}

// CreateStudent adds a staff-entered student record
// @Summary Create a student record
// @Description Creates a student record with no linked account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 409 {object} dto.ErrorResponse "School ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UpdateStudent edits a student record
// @Summary Update a student record
// @Description Replaces a student record's fields
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "School ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid student ID")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes a student record
// @Summary Delete a student record
// @Description Deletes a student record and its stored profile photo
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 204 "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Invalid student ID")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// BulkAction applies one action to a set of students
// @Summary Bulk student action
// @Description Applies a delete or honor roll action to the selected students
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkStudentRequest true "Action and student IDs"
// @Success 200 {object} dto.APIResponse{data=dto.BulkStudentResponse} "Action applied successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff privileges required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/bulk [post]
func (c *StudentController) BulkAction(ctx *gin.Context) {
	var req dto.BulkStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.studentService.Bulk(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// parseIDParam parses a path parameter as an int64 ID, responding with a
// validation error when it is not a number.
func parseIDParam(ctx *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).
			WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
