package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-services/internal/dto"
	appErrors "github.com/noah-isme/campus-services/pkg/errors"
	"github.com/noah-isme/campus-services/pkg/response"
)

type enrollmentService interface {
	Create(ctx context.Context, req dto.EnrollmentRequest) (*dto.EnrollmentResponse, error)
	GetByID(ctx context.Context, enrollmentID string) (*dto.EnrollmentResponse, error)
	Delete(ctx context.Context, enrollmentID string) error
	Stream(ctx context.Context, fn func(dto.EnrollmentResponse) error) error
}

// EnrollmentHandler exposes enrollment endpoints.
type EnrollmentHandler struct {
	enrollments enrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// RegisterRoutes mounts the enrollment endpoints on r.
func (h *EnrollmentHandler) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/enrollments")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary Stream all enrollments
// @Tags Enrollments
// @Produce json,text/event-stream
// @Success 200 {array} dto.EnrollmentResponse
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	response.Stream(c, func(emit response.Emit) error {
		return h.enrollments.Stream(c.Request.Context(), func(enrollment dto.EnrollmentResponse) error {
			return emit(enrollment)
		})
	})
}

// Create godoc
// @Summary Enroll a student in a course
// @Description Resolves the student and the course from their services before storing the enrollment.
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body dto.EnrollmentRequest true "Enrollment payload"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Failure 422 {object} errors.Error
// @Failure 500 {object} errors.Error
// @Failure 502 {object} errors.Error
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req dto.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid enrollment payload"))
		return
	}
	enrollment, err := h.enrollments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// Get godoc
// @Summary Get enrollment
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 404 {object} errors.Error
// @Router /enrollments/{id} [get]
func (h *EnrollmentHandler) Get(c *gin.Context) {
	enrollment, err := h.enrollments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, enrollment)
}

// Delete godoc
// @Summary Delete enrollment
// @Tags Enrollments
// @Param id path string true "Enrollment ID"
// @Success 204
// @Failure 500 {object} errors.Error
// @Router /enrollments/{id} [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	if err := h.enrollments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
