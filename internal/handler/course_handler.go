package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-services/internal/dto"
	appErrors "github.com/noah-isme/campus-services/pkg/errors"
	"github.com/noah-isme/campus-services/pkg/response"
)

type courseService interface {
	Stream(ctx context.Context, fn func(dto.CourseResponse) error) error
	Get(ctx context.Context, courseID string) (*dto.CourseResponse, error)
	Create(ctx context.Context, req dto.CourseRequest) (*dto.CourseResponse, error)
	Update(ctx context.Context, courseID string, req dto.CourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, courseID string) error
}

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	courses courseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses courseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// RegisterRoutes mounts the course endpoints on r.
func (h *CourseHandler) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/courses")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary Stream all courses
// @Description JSON array by default; one server-sent event per course when Accept is text/event-stream.
// @Tags Courses
// @Produce json,text/event-stream
// @Success 200 {array} dto.CourseResponse
// @Failure 500 {object} errors.Error
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	response.Stream(c, func(emit response.Emit) error {
		return h.courses.Stream(c.Request.Context(), func(course dto.CourseResponse) error {
			return emit(course)
		})
	})
}

// Get godoc
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} errors.Error
// @Failure 422 {object} errors.Error
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Create godoc
// @Summary Create course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CourseRequest true "Course payload"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} errors.Error
// @Failure 422 {object} errors.Error
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid course payload"))
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Update godoc
// @Summary Replace course
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body dto.CourseRequest true "Course payload"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Failure 422 {object} errors.Error
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid course payload"))
		return
	}
	course, err := h.courses.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Delete godoc
// @Summary Delete course
// @Tags Courses
// @Param id path string true "Course ID"
// @Success 204
// @Failure 404 {object} errors.Error
// @Failure 422 {object} errors.Error
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
