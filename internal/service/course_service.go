package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-services/internal/dto"
	"github.com/noah-isme/campus-services/internal/models"
	"github.com/noah-isme/campus-services/internal/repository"
	appErrors "github.com/noah-isme/campus-services/pkg/errors"
)

type courseRepository interface {
	Each(ctx context.Context, fn func(*models.Course) error) error
	FindByCourseID(ctx context.Context, courseID string) (*models.Course, error)
	Insert(ctx context.Context, course *models.Course) error
	Save(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, course *models.Course) error
}

// CourseService handles course use-cases.
type CourseService struct {
	repo      courseRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service. cache may be nil.
func NewCourseService(repo courseRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cache: cache, validator: validate, logger: logger}
}

func courseCacheKey(courseID string) string {
	return "courses:" + courseID
}

func courseNotFound(courseID string) error {
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Course with this Id wasn't found: %s", courseID))
}

// Stream hands every course to fn in store order.
func (s *CourseService) Stream(ctx context.Context, fn func(dto.CourseResponse) error) error {
	err := s.repo.Each(ctx, func(course *models.Course) error {
		if err := fn(dto.NewCourseResponse(course)); err != nil {
			return streamError{err}
		}
		return nil
	})
	if err != nil {
		var se streamError
		if errors.As(err, &se) {
			return se.err
		}
		return appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to list courses")
	}
	return nil
}

// Get returns a course by its public identifier.
func (s *CourseService) Get(ctx context.Context, courseID string) (*dto.CourseResponse, error) {
	if err := checkPublicID("course", courseID); err != nil {
		return nil, err
	}

	var cached dto.CourseResponse
	if s.cache.Get(ctx, courseCacheKey(courseID), &cached) {
		return &cached, nil
	}

	course, err := s.load(ctx, courseID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCourseResponse(course)
	s.cache.Set(ctx, courseCacheKey(courseID), resp)
	return &resp, nil
}

// Create stores a new course under a freshly generated identifier.
func (s *CourseService) Create(ctx context.Context, req dto.CourseRequest) (*dto.CourseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapKind(appErrors.ErrInvalidInput, err, "invalid course payload")
	}

	course := req.ToEntity()
	course.CourseID = uuid.NewString()
	if err := s.repo.Insert(ctx, course); err != nil {
		return nil, appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to create course")
	}
	s.logger.Info("course created", zap.String("course_id", course.CourseID))

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// Update replaces the mutable fields of an existing course.
func (s *CourseService) Update(ctx context.Context, courseID string, req dto.CourseRequest) (*dto.CourseResponse, error) {
	if err := checkPublicID("course", courseID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapKind(appErrors.ErrInvalidInput, err, "invalid course payload")
	}

	existing, err := s.load(ctx, courseID)
	if err != nil {
		return nil, err
	}

	updated := req.ToEntity()
	updated.ID = existing.ID
	updated.CourseID = existing.CourseID
	if err := s.repo.Save(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, courseNotFound(courseID)
		}
		return nil, appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to update course")
	}
	s.cache.Delete(ctx, courseCacheKey(courseID))

	resp := dto.NewCourseResponse(updated)
	return &resp, nil
}

// Delete removes an existing course.
func (s *CourseService) Delete(ctx context.Context, courseID string) error {
	if err := checkPublicID("course", courseID); err != nil {
		return err
	}

	existing, err := s.load(ctx, courseID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, existing); err != nil {
		return appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to delete course")
	}
	s.cache.Delete(ctx, courseCacheKey(courseID))
	s.logger.Info("course deleted", zap.String("course_id", courseID))
	return nil
}

func (s *CourseService) load(ctx context.Context, courseID string) (*models.Course, error) {
	course, err := s.repo.FindByCourseID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, courseNotFound(courseID)
		}
		return nil, appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to load course")
	}
	return course, nil
}
