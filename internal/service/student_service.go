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

type studentRepository interface {
	Each(ctx context.Context, fn func(*models.Student) error) error
	FindByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	Insert(ctx context.Context, student *models.Student) error
	Save(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, student *models.Student) error
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service. cache may be nil.
func NewStudentService(repo studentRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, cache: cache, validator: validate, logger: logger}
}

func studentCacheKey(studentID string) string {
	return "students:" + studentID
}

func studentNotFound(studentID string) error {
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("No student with this studentId was found: %s", studentID))
}

// Stream hands every student to fn in store order.
func (s *StudentService) Stream(ctx context.Context, fn func(dto.StudentResponse) error) error {
	err := s.repo.Each(ctx, func(student *models.Student) error {
		if err := fn(dto.NewStudentResponse(student)); err != nil {
			return streamError{err}
		}
		return nil
	})
	if err != nil {
		var se streamError
		if errors.As(err, &se) {
			return se.err
		}
		return appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to list students")
	}
	return nil
}

// Get returns a student by its public identifier.
func (s *StudentService) Get(ctx context.Context, studentID string) (*dto.StudentResponse, error) {
	if err := checkPublicID("student", studentID); err != nil {
		return nil, err
	}

	var cached dto.StudentResponse
	if s.cache.Get(ctx, studentCacheKey(studentID), &cached) {
		return &cached, nil
	}

	student, err := s.load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStudentResponse(student)
	s.cache.Set(ctx, studentCacheKey(studentID), resp)
	return &resp, nil
}

// Create stores a new student under a freshly generated identifier.
func (s *StudentService) Create(ctx context.Context, req dto.StudentRequest) (*dto.StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapKind(appErrors.ErrInvalidInput, err, "invalid student payload")
	}

	student := req.ToEntity()
	student.StudentID = uuid.NewString()
	if err := s.repo.Insert(ctx, student); err != nil {
		return nil, appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to create student")
	}
	s.logger.Info("student created", zap.String("student_id", student.StudentID))

	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// Update replaces the mutable fields of an existing student.
func (s *StudentService) Update(ctx context.Context, studentID string, req dto.StudentRequest) (*dto.StudentResponse, error) {
	if err := checkPublicID("student", studentID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapKind(appErrors.ErrInvalidInput, err, "invalid student payload")
	}

	existing, err := s.load(ctx, studentID)
	if err != nil {
		return nil, err
	}

	updated := req.ToEntity()
	updated.ID = existing.ID
	updated.StudentID = existing.StudentID
	if err := s.repo.Save(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, studentNotFound(studentID)
		}
		return nil, appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to update student")
	}
	s.cache.Delete(ctx, studentCacheKey(studentID))

	resp := dto.NewStudentResponse(updated)
	return &resp, nil
}

// Delete removes an existing student.
func (s *StudentService) Delete(ctx context.Context, studentID string) error {
	if err := checkPublicID("student", studentID); err != nil {
		return err
	}

	existing, err := s.load(ctx, studentID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, existing); err != nil {
		return appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to delete student")
	}
	s.cache.Delete(ctx, studentCacheKey(studentID))
	s.logger.Info("student deleted", zap.String("student_id", studentID))
	return nil
}

func (s *StudentService) load(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, studentNotFound(studentID)
		}
		return nil, appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to load student")
	}
	return student, nil
}
