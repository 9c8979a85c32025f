package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-services/internal/client"
	"github.com/noah-isme/campus-services/internal/dto"
	"github.com/noah-isme/campus-services/internal/models"
	"github.com/noah-isme/campus-services/internal/repository"
	appErrors "github.com/noah-isme/campus-services/pkg/errors"
)

type enrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	FindByEnrollmentID(ctx context.Context, enrollmentID string) (*models.Enrollment, error)
	DeleteByEnrollmentID(ctx context.Context, enrollmentID string) error
	Each(ctx context.Context, fn func(*models.Enrollment) error) error
}

// StudentLookup resolves a student held by the student service.
type StudentLookup interface {
	GetStudentByStudentID(ctx context.Context, studentID string) (*dto.StudentResponse, error)
}

// CourseLookup resolves a course held by the course service.
type CourseLookup interface {
	GetCourseByCourseID(ctx context.Context, courseID string) (*dto.CourseResponse, error)
}

// EnrollmentService creates enrollments from a student and a course owned by
// other services, and serves the stored records.
type EnrollmentService struct {
	repo      enrollmentRepository
	students  StudentLookup
	courses   CourseLookup
	validator *validator.Validate
	logger    *zap.Logger
	newID     func() string
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, students StudentLookup, courses CourseLookup, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	_ = validate.RegisterValidation("semester", validSemester)
	return &EnrollmentService{
		repo:      repo,
		students:  students,
		courses:   courses,
		validator: validate,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

func validSemester(fl validator.FieldLevel) bool {
	return models.Semester(fl.Field().String()).Valid()
}

type studentResult struct {
	student *dto.StudentResponse
	err     error
}

type courseResult struct {
	course *dto.CourseResponse
	err    error
}

// Create validates the request, resolves the student and the course in
// parallel, and stores the merged enrollment. Nothing is persisted unless
// both lookups succeed; when both fail the student error is reported.
func (s *EnrollmentService) Create(ctx context.Context, req dto.EnrollmentRequest) (*dto.EnrollmentResponse, error) {
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.CourseID = strings.TrimSpace(req.CourseID)
	req.Semester = models.ParseSemester(string(req.Semester))
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WrapKind(appErrors.ErrInvalidInput, err, "invalid enrollment payload")
	}

	// Buffered so a lookup finishing after we gave up never blocks.
	studentCh := make(chan studentResult, 1)
	courseCh := make(chan courseResult, 1)

	go func() {
		student, err := s.students.GetStudentByStudentID(ctx, req.StudentID)
		studentCh <- studentResult{student: student, err: err}
	}()
	go func() {
		course, err := s.courses.GetCourseByCourseID(ctx, req.CourseID)
		courseCh <- courseResult{course: course, err: err}
	}()

	var (
		student       *dto.StudentResponse
		course        *dto.CourseResponse
		courseErr     error
		courseArrived bool
	)
	for studentCh != nil || courseCh != nil {
		select {
		case res := <-studentCh:
			studentCh = nil
			if res.err != nil {
				return nil, s.lookupError("student", req.StudentID, res.err)
			}
			student = res.student
		case res := <-courseCh:
			courseCh = nil
			courseArrived = true
			course, courseErr = res.course, res.err
		case <-ctx.Done():
			return nil, appErrors.WrapKind(appErrors.ErrUpstreamUnavailable, ctx.Err(), "enrollment lookups cancelled")
		}
		// A course failure is only final once the student is known to be fine.
		if courseArrived && courseErr != nil && studentCh == nil {
			return nil, s.lookupError("course", req.CourseID, courseErr)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, appErrors.WrapKind(appErrors.ErrUpstreamUnavailable, err, "enrollment lookups cancelled")
	}
	enrollment := dto.NewEnrollment(s.newID(), req, *student, *course)
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to create enrollment")
	}
	s.logger.Info("enrollment created",
		zap.String("enrollment_id", enrollment.EnrollmentID),
		zap.String("student_id", enrollment.StudentID),
		zap.String("course_id", enrollment.CourseID),
	)

	resp := dto.NewEnrollmentResponse(enrollment)
	return &resp, nil
}

func (s *EnrollmentService) lookupError(resource, id string, err error) error {
	if errors.Is(err, client.ErrNotFound) {
		if resource == "student" {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("No student with this studentId was found: %s", id))
		}
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Course with this Id wasn't found: %s", id))
	}
	var rejected *client.RejectionError
	if errors.As(err, &rejected) {
		return appErrors.WrapKind(appErrors.ErrInvalidInput, err, rejected.Message)
	}
	s.logger.Warn("upstream lookup failed", zap.String("resource", resource), zap.String("id", id), zap.Error(err))
	return appErrors.WrapKind(appErrors.ErrUpstreamUnavailable, err, resource+" service unavailable")
}

// GetByID returns a stored enrollment.
func (s *EnrollmentService) GetByID(ctx context.Context, enrollmentID string) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.repo.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("No enrollment with this enrollmentId was found: %s", enrollmentID))
		}
		return nil, appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to load enrollment")
	}
	resp := dto.NewEnrollmentResponse(enrollment)
	return &resp, nil
}

// Delete removes an enrollment. Deleting an unknown identifier is not an error.
func (s *EnrollmentService) Delete(ctx context.Context, enrollmentID string) error {
	if err := s.repo.DeleteByEnrollmentID(ctx, enrollmentID); err != nil {
		return appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to delete enrollment")
	}
	return nil
}

// Stream hands every enrollment to fn in insertion order.
func (s *EnrollmentService) Stream(ctx context.Context, fn func(dto.EnrollmentResponse) error) error {
	err := s.repo.Each(ctx, func(enrollment *models.Enrollment) error {
		if err := fn(dto.NewEnrollmentResponse(enrollment)); err != nil {
			return streamError{err}
		}
		return nil
	})
	if err != nil {
		var se streamError
		if errors.As(err, &se) {
			return se.err
		}
		return appErrors.WrapKind(appErrors.ErrPersistence, err, "failed to list enrollments")
	}
	return nil
}
