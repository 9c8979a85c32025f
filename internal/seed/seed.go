// Package seed loads the fixed sample catalogue at start-up. A collection that
// already holds documents is left untouched, so restarts do not duplicate it.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-services/internal/models"
)

type courseStore interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, course *models.Course) error
}

type studentStore interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, student *models.Student) error
}

// SampleCourses returns the sample courses with fresh identifiers.
func SampleCourses() []*models.Course {
	return []*models.Course{
		{CourseID: uuid.NewString(), CourseNumber: "123456", CourseName: "NAVY SEALS", Department: "THE DEPARTMENT", NumHours: 80, NumCredits: 8.00},
		{CourseID: uuid.NewString(), CourseNumber: "234567", CourseName: "THE COURSE", Department: "THE DEPARTMENT", NumHours: 50, NumCredits: 6.00},
		{CourseID: uuid.NewString(), CourseNumber: "345678", CourseName: "MARINE CORP", Department: "THE DEPARTMENT", NumHours: 50, NumCredits: 6.00},
		{CourseID: uuid.NewString(), CourseNumber: "456789", CourseName: "JAVA WEB", Department: "COMPUTER SCIENCE", NumHours: 50, NumCredits: 6.00},
	}
}

// SampleStudents returns the sample students with fresh identifiers.
func SampleStudents() []*models.Student {
	return []*models.Student{
		{StudentID: uuid.NewString(), FirstName: "Lebron", LastName: "James", Program: "Political Science"},
		{StudentID: uuid.NewString(), FirstName: "Erling", LastName: "Haaland", Program: "Political Science"},
		{StudentID: uuid.NewString(), FirstName: "Mike", LastName: "Tyson", Program: "Political Science"},
		{StudentID: uuid.NewString(), FirstName: "Micheal", LastName: "Jordan", Program: "Political Science"},
	}
}

// Courses inserts the sample courses into an empty collection. Every record is
// attempted; the first failure is returned after the rest have been tried.
func Courses(ctx context.Context, repo courseStore, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if n, err := repo.Count(ctx); err != nil {
		return fmt.Errorf("count courses: %w", err)
	} else if n > 0 {
		logger.Info("courses already present, skipping seed", zap.Int64("count", n))
		return nil
	}
	var firstErr error
	for _, course := range SampleCourses() {
		if err := repo.Insert(ctx, course); err != nil {
			logger.Warn("seed course failed", zap.String("course_name", course.CourseName), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("seed course %s: %w", course.CourseName, err)
			}
			continue
		}
		logger.Info("seeded course", zap.String("course_id", course.CourseID), zap.String("course_name", course.CourseName))
	}
	return firstErr
}

// Students inserts the sample students, with the same failure handling as Courses.
func Students(ctx context.Context, repo studentStore, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if n, err := repo.Count(ctx); err != nil {
		return fmt.Errorf("count students: %w", err)
	} else if n > 0 {
		logger.Info("students already present, skipping seed", zap.Int64("count", n))
		return nil
	}
	var firstErr error
	for _, student := range SampleStudents() {
		name := student.FirstName + " " + student.LastName
		if err := repo.Insert(ctx, student); err != nil {
			logger.Warn("seed student failed", zap.String("student_name", name), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("seed student %s: %w", name, err)
			}
			continue
		}
		logger.Info("seeded student", zap.String("student_id", student.StudentID), zap.String("student_name", name))
	}
	return firstErr
}
