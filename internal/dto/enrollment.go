package dto

import "github.com/noah-isme/campus-services/internal/models"

// EnrollmentRequest asks for a student to be enrolled in a course.
type EnrollmentRequest struct {
	EnrollmentYear int             `json:"enrollmentYear" validate:"gte=1900,lte=9999"`
	Semester       models.Semester `json:"semester" validate:"required,semester"`
	StudentID      string          `json:"studentId" validate:"required"`
	CourseID       string          `json:"courseId" validate:"required"`
}

// EnrollmentResponse is the public representation of an enrollment,
// including the names copied from the student and course.
type EnrollmentResponse struct {
	EnrollmentID     string          `json:"enrollmentId"`
	EnrollmentYear   int             `json:"enrollmentYear"`
	Semester         models.Semester `json:"semester"`
	StudentID        string          `json:"studentId"`
	StudentFirstName string          `json:"studentFirstName"`
	StudentLastName  string          `json:"studentLastName"`
	CourseID         string          `json:"courseId"`
	CourseName       string          `json:"courseName"`
	CourseNumber     string          `json:"courseNumber"`
}

// NewEnrollment merges the request with the resolved student and course.
func NewEnrollment(enrollmentID string, req EnrollmentRequest, student StudentResponse, course CourseResponse) *models.Enrollment {
	return &models.Enrollment{
		EnrollmentID:     enrollmentID,
		EnrollmentYear:   req.EnrollmentYear,
		Semester:         req.Semester,
		StudentID:        req.StudentID,
		StudentFirstName: student.FirstName,
		StudentLastName:  student.LastName,
		CourseID:         req.CourseID,
		CourseName:       course.CourseName,
		CourseNumber:     course.CourseNumber,
	}
}

// NewEnrollmentResponse maps a stored enrollment.
func NewEnrollmentResponse(e *models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:     e.EnrollmentID,
		EnrollmentYear:   e.EnrollmentYear,
		Semester:         e.Semester,
		StudentID:        e.StudentID,
		StudentFirstName: e.StudentFirstName,
		StudentLastName:  e.StudentLastName,
		CourseID:         e.CourseID,
		CourseName:       e.CourseName,
		CourseNumber:     e.CourseNumber,
	}
}
