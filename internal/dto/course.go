package dto

import "github.com/noah-isme/campus-services/internal/models"

// CourseRequest is the payload accepted when creating or replacing a course.
type CourseRequest struct {
	CourseNumber string  `json:"courseNumber" validate:"required"`
	CourseName   string  `json:"courseName" validate:"required"`
	NumHours     int     `json:"numHours" validate:"gte=0"`
	NumCredits   float64 `json:"numCredits" validate:"gte=0"`
	Department   string  `json:"department" validate:"required"`
}

// CourseResponse is the public representation of a course. The enrollment
// service decodes the same shape when resolving courses remotely.
type CourseResponse struct {
	CourseID     string  `json:"courseId"`
	CourseNumber string  `json:"courseNumber"`
	CourseName   string  `json:"courseName"`
	NumHours     int     `json:"numHours"`
	NumCredits   float64 `json:"numCredits"`
	Department   string  `json:"department"`
}

// ToEntity maps the request onto a new, unidentified course.
func (r CourseRequest) ToEntity() *models.Course {
	return &models.Course{
		CourseNumber: r.CourseNumber,
		CourseName:   r.CourseName,
		NumHours:     r.NumHours,
		NumCredits:   r.NumCredits,
		Department:   r.Department,
	}
}

// NewCourseResponse maps a stored course.
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		CourseID:     c.CourseID,
		CourseNumber: c.CourseNumber,
		CourseName:   c.CourseName,
		NumHours:     c.NumHours,
		NumCredits:   c.NumCredits,
		Department:   c.Department,
	}
}
