package dto

import "github.com/noah-isme/campus-services/internal/models"

// StudentRequest is the payload accepted when creating or replacing a student.
type StudentRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Program   string `json:"program"`
}

// StudentResponse is the public representation of a student.
type StudentResponse struct {
	StudentID string `json:"studentId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Program   string `json:"program"`
}

// ToEntity maps the request onto a new, unidentified student.
func (r StudentRequest) ToEntity() *models.Student {
	return &models.Student{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Program:   r.Program,
	}
}

// NewStudentResponse maps a stored student.
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		StudentID: s.StudentID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Program:   s.Program,
	}
}
