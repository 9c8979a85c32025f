package models

import (
	"strings"
	"time"
)

// Semester is the academic period an enrollment belongs to.
type Semester string

const (
	SemesterSpring Semester = "SPRING"
	SemesterSummer Semester = "SUMMER"
	SemesterFall   Semester = "FALL"
	SemesterWinter Semester = "WINTER"
)

// ParseSemester normalises free-form input; unknown values are returned
// upper-cased so validation can reject them.
func ParseSemester(raw string) Semester {
	return Semester(strings.ToUpper(strings.TrimSpace(raw)))
}

// Valid reports whether s is one of the known semesters.
func (s Semester) Valid() bool {
	switch s {
	case SemesterSpring, SemesterSummer, SemesterFall, SemesterWinter:
		return true
	}
	return false
}

// Enrollment links a student to a course for a semester. Student and course
// names are copied at enrollment time and never refreshed.
type Enrollment struct {
	ID               int64     `db:"id"`
	EnrollmentID     string    `db:"enrollment_id"`
	EnrollmentYear   int       `db:"enrollment_year"`
	Semester         Semester  `db:"semester"`
	StudentID        string    `db:"student_id"`
	StudentFirstName string    `db:"student_first_name"`
	StudentLastName  string    `db:"student_last_name"`
	CourseID         string    `db:"course_id"`
	CourseName       string    `db:"course_name"`
	CourseNumber     string    `db:"course_number"`
	CreatedAt        time.Time `db:"created_at"`
}
