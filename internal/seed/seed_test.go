package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-services/internal/models"
)

type courseSink struct {
	existing int64
	countErr error
	inserted []models.Course
	failOn   string
}

func (s *courseSink) Count(context.Context) (int64, error) {
	return s.existing + int64(len(s.inserted)), s.countErr
}

func (s *courseSink) Insert(_ context.Context, c *models.Course) error {
	if c.CourseName == s.failOn {
		return errors.New("duplicate key")
	}
	s.inserted = append(s.inserted, *c)
	return nil
}

type studentSink struct {
	existing int64
	inserted []models.Student
}

func (s *studentSink) Count(context.Context) (int64, error) {
	return s.existing + int64(len(s.inserted)), nil
}

func (s *studentSink) Insert(_ context.Context, st *models.Student) error {
	s.inserted = append(s.inserted, *st)
	return nil
}

func TestCourses(t *testing.T) {
	sink := &courseSink{}
	require.NoError(t, Courses(context.Background(), sink, nil))

	require.Len(t, sink.inserted, 4)
	assert.Equal(t, "NAVY SEALS", sink.inserted[0].CourseName)
	assert.Equal(t, 80, sink.inserted[0].NumHours)
	assert.Equal(t, 8.0, sink.inserted[0].NumCredits)
	assert.Equal(t, "COMPUTER SCIENCE", sink.inserted[3].Department)
	for _, c := range sink.inserted {
		assert.Len(t, c.CourseID, 36)
	}
}

func TestCoursesContinuesPastFailure(t *testing.T) {
	sink := &courseSink{failOn: "THE COURSE"}
	err := Courses(context.Background(), sink, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "THE COURSE")
	assert.Len(t, sink.inserted, 3)
}

func TestStudents(t *testing.T) {
	sink := &studentSink{}
	require.NoError(t, Students(context.Background(), sink, nil))

	require.Len(t, sink.inserted, 4)
	names := make([]string, 0, 4)
	for _, s := range sink.inserted {
		names = append(names, s.FirstName+" "+s.LastName)
		assert.Equal(t, "Political Science", s.Program)
	}
	assert.Equal(t, []string{"Lebron James", "Erling Haaland", "Mike Tyson", "Micheal Jordan"}, names)
}

func TestCoursesSkipsPopulatedCollection(t *testing.T) {
	sink := &courseSink{existing: 2}
	require.NoError(t, Courses(context.Background(), sink, nil))
	assert.Empty(t, sink.inserted)
}

func TestCoursesCountFailure(t *testing.T) {
	sink := &courseSink{countErr: errors.New("connection refused")}
	err := Courses(context.Background(), sink, nil)

	require.Error(t, err)
	assert.Empty(t, sink.inserted)
}

func TestSeedingTwiceInsertsOnce(t *testing.T) {
	courses := &courseSink{}
	students := &studentSink{}
	for i := 0; i < 2; i++ {
		require.NoError(t, Courses(context.Background(), courses, nil))
		require.NoError(t, Students(context.Background(), students, nil))
	}
	assert.Len(t, courses.inserted, 4)
	assert.Len(t, students.inserted, 4)
}

func TestStudentsSkipsPopulatedCollection(t *testing.T) {
	sink := &studentSink{existing: 1}
	require.NoError(t, Students(context.Background(), sink, nil))
	assert.Empty(t, sink.inserted)
}
