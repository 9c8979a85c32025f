package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *recordingObserver) ObserveUpstream(upstream, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, upstream+"/"+outcome)
}

const sampleID = "c2db7b50-26b5-43f0-ab03-8dc5dab937fb"

func TestStudentClientFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/students/"+sampleID, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"studentId":"` + sampleID + `","firstName":"Lebron","lastName":"James","program":"Political Science"}`))
	}))
	defer srv.Close()

	observer := &recordingObserver{}
	c := NewStudentClient(srv.URL, time.Second, observer, nil)

	student, err := c.GetStudentByStudentID(context.Background(), sampleID)
	require.NoError(t, err)
	assert.Equal(t, "Lebron", student.FirstName)
	assert.Equal(t, "James", student.LastName)
	assert.Equal(t, []string{"students-service/ok"}, observer.outcomes)
}

func TestCourseClientFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/"+sampleID, r.URL.Path)
		_, _ = w.Write([]byte(`{"courseId":"` + sampleID + `","courseNumber":"420-N45-LA","courseName":"Web Services","numHours":60,"numCredits":2.0,"department":"Computer Science"}`))
	}))
	defer srv.Close()

	course, err := NewCourseClient(srv.URL, time.Second, nil, nil).GetCourseByCourseID(context.Background(), sampleID)
	require.NoError(t, err)
	assert.Equal(t, "Web Services", course.CourseName)
	assert.Equal(t, "420-N45-LA", course.CourseNumber)
	assert.Equal(t, 2.0, course.NumCredits)
}

func TestClientStatusMapping(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		want    error
		outcome string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"missing"}`, want: ErrNotFound, outcome: "not_found"},
		{name: "server error", status: http.StatusInternalServerError, want: ErrUnavailable, outcome: "unavailable"},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrUnavailable, outcome: "unavailable"},
		{name: "rejected identifier", status: http.StatusUnprocessableEntity, body: `{"message":"The course ID needs to be 36 characters: 12345"}`, want: ErrInvalid, outcome: "invalid"},
		{name: "bad request", status: http.StatusBadRequest, want: ErrInvalid, outcome: "invalid"},
		{name: "unexpected client error", status: http.StatusConflict, want: ErrUnavailable, outcome: "unavailable"},
		{name: "garbage body", status: http.StatusOK, body: `not json`, want: ErrUnavailable, outcome: "unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			observer := &recordingObserver{}
			_, err := NewCourseClient(srv.URL, time.Second, observer, nil).GetCourseByCourseID(context.Background(), sampleID)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Equal(t, []string{"courses-service/" + tc.outcome}, observer.outcomes)
		})
	}
}

func TestClientConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := NewStudentClient(base, time.Second, nil, nil).GetStudentByStudentID(context.Background(), sampleID)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewStudentClient(srv.URL, 50*time.Millisecond, nil, nil).GetStudentByStudentID(context.Background(), sampleID)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClientEscapesIdentifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/students/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewStudentClient(srv.URL, time.Second, nil, nil).GetStudentByStudentID(context.Background(), "a/b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientRejectionCarriesPeerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"INVALID_INPUT","message":"The student ID needs to be 36 characters: 12345","status":422}`))
	}))
	defer srv.Close()

	_, err := NewStudentClient(srv.URL, time.Second, nil, nil).GetStudentByStudentID(context.Background(), "12345")

	require.ErrorIs(t, err, ErrInvalid)
	var rejected *RejectionError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, http.StatusUnprocessableEntity, rejected.Status)
	assert.Equal(t, "The student ID needs to be 36 characters: 12345", rejected.Message)
}
