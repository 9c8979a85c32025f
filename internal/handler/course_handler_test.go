package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/noah-isme/campus-services/internal/dto"
	"github.com/noah-isme/campus-services/internal/models"
	"github.com/noah-isme/campus-services/internal/repository"
	"github.com/noah-isme/campus-services/internal/service"
)

type memoryCourseRepo struct {
	courses []models.Course
}

func (m *memoryCourseRepo) Each(_ context.Context, fn func(*models.Course) error) error {
	for i := range m.courses {
		c := m.courses[i]
		if err := fn(&c); err != nil {
			return err
		}
	}
	return nil
}

func (m *memoryCourseRepo) FindByCourseID(_ context.Context, courseID string) (*models.Course, error) {
	for _, c := range m.courses {
		if c.CourseID == courseID {
			found := c
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryCourseRepo) Insert(_ context.Context, c *models.Course) error {
	c.ID = primitive.NewObjectID()
	m.courses = append(m.courses, *c)
	return nil
}

func (m *memoryCourseRepo) Save(_ context.Context, c *models.Course) error {
	for i := range m.courses {
		if m.courses[i].ID == c.ID {
			m.courses[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memoryCourseRepo) Delete(_ context.Context, c *models.Course) error {
	for i := range m.courses {
		if m.courses[i].ID == c.ID {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return nil
}

func newCourseRouter() (*gin.Engine, *memoryCourseRepo) {
	gin.SetMode(gin.TestMode)
	repo := &memoryCourseRepo{}
	r := gin.New()
	NewCourseHandler(service.NewCourseService(repo, nil, nil, nil)).RegisterRoutes(r)
	return r, repo
}

func perform(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCourseHandlerRejectsShortID(t *testing.T) {
	r, _ := newCourseRouter()

	w := perform(r, http.MethodGet, "/courses/12345", "")

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "The course ID needs to be 36 characters: 12345", body["message"])
	assert.Equal(t, "INVALID_INPUT", body["code"])
}

func TestCourseHandlerMissing(t *testing.T) {
	r, _ := newCourseRouter()

	w := perform(r, http.MethodGet, "/courses/c2db7b50-26b5-43f0-ab03-8dc5dab937fb", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course with this Id wasn't found: c2db7b50-26b5-43f0-ab03-8dc5dab937fb", decodeError(t, w)["message"])
}

func TestCourseHandlerCreateAndRead(t *testing.T) {
	r, _ := newCourseRouter()

	w := perform(r, http.MethodPost, "/courses",
		`{"courseNumber":"420-N45-LA","courseName":"DATABASE","numHours":60,"numCredits":2.0,"department":"Computer Science"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(t, created.CourseID, 36)
	assert.Equal(t, "DATABASE", created.CourseName)
	assert.Equal(t, "420-N45-LA", created.CourseNumber)
	assert.Equal(t, 60, created.NumHours)
	assert.Equal(t, 2.0, created.NumCredits)
	assert.Equal(t, "Computer Science", created.Department)

	w = perform(r, http.MethodGet, "/courses/"+created.CourseID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched dto.CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	w = perform(r, http.MethodPut, "/courses/"+created.CourseID,
		`{"courseNumber":"420-N45-LA","courseName":"DATABASE II","numHours":60,"numCredits":2.0,"department":"Computer Science"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"courseName":"DATABASE II"`)

	w = perform(r, http.MethodDelete, "/courses/"+created.CourseID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, http.MethodGet, "/courses/"+created.CourseID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourseHandlerBadBodies(t *testing.T) {
	r, _ := newCourseRouter()

	w := perform(r, http.MethodPost, "/courses", `{"courseName":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodPost, "/courses", `{"courseNumber":"1","department":"X"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCourseHandlerListJSON(t *testing.T) {
	r, repo := newCourseRouter()

	w := perform(r, http.MethodGet, "/courses", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	repo.courses = []models.Course{
		{CourseID: "id-1", CourseName: "NAVY SEALS"},
		{CourseID: "id-2", CourseName: "THE COURSE"},
	}
	w = perform(r, http.MethodGet, "/courses", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []dto.CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "NAVY SEALS", listed[0].CourseName)
	assert.Equal(t, "THE COURSE", listed[1].CourseName)
}

func TestCourseHandlerListEventStream(t *testing.T) {
	r, repo := newCourseRouter()
	repo.courses = []models.Course{
		{CourseID: "id-1", CourseName: "NAVY SEALS"},
		{CourseID: "id-2", CourseName: "THE COURSE"},
	}

	w := perform(r, http.MethodGet, "/courses", "", "Accept", "text/event-stream")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/event-stream"))
	assert.Equal(t, 2, strings.Count(w.Body.String(), "data:"))
	assert.Contains(t, w.Body.String(), `"courseName":"NAVY SEALS"`)
}
