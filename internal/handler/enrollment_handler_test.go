package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-services/internal/dto"
	"github.com/noah-isme/campus-services/internal/models"
	appErrors "github.com/noah-isme/campus-services/pkg/errors"
)

type enrollmentServiceMock struct {
	lastReq   dto.EnrollmentRequest
	createErr error
	getErr    error
	deleteErr error
	streamErr error
	deleted   []string
}

func (m *enrollmentServiceMock) Create(ctx context.Context, req dto.EnrollmentRequest) (*dto.EnrollmentResponse, error) {
	m.lastReq = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &dto.EnrollmentResponse{
		EnrollmentID:     "e3b0c442-98fc-4c14-9afb-f4c8996fb924",
		EnrollmentYear:   req.EnrollmentYear,
		Semester:         req.Semester,
		StudentID:        req.StudentID,
		StudentFirstName: "Lebron",
		StudentLastName:  "James",
		CourseID:         req.CourseID,
		CourseName:       "NAVY SEALS",
		CourseNumber:     "123456",
	}, nil
}

func (m *enrollmentServiceMock) GetByID(ctx context.Context, enrollmentID string) (*dto.EnrollmentResponse, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return &dto.EnrollmentResponse{EnrollmentID: enrollmentID}, nil
}

func (m *enrollmentServiceMock) Delete(ctx context.Context, enrollmentID string) error {
	m.deleted = append(m.deleted, enrollmentID)
	return m.deleteErr
}

func (m *enrollmentServiceMock) Stream(ctx context.Context, fn func(dto.EnrollmentResponse) error) error {
	return m.streamErr
}

func TestEnrollmentHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &enrollmentServiceMock{}
	handler := NewEnrollmentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/enrollments", strings.NewReader(`{"enrollmentYear":2023,"semester":"FALL","studentId":"s-1","courseId":"c-1"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.SemesterFall, mock.lastReq.Semester)
	assert.Equal(t, 2023, mock.lastReq.EnrollmentYear)

	var created dto.EnrollmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "NAVY SEALS", created.CourseName)
	assert.Equal(t, "James", created.StudentLastName)
}

func TestEnrollmentHandlerCreateErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"student missing", appErrors.Clone(appErrors.ErrNotFound, "No student with this studentId was found: s-1"), http.StatusNotFound},
		{"invalid", appErrors.Clone(appErrors.ErrInvalidInput, "invalid enrollment payload"), http.StatusUnprocessableEntity},
		{"upstream down", appErrors.WrapKind(appErrors.ErrUpstreamUnavailable, errors.New("dial tcp"), "course service unavailable"), http.StatusBadGateway},
		{"store down", appErrors.WrapKind(appErrors.ErrPersistence, errors.New("connection reset"), "failed to create enrollment"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			NewEnrollmentHandler(&enrollmentServiceMock{createErr: tc.err}).RegisterRoutes(r)

			w := perform(r, http.MethodPost, "/enrollments", `{"enrollmentYear":2023,"semester":"FALL","studentId":"s-1","courseId":"c-1"}`)

			require.Equal(t, tc.status, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, appErrors.FromError(tc.err).Message, body["message"])
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestEnrollmentHandlerMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mock := &enrollmentServiceMock{}
	NewEnrollmentHandler(mock).RegisterRoutes(r)

	w := perform(r, http.MethodPost, "/enrollments", `{"enrollmentYear":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mock.lastReq.StudentID)
}

func TestEnrollmentHandlerGetMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewEnrollmentHandler(&enrollmentServiceMock{
		getErr: appErrors.Clone(appErrors.ErrNotFound, "No enrollment with this enrollmentId was found: nope"),
	}).RegisterRoutes(r)

	w := perform(r, http.MethodGet, "/enrollments/nope", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No enrollment with this enrollmentId was found: nope", decodeError(t, w)["message"])
}

func TestEnrollmentHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mock := &enrollmentServiceMock{}
	NewEnrollmentHandler(mock).RegisterRoutes(r)

	w := perform(r, http.MethodDelete, "/enrollments/e3b0c442-98fc-4c14-9afb-f4c8996fb924", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"e3b0c442-98fc-4c14-9afb-f4c8996fb924"}, mock.deleted)
}

func TestEnrollmentHandlerListFailsBeforeFirstElement(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewEnrollmentHandler(&enrollmentServiceMock{
		streamErr: appErrors.WrapKind(appErrors.ErrPersistence, errors.New("pq: timeout"), "failed to list enrollments"),
	}).RegisterRoutes(r)

	w := perform(r, http.MethodGet, "/enrollments", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to list enrollments", decodeError(t, w)["message"])
}
