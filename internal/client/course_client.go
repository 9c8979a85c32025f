package client

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-services/internal/dto"
)

// CourseClient looks courses up on the course service.
type CourseClient struct {
	resourceClient
}

// NewCourseClient builds a client for the course service rooted at baseURL.
func NewCourseClient(baseURL string, timeout time.Duration, metrics Observer, logger *zap.Logger) *CourseClient {
	return &CourseClient{newResourceClient("courses-service", baseURL, "courses", timeout, metrics, logger)}
}

// GetCourseByCourseID returns the course or an error matching ErrNotFound or ErrUnavailable.
func (c *CourseClient) GetCourseByCourseID(ctx context.Context, courseID string) (*dto.CourseResponse, error) {
	var course dto.CourseResponse
	if err := c.get(ctx, courseID, &course); err != nil {
		return nil, err
	}
	return &course, nil
}
