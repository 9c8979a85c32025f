package client

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-services/internal/dto"
)

// StudentClient looks students up on the student service.
type StudentClient struct {
	resourceClient
}

// NewStudentClient builds a client for the student service rooted at baseURL.
func NewStudentClient(baseURL string, timeout time.Duration, metrics Observer, logger *zap.Logger) *StudentClient {
	return &StudentClient{newResourceClient("students-service", baseURL, "students", timeout, metrics, logger)}
}

// GetStudentByStudentID returns the student or an error matching ErrNotFound or ErrUnavailable.
func (c *StudentClient) GetStudentByStudentID(ctx context.Context, studentID string) (*dto.StudentResponse, error) {
	var student dto.StudentResponse
	if err := c.get(ctx, studentID, &student); err != nil {
		return nil, err
	}
	return &student, nil
}
