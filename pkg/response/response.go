package response

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/campus-services/pkg/errors"
)

// EventStream is the media type clients send to receive server-sent events.
const EventStream = "text/event-stream"

// JSON sends a success response.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)
	c.Header("Cache-Control", "no-store")
	c.AbortWithStatusJSON(appErr.Status, appErr)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Emit hands one element to a stream.
type Emit func(item interface{}) error

// Stream writes elements as the producer yields them. Clients accepting
// text/event-stream get one SSE data event per element, everybody else a JSON
// array written element by element. Nothing is committed until the first
// element, so a producer failing up front still gets a proper error status.
func Stream(c *gin.Context, produce func(emit Emit) error) {
	sse := strings.Contains(c.GetHeader("Accept"), EventStream)
	written := 0

	emit := func(item interface{}) error {
		if written == 0 {
			c.Header("Cache-Control", "no-store")
			if sse {
				c.Header("Content-Type", EventStream+";charset=UTF-8")
			} else {
				c.Header("Content-Type", "application/json; charset=utf-8")
			}
			c.Status(http.StatusOK)
		}
		if sse {
			c.SSEvent("", item)
		} else {
			payload, err := json.Marshal(item)
			if err != nil {
				return err
			}
			sep := ","
			if written == 0 {
				sep = "["
			}
			if _, err := c.Writer.WriteString(sep); err != nil {
				return err
			}
			if _, err := c.Writer.Write(payload); err != nil {
				return err
			}
		}
		written++
		c.Writer.Flush()
		return c.Request.Context().Err()
	}

	if err := produce(emit); err != nil {
		if written == 0 {
			Error(c, err)
			return
		}
		// Headers are gone; a truncated body is all the client can be told.
		_ = c.Error(err)
		return
	}

	switch {
	case written == 0 && sse:
		c.Header("Content-Type", EventStream+";charset=UTF-8")
		c.Status(http.StatusOK)
		c.Writer.WriteHeaderNow()
	case written == 0:
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.String(http.StatusOK, "[]")
	default:
		if !sse {
			_, _ = c.Writer.WriteString("]")
		}
	}
	c.Writer.Flush()
}
