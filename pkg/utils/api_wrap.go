package utils

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// APIResponse is the uniform envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondList always carries a count, even for an empty result.
func RespondList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Message: message,
	})
}

func RespondNotImplemented(c *gin.Context, message string) {
	c.JSON(http.StatusNotImplemented, APIResponse{
		Success: false,
		Message: message,
	})
}

// HandleServiceError maps service-layer failures onto HTTP statuses.
// Constraint violations surfaced by Postgres (class 23) count as bad input;
// anything unclassified is a 500 whose detail is only exposed outside
// production.
func HandleServiceError(c *gin.Context, err error, message string) {
	var pgErr *pgconn.PgError

	switch {
	case errors.Is(err, ErrFeedbackNotFound):
		RespondError(c, http.StatusNotFound, "Feedback not found")
	case errors.Is(err, ErrCourseNotFound):
		RespondError(c, http.StatusNotFound, "Course not found")
	case errors.Is(err, ErrInvalidRating):
		RespondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	case errors.Is(err, ErrMissingFields):
		RespondError(c, http.StatusBadRequest, "Please provide student_name, course_code, comments, and rating")
	case errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23":
		// 23514 check_violation, 23502 not_null_violation, 23505 unique_violation
		log.Printf("Constraint violation: %v", err)
		RespondError(c, http.StatusBadRequest, pgErr.Message)
	case errors.Is(err, gorm.ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, message)
	default:
		log.Printf("Unhandled service error: %v", err)
		resp := APIResponse{
			Success: false,
			Message: message,
		}
		if os.Getenv("APP_ENV") != "production" {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
