package handler

import (
	"errors"
	"log"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service error kinds onto HTTP statuses.
// Validation, limit and invariant violations are 400 with their specific
// message; not-found is 404. Anything else is a storage fault and comes back
// as a generic 500 without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	var limitErr *usecase.LimitExceededError
	var invariantErr *usecase.InvariantViolationError
	var notFoundErr *usecase.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		utils.BadRequest(c, validationErr.Message)
	case errors.As(err, &limitErr):
		utils.BadRequest(c, limitErr.Message)
	case errors.As(err, &invariantErr):
		utils.BadRequest(c, invariantErr.Message)
	case errors.As(err, &notFoundErr):
		utils.NotFound(c, notFoundErr.Message)
	default:
		log.Printf("Unexpected service error: %v", err)
		utils.InternalError(c, "Operation failed")
	}
}
