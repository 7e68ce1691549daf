package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookexchange/internal/database/lifecycle"
	"github.com/mrlokans/bookexchange/internal/entities"
	"github.com/mrlokans/bookexchange/internal/schema"
)

// --- Response Types ---

// ErrorResponse is the error body returned by every API route. Error is
// only set for duplicate records.
type ErrorResponse struct {
	Error string `json:"error,omitempty"`
	Msg   string `json:"msg"`
}

// MessageResponse is returned by routes that have no record to show.
type MessageResponse struct {
	Msg string `json:"msg"`
}

const (
	msgInvalidJSON   = "cuerpo JSON invalido"
	msgInternalError = "error interno del servidor"
)

// --- Error Types ---

// missingError reports that a record addressed by the request, directly or
// through a reference field, does not exist or was deleted.
type missingError struct {
	entity string
}

func (e *missingError) Error() string { return e.entity + " no encontrado" }

func (e *missingError) Unwrap() error { return lifecycle.ErrNotFound }

// duplicateError carries the message for a unique field collision.
type duplicateError struct {
	msg string
}

func (e *duplicateError) Error() string { return e.msg }

func (e *duplicateError) Unwrap() error { return lifecycle.ErrConflict }

// asMissing names the entity behind a not-found error.
func asMissing(entity string, err error) error {
	if errors.Is(err, lifecycle.ErrNotFound) {
		return &missingError{entity: entity}
	}
	return err
}

// onDuplicate replaces a unique field conflict with a specific message.
func onDuplicate(err error, msg string) error {
	if errors.Is(err, lifecycle.ErrConflict) {
		return &duplicateError{msg: msg}
	}
	return err
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Msg: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Msg: entity + " no encontrado"})
}

// respondDuplicate sends the 400 response for a unique field collision.
func respondDuplicate(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ERROR", Msg: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, logger logrus.FieldLogger, err error, context string) {
	logger.WithError(err).WithFields(logrus.Fields{
		"context": context,
		"path":    c.Request.URL.Path,
	}).Error("internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: msgInternalError})
}

// respondError maps domain errors onto responses. entity names the record
// the route addresses.
func respondError(c *gin.Context, logger logrus.FieldLogger, err error, entity string) {
	var (
		fieldErr   *schema.FieldError
		missingErr *missingError
		dupErr     *duplicateError
	)
	switch {
	case errors.As(err, &fieldErr):
		respondBadRequest(c, fieldErr.Message)
	case errors.As(err, &missingErr):
		respondNotFound(c, missingErr.entity)
	case errors.Is(err, lifecycle.ErrNotFound):
		respondNotFound(c, entity)
	case errors.As(err, &dupErr):
		respondDuplicate(c, dupErr.msg)
	case errors.Is(err, lifecycle.ErrConflict):
		respondDuplicate(c, entity+" ya existe!!!")
	default:
		respondInternalError(c, logger, err, entity)
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondDeleted confirms a soft delete.
func respondDeleted(c *gin.Context, entity string) {
	c.JSON(http.StatusOK, MessageResponse{Msg: entity + " eliminado"})
}

// --- Request Parsing ---

// bindRequest decodes the JSON body into req and validates its schema,
// responding with 400 on failure.
func bindRequest(c *gin.Context, req schema.Validator) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, msgInvalidJSON)
		return false
	}
	if err := req.Rules().Validate(); err != nil {
		var fieldErr *schema.FieldError
		if errors.As(err, &fieldErr) {
			respondBadRequest(c, fieldErr.Message)
		} else {
			respondBadRequest(c, err.Error())
		}
		return false
	}
	return true
}

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(c, paramName+" invalido")
		return 0, false
	}
	return uint(id), true
}

// parseStatusFilter reads the optional ?estado= list filter.
func parseStatusFilter(c *gin.Context) (entities.Status, bool) {
	status := entities.Status(c.Query("estado"))
	switch status {
	case "", entities.StatusActive, entities.StatusDeleted:
		return status, true
	default:
		respondBadRequest(c, "estado invalido")
		return "", false
	}
}
