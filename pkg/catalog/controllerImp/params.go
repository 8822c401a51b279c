package controllerImp

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hempdb/entities"
)

// parseID is the validating radix-10 parse applied to every external id.
// Non-numeric input is a caller error, never a silent zero.
func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

// queryID reads an optional id query param; ok is false when it is absent.
func queryID(c echo.Context, name string) (id uint, ok bool, err error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, false, nil
	}
	id, err = parseID(v)
	return id, err == nil, err
}

func badParam(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid " + name})
}

func notFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"message": what + " not found"})
}

// fail logs the underlying error server-side and returns a generic 500 body.
func fail(c echo.Context, msg string, err error) error {
	log.Printf("[api] %s: %v", msg, err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": msg})
}

// created maps a storage Create result: field-level validation errors become
// a 400 with the full error list, anything else a 500.
func created(c echo.Context, body any, msg string, err error) error {
	if err == nil {
		return c.JSON(http.StatusCreated, body)
	}
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Validation error", "errors": verr.Errors})
	}
	return fail(c, msg, err)
}
