package handler

import (
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/repository"
    "github.com/iliyamo/hotel-reservation/internal/service"
)

const dateLayout = "2006-01-02"

// getUserID extracts the authenticated staff ID stored in the context by
// the JWT middleware.  The claim arrives as whatever type the JSON
// decoder produced, so several representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
    switch v := c.Get("user_id").(type) {
    case float64:
        return uint64(v), nil
    case string:
        return strconv.ParseUint(v, 10, 64)
    case uint64:
        return v, nil
    }
    return 0, errors.New("no user in context")
}

// parseDate parses a YYYY-MM-DD query or body value into a UTC calendar
// date.
func parseDate(s string) (time.Time, error) {
    return time.Parse(dateLayout, s)
}

// domainError translates domain failures into HTTP responses: missing
// records map to 404, booking conflicts to 409 and lifecycle violations
// to 422.  Anything else is reported as a generic database error.
func domainError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, repository.ErrRoomNotFound),
        errors.Is(err, repository.ErrGuestNotFound),
        errors.Is(err, repository.ErrReservationNotFound),
        errors.Is(err, repository.ErrPaymentNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrRoomExists):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    case errors.Is(err, service.ErrRoomUnavailable):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    case errors.Is(err, service.ErrInvalidTransition):
        return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
}
