package http

import (
	"errors"
	"net/http"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/commands"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/services"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// statusAndCode maps a use-case error to an HTTP status and a stable machine
// code. Losing an acceptance race gets its own code so courier apps can
// distinguish "someone was faster" from a real conflict.
func statusAndCode(err error) (int, string) {
	var validationErrs validator.ValidationErrors
	var bindErr *echo.HTTPError
	if errors.As(err, &bindErr) {
		return bindErr.Code, "BAD_REQUEST"
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, commands.ErrOrderAlreadyTaken):
		return http.StatusConflict, "ORDER_ALREADY_TAKEN"
	case errors.Is(err, commands.ErrCompanyNotApproved),
		errors.Is(err, commands.ErrCourierNotApproved):
		return http.StatusForbidden, "NOT_APPROVED"
	case errors.Is(err, order.ErrCancellationWindowExpired):
		return http.StatusUnprocessableEntity, "CANCELLATION_WINDOW_EXPIRED"
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, commands.ErrTargetStatusNotAllowed),
		errors.Is(err, commands.ErrCourierNotAssigned):
		return http.StatusConflict, "INVALID_TRANSITION"
	case errors.Is(err, services.ErrOutOfServiceArea):
		return http.StatusUnprocessableEntity, "OUT_OF_SERVICE_AREA"
	case errors.Is(err, services.ErrDistanceExceeded):
		return http.StatusUnprocessableEntity, "DISTANCE_EXCEEDED"
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func writeError(ctx echo.Context, err error) error {
	status, code := statusAndCode(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, errorResponse{
		Code:    code,
		Message: message,
	})
}
