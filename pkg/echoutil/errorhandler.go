package echoutil

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/mardi4nfdi/fdofacade/pkg/api/types/errors"
)

// ErrorHandler renders errors as apierr.ErrorResponse.
//
// Causes of errors are logged, but not sent to clients.
// Errors other than *echo.HTTPError are rendered as 500 Internal Server Error.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		he := new(echo.HTTPError)
		if !errors.As(err, &he) {
			he = apierr.InternalServerError(err)
		}

		var body apierr.ErrorResponse
		switch m := he.Message.(type) {
		case apierr.ErrorMessage:
			body = m.Response()
		case *apierr.ErrorMessage:
			body = m.Response()
		case string:
			body = apierr.ErrorResponse{Message: apierr.ErrorMessage{Reason: m}}
		default:
			body = apierr.ErrorResponse{
				Message: apierr.ErrorMessage{Reason: http.StatusText(he.Code)},
			}
		}

		if he.Code >= http.StatusInternalServerError {
			e.Logger.Error(err)
		} else {
			e.Logger.Info(err)
		}

		if c.Response().Committed {
			return
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(he.Code)
		} else {
			werr = c.JSON(he.Code, body)
		}
		if werr != nil {
			e.Logger.Error(werr)
		}
	}
}
