package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DataResponse writes the {status,message,data} envelope with statusCode as
// both the HTTP status and the envelope status.
func DataResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, APIResponse{
		Status:  statusCode,
		Message: http.StatusText(statusCode),
		Data:    data,
	})
}

// SuccessResponse writes success response.
func SuccessResponse(c echo.Context, data interface{}) error {
	return DataResponse(c, http.StatusOK, data)
}

// BadRequestResponse writes bad request error.
func BadRequestResponse(c echo.Context, data interface{}) error {
	return DataResponse(c, http.StatusBadRequest, data)
}

// InternalServerErrorResponse writes internal server error.
func InternalServerErrorResponse(c echo.Context) error {
	return DataResponse(c, http.StatusInternalServerError, "Something went wrong")
}

// AppErrorResponse writes an error response. Ticker errors are mapped by kind.
func AppErrorResponse(c echo.Context, err error) error {
	appErr := FromTickerError(err)
	return DataResponse(c, appErr.Status, []*AppError{appErr})
}
