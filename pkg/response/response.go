package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"product-catalog-service/pkg/errs"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// WriteSuccessResponse writes the payload as-is. The API contract is plain
// JSON documents and arrays, not an envelope.
func WriteSuccessResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

func WriteMessageResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)

	resp := ErrorResponse{}
	var fieldErrs errs.FieldErrors
	if errors.As(err, &fieldErrs) {
		resp.Message = "Validation failed"
		resp.Errors = fieldErrs
	} else if statusCode == errs.ErrStatusInternalServer {
		resp.Message = errs.ErrInternalServer.Error()
	} else {
		resp.Message = err.Error()
	}

	return c.JSON(statusCode, resp)
}
