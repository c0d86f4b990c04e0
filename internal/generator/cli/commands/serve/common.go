package serve

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/mask"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/provider"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

type handlerOptions struct {
	useCase usecase.UseCase
	metrics http.Handler
	fs      afero.Fs
	maxRows uint64
}

type httpHandler func(handlerOptions, echo.Context) error

func toEchoHandler(
	opts handlerOptions,
	handler httpHandler,
) func(echo.Context) error {
	return func(c echo.Context) error {
		return handler(opts, c)
	}
}

// response type used to describe response for http client.
type response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// generateResponse type used to describe generated values of one provider method.
type generateResponse struct {
	Key    string `json:"key"`
	Values []any  `json:"values"`
}

// schemaResponse type used to describe rows generated by schema.
type schemaResponse struct {
	Schema string           `json:"schema"`
	Fields []string         `json:"fields"`
	Rows   []map[string]any `json:"rows"`
}

// getRequestBody returns contents of http request body.
func getRequestBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.Errorf("failed to read request body: %v", err)
	}

	defer func() {
		if err = c.Request().Body.Close(); err != nil {
			slog.Error("unable to close request body", "error", err)
		}
	}()

	return body, nil
}

// parseSchema reads schema from JSON request body.
// On failure response is already sent and nil schema is returned.
func parseSchema(c echo.Context) (*models.SchemaConfig, error) {
	body, err := getRequestBody(c)
	if err != nil {
		return nil, sendError(c, http.StatusInternalServerError, "Unable to read request body", err)
	}

	var schema models.SchemaConfig

	if err = schema.ParseFromJSON(body); err != nil {
		return nil, sendError(c, http.StatusBadRequest, "Schema is not valid", err)
	}

	return &schema, nil
}

// statusCode maps errors of generation to HTTP status codes.
func statusCode(err error) int {
	var (
		unknownMethodErr *provider.UnknownMethodError
		paramErr         *provider.ParamError
		localeErr        *locale.UnsupportedLocaleError
		maskErr          *mask.InvalidMaskError
	)

	switch {
	case errors.As(err, &unknownMethodErr):
		return http.StatusNotFound
	case errors.As(err, &paramErr), errors.As(err, &localeErr), errors.As(err, &maskErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sendError(c echo.Context, code int, message string, err error) error {
	return sendResponse(c, "json", code, response{Message: message, Error: err.Error()})
}

// sendResponse function sets headers, status code and body for response and send it to client.
func sendResponse(c echo.Context, format string, statusCode int, response any) error {
	var err error

	switch format {
	case "json":
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		err = c.JSON(statusCode, response)
	case "string":
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)

		strResponse, ok := response.(string)
		if !ok {
			return errors.New("response is not a string")
		}

		err = c.String(statusCode, strResponse)
	}

	if err != nil {
		return errors.Errorf("failed to send response: %v", err)
	}

	return nil
}

func rejectRequestWithMissingLength(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().ContentLength == -1 {
			return echo.NewHTTPError(http.StatusLengthRequired, "Content-Length header required")
		}

		return next(c)
	}
}

func rejectRequestWithBody(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.ContentLength > 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "request must not have a body")
		}

		if req.ContentLength == -1 {
			buf := make([]byte, 1)

			n, err := req.Body.Read(buf)
			if err == nil && n > 0 {
				return echo.NewHTTPError(http.StatusBadRequest, "request must not have a body")
			}
		}

		return next(c)
	}
}
