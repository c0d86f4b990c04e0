package serve

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/cli/utils"
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output/general"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
)

const (
	countQueryParam  = "count"
	localeQueryParam = "locale"
	seedQueryParam   = "seed"
	forceQueryParam  = "force"
)

func setupRoutes(opts handlerOptions, e *echo.Echo) {
	get := e.Group("", rejectRequestWithBody)
	get.GET("/locales", toEchoHandler(opts, handleLocales))
	get.GET("/providers", toEchoHandler(opts, handleProviders))
	get.GET("/generate/:key", toEchoHandler(opts, handleGenerate))
	get.GET("/status/:taskID", toEchoHandler(opts, handleStatus))

	if opts.metrics != nil {
		get.GET("/metrics", echo.WrapHandler(opts.metrics))
	}

	post := e.Group("", rejectRequestWithMissingLength, middleware.BodyLimit("1M"))
	post.POST("/schema", toEchoHandler(opts, handleSchema))
	post.POST("/validate", toEchoHandler(opts, handleValidate))
	post.POST("/tasks", toEchoHandler(opts, handleCreateTask))
}

// handleLocales handler for endpoint 'locales'.
func handleLocales(opts handlerOptions, c echo.Context) error {
	return sendResponse(c, "json", http.StatusOK, opts.useCase.Locales())
}

// handleProviders handler for endpoint 'providers'.
func handleProviders(opts handlerOptions, c echo.Context) error {
	return sendResponse(c, "json", http.StatusOK, opts.useCase.Providers())
}

// handleGenerate handler for endpoint 'generate'. Query params other
// than count, locale and seed are passed to provider method.
func handleGenerate(opts handlerOptions, c echo.Context) error {
	config, err := parseGenerateConfig(c, opts.maxRows)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid query params", err)
	}

	values, err := opts.useCase.Generate(c.Request().Context(), config)
	if err != nil {
		return sendError(c, statusCode(err), "Failed to generate values", err)
	}

	return sendResponse(c, "json", http.StatusOK, generateResponse{Key: config.Key, Values: values})
}

func parseGenerateConfig(c echo.Context, maxRows uint64) (usecase.GenerateConfig, error) {
	config := usecase.GenerateConfig{
		Key:    c.Param("key"),
		Locale: c.QueryParam(localeQueryParam),
		Count:  1,
	}

	var err error

	if raw := c.QueryParam(countQueryParam); raw != "" {
		config.Count, err = strconv.Atoi(raw)
		if err != nil || config.Count < 1 {
			return config, errors.Errorf("count should be positive integer, got %q", raw)
		}

		if uint64(config.Count) > maxRows {
			return config, errors.Errorf("count should be less or equal to %d, got %d", maxRows, config.Count)
		}
	}

	if raw := c.QueryParam(seedQueryParam); raw != "" {
		config.Seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return config, errors.Errorf("seed should be integer, got %q", raw)
		}
	}

	pairs := make([]string, 0, len(c.QueryParams()))

	for name, values := range c.QueryParams() {
		switch name {
		case countQueryParam, localeQueryParam, seedQueryParam:
			continue
		}

		pairs = append(pairs, fmt.Sprintf("%s=%s", name, values[0]))
	}

	if config.Params, err = utils.ParseParams(pairs); err != nil {
		return config, err //nolint:wrapcheck
	}

	return config, nil
}

// handleSchema handler for endpoint 'schema'. Rows are generated
// synchronously and returned as objects keyed by field names.
func handleSchema(opts handlerOptions, c echo.Context) error {
	schema, err := parseSchema(c)
	if schema == nil {
		return err
	}

	if schema.RowsCount > opts.maxRows {
		return sendError(
			c, http.StatusBadRequest, "Schema is not valid",
			errors.Errorf("rows_count should be less or equal to %d, got %d", opts.maxRows, schema.RowsCount),
		)
	}

	var (
		mutex sync.Mutex
		rows  = make([]*models.DataRow, 0, schema.RowsCount)
	)

	schema.OutputConfig = &models.OutputConfig{
		Type: "devnull",
		DevNullParams: &models.DevNullConfig{
			Handler: func(row *models.DataRow) error {
				mutex.Lock()
				defer mutex.Unlock()

				rows = append(rows, row)

				return nil
			},
		},
	}

	taskID, err := opts.useCase.CreateTask(c.Request().Context(), usecase.TaskConfig{
		Schema: schema,
		Output: general.NewOutput(opts.fs, schema, false, nil),
	})
	if err != nil {
		return sendError(c, statusCode(err), "Failed to start generation", err)
	}

	if err = opts.useCase.WaitResult(taskID); err != nil {
		return sendError(c, statusCode(err), "Failed to generate rows", err)
	}

	fields := schema.FieldNames()

	mutex.Lock()
	defer mutex.Unlock()

	result := schemaResponse{
		Schema: schema.Name,
		Fields: fields,
		Rows:   make([]map[string]any, 0, len(rows)),
	}

	for _, row := range rows {
		object := make(map[string]any, len(fields))
		for i, name := range fields {
			object[name] = row.Values[i]
		}

		result.Rows = append(result.Rows, object)
	}

	return sendResponse(c, "json", http.StatusOK, result)
}

// handleValidate handler for endpoint 'validate'.
func handleValidate(opts handlerOptions, c echo.Context) error {
	schema, err := parseSchema(c)
	if schema == nil {
		return err
	}

	if err = opts.useCase.ValidateSchema(schema); err != nil {
		return sendError(c, http.StatusBadRequest, "Schema is not valid", err)
	}

	return sendResponse(c, "json", http.StatusOK, response{Message: "Schema is valid"})
}

// handleCreateTask handler for endpoint 'tasks'. Generation continues after
// response is sent, its state is available by 'status' endpoint.
func handleCreateTask(opts handlerOptions, c echo.Context) error {
	schema, err := parseSchema(c)
	if schema == nil {
		return err
	}

	force, _ := strconv.ParseBool(c.QueryParam(forceQueryParam))

	taskID, err := opts.useCase.CreateTask(
		context.WithoutCancel(c.Request().Context()),
		usecase.TaskConfig{
			Schema: schema,
			Output: general.NewOutput(opts.fs, schema, force, nil),
		},
	)
	if err != nil {
		return sendError(c, statusCode(err), "Failed to start generation", err)
	}

	return sendResponse(c, "string", http.StatusOK, taskID)
}

// handleStatus handler for endpoint 'status'.
func handleStatus(opts handlerOptions, c echo.Context) error {
	taskID := c.Param("taskID")

	finished, err := opts.useCase.GetResult(taskID)
	if err != nil {
		return sendError(c, http.StatusInternalServerError, "Failed to retrieve generation result", err)
	}

	if finished {
		return sendResponse(c, "json", http.StatusOK, response{Message: "Generation completed successfully"})
	}

	progresses, err := opts.useCase.GetProgress(taskID)
	if err != nil {
		return sendError(c, http.StatusInternalServerError, "Failed to retrieve generation progress", err)
	}

	progressBySchema := make(map[string]uint64, len(progresses))

	for name, progress := range progresses {
		progressBySchema[name] = utils.GetPercentage(progress.Total, progress.Done)
	}

	return sendResponse(c, "json", http.StatusOK, progressBySchema)
}
