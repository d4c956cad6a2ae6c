package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"alfredoptarigan/job-board/internal/models"
	"alfredoptarigan/job-board/internal/services"
)

// timestampLayout matches JavaScript's Date.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var statusByKind = map[services.ErrorKind]int{
	services.KindValidation:  fiber.StatusBadRequest,
	services.KindNegotiation: fiber.StatusBadRequest,
	services.KindNotFound:    fiber.StatusNotFound,
	services.KindConflict:    fiber.StatusConflict,
	services.KindInternal:    fiber.StatusInternalServerError,
}

func respond(c *fiber.Ctx, code int, result any, meta *models.Meta) error {
	return c.Status(code).JSON(models.Envelope{
		Result: result,
		Meta:   meta,
	})
}

func statusMeta(code int) *models.Meta {
	return &models.Meta{Code: code, Name: utils.StatusMessage(code)}
}

// respondError renders a service error. Anything that is not a services.Error
// is treated as internal and its text is not sent to the caller.
func respondError(c *fiber.Ctx, err error) error {
	code, ok := statusByKind[services.KindOf(err)]
	if !ok {
		code = fiber.StatusInternalServerError
	}

	message := services.MsgDownstream
	var svcErr *services.Error
	if errors.As(err, &svcErr) && code < fiber.StatusInternalServerError {
		message = svcErr.Message
	}

	return writeError(c, code, message)
}

func writeError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(models.Envelope{
		Errors: &models.ErrorBody{
			Code:    code,
			Name:    utils.StatusMessage(code),
			Message: message,
			Details: models.ErrorDetails{
				Path:      c.Path(),
				Timestamp: time.Now().UTC().Format(timestampLayout),
				RequestID: c.GetRespHeader(fiber.HeaderXRequestID),
			},
		},
	})
}

// ErrorHandler is the Fiber error handler. It renders routing errors, body
// limit violations and recovered panics with the same envelope as handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := services.MsgDownstream

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		if code < fiber.StatusInternalServerError {
			message = fiberErr.Message
		}
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s failed: %v\n", c.Method(), c.Path(), err)
	}

	return writeError(c, code, message)
}

// queryInt reads an integer query parameter from its leading digits, so
// "2abc" reads as 2. An absent parameter, or one with no leading integer,
// yields defaultValue. A value too large for int yields 0, which the services
// reject like any other non-positive value.
func queryInt(c *fiber.Ctx, key string, defaultValue int) int {
	raw := strings.TrimLeft(c.Query(key), " \t\n\r")

	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return defaultValue
	}

	value, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return value
}
