package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Error is the only error shape handlers raise. Code is an HTTP-style status
// code, Message a short human-readable phrase, Detail a free-form payload
// (string or structured value).
type Error struct {
	Code    int
	Message string
	Detail  any
}

func New(code int, message string, detail any) *Error {
	return &Error{Code: code, Message: message, Detail: detail}
}

func (e *Error) Error() string {
	return e.Message
}

// response is the uniform error body rendered for every failed request.
type response struct {
	Message string `json:"message"`
	Detail  any    `json:"detail"`
	Code    int    `json:"code"`
	Method  string `json:"method"`
	URL     string `json:"url"`
}

// Handler returns the terminal error-rendering stage for the Fiber app. Every
// error a route handler returns lands here. An *Error is rendered verbatim; a
// router-level *fiber.Error keeps its status; anything else defaults to 500
// with an empty detail object.
func Handler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := err.Error()
		var detail any = struct{}{}

		var appErr *Error
		var fiberErr *fiber.Error
		if errors.As(err, &appErr) {
			code = appErr.Code
			message = appErr.Message
			if appErr.Detail != nil {
				detail = appErr.Detail
			}
		} else if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		log.WithFields(logrus.Fields{
			"method": c.Method(),
			"url":    c.OriginalURL(),
			"code":   code,
		}).Error(message)

		return c.Status(code).JSON(response{
			Message: message,
			Detail:  detail,
			Code:    code,
			Method:  c.Method(),
			URL:     c.OriginalURL(),
		})
	}
}
