package handlers

import (
	"encoding/json"
	"errors"
	"reflect"

	domainerrors "katalog/internal/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler renders errors returned by handlers and middleware.
// Domain errors keep their code; anything unexpected becomes a 500 without details.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var domainErr *domainerrors.Error
		if errors.As(err, &domainErr) {
			if domainErr.Code == domainerrors.CodeInternal {
				log.Error("request failed", zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(domainErr.HTTPStatus()).JSON(domainErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"code":    codeForStatus(fiberErr.Code),
				"message": fiberErr.Message,
			})
		}

		log.Error("unhandled request error", zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(domainerrors.ErrInternal)
	}
}

func codeForStatus(status int) domainerrors.Code {
	switch status {
	case fiber.StatusNotFound:
		return domainerrors.CodeNotFound
	case fiber.StatusUnauthorized:
		return domainerrors.CodeUnauthorized
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
		return domainerrors.CodeValidation
	default:
		return domainerrors.CodeInternal
	}
}

// parseBody decodes the request body into out, reporting failures as 400.
// A value of the wrong JSON type is reported against its field.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domainerrors.FieldError(typeErr.Field, typeMessage(typeErr.Type))
		}
		return domainerrors.Validation("invalid request body: " + err.Error())
	}
	return nil
}

func typeMessage(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "has an invalid type"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Slice, reflect.Array:
		return "must be a list"
	default:
		return "has an invalid type"
	}
}
