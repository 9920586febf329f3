package validators

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"darasa/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields under their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// Check is an extra rule run after the struct tags pass. It returns field
// errors keyed by wire name.
type Check[T any] func(req *T) map[string]string

// Body decodes the JSON body into T, validates it and stores it under key.
func Body[T any](key string, checks ...Check[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"body": "Invalid request body!",
			})
		}
		if errors := Struct(reqData, checks...); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals(key, reqData)
		return c.Next()
	}
}

// Query decodes the query string into T, starting from defaults.
func Query[T any](key string, defaults func() *T, checks ...Check[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := defaults()
		if err := c.QueryParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"query": "Invalid query parameters!",
			})
		}
		if errors := Struct(reqData, checks...); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals(key, reqData)
		return c.Next()
	}
}

// PathIDs requires each named route parameter to be a positive integer.
func PathIDs(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)
		for _, name := range names {
			id, err := strconv.ParseUint(c.Params(name), 10, 64)
			if err != nil || id == 0 {
				errors[name] = fmt.Sprintf("%s must be a positive integer!", name)
				continue
			}
			c.Locals(pathKey(name), uint(id))
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		return c.Next()
	}
}

// PathID returns a parameter stored by PathIDs.
func PathID(c *fiber.Ctx, name string) uint {
	id, _ := c.Locals(pathKey(name)).(uint)
	return id
}

// Validated returns the request stored by Body or Query under key.
func Validated[T any](c *fiber.Ctx, key string) (*T, bool) {
	req, ok := c.Locals(key).(*T)
	return req, ok
}

// Struct runs the validate tags and then checks, returning one message per field.
func Struct[T any](reqData *T, checks ...Check[T]) map[string]string {
	errors := make(map[string]string)
	if err := validate.Struct(reqData); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				if _, seen := errors[fe.Field()]; !seen {
					errors[fe.Field()] = message(fe)
				}
			}
		} else {
			errors["body"] = err.Error()
		}
	}
	if len(errors) > 0 {
		return errors
	}
	for _, check := range checks {
		for field, msg := range check(reqData) {
			errors[field] = msg
		}
	}
	return errors
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "min":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters long!", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", field, fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters long!", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s!", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid!", field)
	}
}

func pathKey(name string) string {
	return "path:" + name
}
