package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators teaches gin's validator the project rules and makes
// field errors use JSON names. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		v.RegisterValidation("url_or_data", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return strings.HasPrefix(s, "data:") || IsHTTPURL(s)
		})
		v.RegisterValidation("avatar_url", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return strings.HasPrefix(s, "data:image") || IsHTTPURL(s)
		})
	})
}

// IsHTTPURL accepts absolute URLs with a scheme and a host.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// BindJSON decodes and validates the request body. On failure it writes the
// 400 response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		ValidationFailed(c, FieldErrors(err))
		return false
	}
	return true
}

// FieldErrors flattens binding errors into a field -> message map.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fieldPath(fe)] = describe(fe)
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		out[field] = fmt.Sprintf("must be of type %s", typeErr.Type.String())
		return out
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		out["body"] = "must be a valid JSON object"
		return out
	}

	out["body"] = err.Error()
	return out
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isString(fe) {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString(fe) {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "url":
		return "must be a valid URL"
	case "url_or_data":
		return "must be a valid URL or data URI"
	case "avatar_url":
		return "must be a valid URL or data:image URI"
	case "datetime":
		return "must be an ISO 8601 date-time"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}

func isString(fe validator.FieldError) bool {
	k := fe.Kind()
	if k == reflect.Ptr {
		k = fe.Type().Elem().Kind()
	}
	return k == reflect.String
}
