package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/model"
)

const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// decodeBody reads a JSON body into dst and runs struct validation on it.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apiErrors.NewErrValidation("Invalid JSON body")
	}

	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apiErrors.NewErrValidation("Invalid request")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return apiErrors.NewErrValidation(fmt.Sprintf("%s is required", fe.Field()))
	case "email":
		return apiErrors.NewErrValidation("Invalid email format")
	case "url":
		return apiErrors.NewErrInvalidMediaURL()
	case "min":
		return apiErrors.NewErrValidation(fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
	case "max":
		return apiErrors.NewErrValidation(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	default:
		return apiErrors.NewErrValidation(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}

// userIDParam parses the {userId} path parameter.
func userIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		return uuid.Nil, apiErrors.NewErrValidation("Invalid user ID format")
	}
	return id, nil
}

// pageParams reads page and limit from the query string. Absent values take
// the defaults; range checks are left to the services.
func pageParams(r *http.Request) (model.PageRequest, error) {
	req := model.PageRequest{Page: model.DefaultPage, Limit: model.DefaultLimit}

	q := r.URL.Query()
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return model.PageRequest{}, apiErrors.NewErrValidation("Page must be an integer")
		}
		req.Page = page
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return model.PageRequest{}, apiErrors.NewErrValidation("Limit must be an integer")
		}
		req.Limit = limit
	}
	return req, nil
}
