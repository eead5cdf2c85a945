package service

import (
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	apiErrors "github.com/dtroode/socialfeed-server/internal/errors"
	"github.com/dtroode/socialfeed-server/internal/model"
)

// MinPasswordLength is the shortest password accepted on registration.
const MinPasswordLength = 6

// Username length bounds, in characters.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
)

func validatePage(req model.PageRequest) error {
	if req.Page < 1 {
		return apiErrors.NewErrInvalidPage()
	}
	if req.Limit < 1 || req.Limit > model.MaxLimit {
		return apiErrors.NewErrInvalidLimit(model.MaxLimit)
	}
	// (Page-1)*Limit must fit in an int.
	if req.Page-1 > (math.MaxInt-req.Limit)/req.Limit {
		return apiErrors.NewErrInvalidPage()
	}
	return nil
}

// normalizeContent trims surrounding whitespace and checks the length in characters.
func normalizeContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", apiErrors.NewErrEmptyContent()
	}
	if utf8.RuneCountInString(trimmed) > model.MaxPostContentLength {
		return "", apiErrors.NewErrContentTooLong(model.MaxPostContentLength)
	}
	return trimmed, nil
}

// validateMediaURL accepts absolute URLs only.
func validateMediaURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return apiErrors.NewErrInvalidMediaURL()
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
