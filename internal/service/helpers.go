package service

import (
	stderrors "errors"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"peerswipe/internal/errors"
	"peerswipe/internal/model"
)

// textPolicy strips every tag; user text is stored and served as plain text.
var textPolicy = bluemonday.StrictPolicy()

// cleanText removes markup from user supplied text and trims it.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// storeError classifies a repository error: a missing row becomes NotFound
// with the given message, anything else is unexpected.
func storeError(err error, notFound, op string) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NotFound(notFound)
	}
	return errors.Unexpected(op, err)
}

func requireAdmin(p model.Principal) error {
	if !p.IsAdmin {
		return errors.Forbidden("Admin access only")
	}
	return nil
}
