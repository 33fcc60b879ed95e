package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/categories"
	"github.com/dmitrijs2005/tasktracker/internal/timex"
	"github.com/google/uuid"
)

const (
	msgBlank    = "this field may not be blank"
	msgRequired = "this field is required"
)

// trimmedText trims s and records a violation on field when the result is
// empty or longer than maxLen runes.
func trimmedText(v *common.ValidationError, field, s string, maxLen int) string {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0:
		v.Add(field, msgBlank)
	case n > maxLen:
		v.Add(field, fmt.Sprintf("ensure this field has no more than %d characters", maxLen))
	}
	return s
}

// dueDate parses raw and rejects dates before today.
func dueDate(v *common.ValidationError, raw string, today time.Time) time.Time {
	d, err := timex.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		v.Add("due_date", "date has wrong format, use YYYY-MM-DD")
		return time.Time{}
	}
	if d.Before(today) {
		v.Add("due_date", "due date cannot be in the past")
	}
	return d
}

func parsePriority(v *common.ValidationError, raw string) models.Priority {
	p, ok := models.ParsePriority(raw)
	if !ok {
		v.Add("priority", `"`+raw+`" is not a valid choice`)
	}
	return p
}

func parseStatus(v *common.ValidationError, raw string) models.Status {
	s, ok := models.ParseStatus(raw)
	if !ok {
		v.Add("status", `"`+raw+`" is not a valid choice`)
	}
	return s
}

// validID reports whether id can name a stored row. Anything else cannot
// exist, so callers answer NotFound without asking the store.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ownedCategory resolves a category reference supplied in a task payload.
// A malformed, unknown or foreign id becomes a violation on category_id.
func ownedCategory(ctx context.Context, repo categories.Repository, v *common.ValidationError, ownerID, id string) (*models.Category, error) {
	if !validID(id) {
		v.Add("category_id", "invalid category")
		return nil, nil
	}
	c, err := repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			v.Add("category_id", "invalid category")
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
