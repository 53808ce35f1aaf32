// Package validation normalizes untrusted request payloads into records the
// storage layers accept. Every function here is pure: no I/O, no clock, no
// store access, so validation failures are guaranteed to happen before any
// storage operation is attempted.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidationError marks a client-input defect. Handlers map it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// BookPayload is the raw add-book request body. PublicationYear stays untyped
// because clients send it both as a JSON number and as a numeric string.
type BookPayload struct {
	Title           string  `json:"title"`
	PublicationYear any     `json:"publication_year"`
	Author          *string `json:"author"`
	ImageURL        *string `json:"image_url"`
}

// BookRecord is a normalized book ready for insertion.
type BookRecord struct {
	Title           string
	PublicationYear *int
	Author          *string
	ImageURL        *string
}

// NewBook validates and normalizes an add-book payload. Title is required
// after trimming; publication_year must be an integer when present, and an
// absent or empty value normalizes to nil. Author and image URL pass through
// untouched.
func NewBook(p BookPayload) (BookRecord, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return BookRecord{}, invalid("Title is required")
	}

	year, ok := optionalInt(p.PublicationYear)
	if !ok {
		return BookRecord{}, invalid("publication_year must be an integer")
	}

	return BookRecord{
		Title:           title,
		PublicationYear: year,
		Author:          p.Author,
		ImageURL:        p.ImageURL,
	}, nil
}

// SearchQuery trims the raw q parameter. The second return value is false for
// a blank query, in which case the caller responds with an empty result set
// without touching storage.
func SearchQuery(raw string) (string, bool) {
	q := strings.TrimSpace(raw)
	return q, q != ""
}

// ReviewPayload is the raw add-review request body. BookID and Rating stay
// untyped for the same reason as BookPayload.PublicationYear.
type ReviewPayload struct {
	BookID     any     `json:"book_id"`
	Username   string  `json:"username"`
	Rating     any     `json:"rating"`
	ReviewText *string `json:"review_text"`
}

// ReviewRecord is a normalized review ready for insertion.
type ReviewRecord struct {
	BookID     int
	Username   string
	Rating     *int
	ReviewText *string
}

// NewReview validates and normalizes an add-review payload. book_id is
// required and coerced to an integer: mixed-type book_id values in the
// collection would make listings miss documents silently. Rating is optional
// but must be an integer in [0,5] when present. An empty review text
// normalizes to nil.
func NewReview(p ReviewPayload) (ReviewRecord, error) {
	if p.BookID == nil {
		return ReviewRecord{}, invalid("book_id is required")
	}
	bookID, err := coerceInt(p.BookID)
	if err != nil {
		return ReviewRecord{}, invalid("book_id must be an integer")
	}

	username := strings.TrimSpace(p.Username)
	if username == "" {
		return ReviewRecord{}, invalid("username is required")
	}

	rating, ok := optionalInt(p.Rating)
	if !ok || (rating != nil && (*rating < 0 || *rating > 5)) {
		return ReviewRecord{}, invalid("rating must be an integer between 0 and 5")
	}

	var text *string
	if p.ReviewText != nil {
		if trimmed := strings.TrimSpace(*p.ReviewText); trimmed != "" {
			text = &trimmed
		}
	}

	return ReviewRecord{
		BookID:     bookID,
		Username:   username,
		Rating:     rating,
		ReviewText: text,
	}, nil
}

// ReviewID parses a review identifier in the document store's format.
func ReviewID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, invalid("invalid id")
	}
	return id, nil
}

// optionalInt converts a decoded JSON value to *int. nil and a blank string
// both mean "absent". The bool result is false when the value is present but
// not an integer.
func optionalInt(v any) (*int, bool) {
	if v == nil {
		return nil, true
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil, true
	}
	n, err := coerceInt(v)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// coerceInt converts a decoded JSON value to an int. encoding/json delivers
// numbers as float64; numeric strings are accepted because HTML forms submit
// them that way.
func coerceInt(v any) (int, error) {
	switch value := v.(type) {
	case float64:
		n := int(value)
		if float64(n) != value {
			return 0, fmt.Errorf("not an integer: %v", value)
		}
		return n, nil
	case int:
		return value, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", value)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("not an integer: %v", v)
	}
}
