package movie

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire and input format of release dates.
const DateLayout = "2006-01-02"

// Movie represents a production that roles are cast for.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate Date    `json:"release_date"`
	Company     string  `json:"company"`
	Description *string `json:"description"`
}

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// MarshalJSON renders the date in [DateLayout].
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldReleaseDate = "release_date"
	FieldCompany     = "company"
	FieldDescription = "description"
)
