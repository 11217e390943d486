package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout to format kalendarzowy używany w API i w bazie
const DateLayout = "2006-01-02"

// Date to data kalendarzowa z dokładnością do dnia (bez godziny i strefy).
// Serializowana w JSON jako "RRRR-MM-DD".
type Date struct {
	t time.Time
}

// NewDate tworzy datę z podanego roku, miesiąca i dnia
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parsuje datę w formacie "RRRR-MM-DD"
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("nieprawidłowy format daty %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// DateOf obcina znacznik czasu do pełnego dnia w UTC
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// Before sprawdza czy data jest ściśle wcześniejsza niż inna
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Equal sprawdza czy dwie daty wskazują ten sam dzień
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// IsZero sprawdza czy data nie została ustawiona
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time zwraca datę jako time.Time (północ UTC)
func (d Date) Time() time.Time {
	return d.t
}

// String zwraca datę w formacie "RRRR-MM-DD"
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON serializuje datę jako "RRRR-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parsuje datę z formatu "RRRR-MM-DD"
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
