package model

import (
    "strings"
    "time"
)

// DateLayout is the calendar-date format used by the backend and the forms.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time component. It marshals as
// "YYYY-MM-DD" and is interpreted at local midnight.
type Date struct {
    time.Time
}

// NewDate truncates t to local midnight.
func NewDate(t time.Time) Date {
    y, m, d := t.Date()
    return Date{time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// ParseDate parses a "YYYY-MM-DD" string in the local time zone.
func ParseDate(s string) (Date, error) {
    t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
    if err != nil {
        return Date{}, err
    }
    return Date{t}, nil
}

func (d Date) String() string {
    if d.IsZero() {
        return ""
    }
    return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
    if d.IsZero() {
        return []byte("null"), nil
    }
    return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
    s := strings.Trim(string(b), `"`)
    if s == "" || s == "null" {
        *d = Date{}
        return nil
    }
    // Some endpoints return full timestamps; keep only the day.
    if len(s) > len(DateLayout) {
        s = s[:len(DateLayout)]
    }
    parsed, err := ParseDate(s)
    if err != nil {
        return err
    }
    *d = parsed
    return nil
}
