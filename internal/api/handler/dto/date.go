package dto

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Date is the request-side expected_order_date. It takes an RFC 3339
// timestamp, a timestamp without offset or a bare calendar date. Values
// without an offset are read as UTC.
type Date time.Time

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// ParseDate parses s with the layouts Date accepts.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t.UTC()), true
		}
	}
	return Date{}, false
}

// UnmarshalJSON reports every failure as *json.UnmarshalTypeError so the
// decoder attaches the JSON key of the offending member.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeFor[Date]()}
	}
	parsed, ok := ParseDate(s)
	if !ok {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: reflect.TypeFor[Date]()}
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d))
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}
