package draft

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// CoerceError reports a field whose raw value cannot be converted.
type CoerceError struct {
	Key   string
	Label string
	Value string
	Err   error
}

func (e *CoerceError) Error() string {
	return fmt.Sprintf("field %s: cannot convert %q: %v", e.Key, e.Value, e.Err)
}

func (e *CoerceError) Unwrap() error { return e.Err }

// Present reports whether key holds a non-blank value.
func (d *Draft) Present(key string) bool {
	return strings.TrimSpace(d.values[key]) != ""
}

// Decimal parses key as a decimal number.
func (d *Draft) Decimal(key string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(d.values[key]))
}

// ErrNotWholeNumber is returned for integer fields holding anything but
// optionally signed decimal digits.
var ErrNotWholeNumber = errors.New("not a whole number")

// Int parses key as a base-10 whole number. Leading zeros are allowed;
// base prefixes such as 0x and digit separators are not.
func (d *Draft) Int(key string) (int, error) {
	return parseWhole(d.values[key])
}

func parseWhole(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("%q: %w", raw, ErrNotWholeNumber)
	}
	// cast parses with base 0, which reads a leading zero as octal
	if s = strings.TrimLeft(s, "0"); s == "" {
		s = "0"
	}
	return cast.ToIntE(sign + s)
}

// Date parses key as a calendar date. Any format dateparse understands is
// accepted; the result is truncated to the date.
func (d *Draft) Date(key string) (models.Date, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(d.values[key]), time.UTC)
	if err != nil {
		return models.Date{}, err
	}
	return models.DateOf(t), nil
}

// Coerce converts every non-blank field to its schema type. Blank fields are
// left out. The first failing field is returned as a *CoerceError.
func (d *Draft) Coerce() (map[string]any, error) {
	out := make(map[string]any, len(d.values))
	for _, f := range d.schema.Fields {
		raw := d.values[f.Key]
		if !d.Present(f.Key) {
			continue
		}

		var (
			v   any
			err error
		)
		switch f.Type {
		case Decimal:
			v, err = d.Decimal(f.Key)
		case Integer:
			v, err = d.Int(f.Key)
		case Date:
			v, err = d.Date(f.Key)
		case Category:
			v, err = models.ParseStoreCategory(raw)
		default:
			v = raw
		}
		if err != nil {
			return nil, &CoerceError{Key: f.Key, Label: f.Label, Value: raw, Err: err}
		}
		out[f.Key] = v
	}
	return out, nil
}

// Decode coerces d and decodes it into out, a pointer to one of the
// models input types.
func Decode(d *Draft, out any) error {
	values, err := d.Coerce()
	if err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		TagName:    "mapstructure",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(stringToDecimalHook, stringToDateHook),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("decode %s draft: %w", d.schema.Kind, err)
	}
	return nil
}

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	dateType    = reflect.TypeOf(models.Date{})
)

func stringToDecimalHook(f, t reflect.Type, data any) (any, error) {
	if f.Kind() != reflect.String || t != decimalType {
		return data, nil
	}
	return decimal.NewFromString(strings.TrimSpace(data.(string)))
}

func stringToDateHook(f, t reflect.Type, data any) (any, error) {
	if f.Kind() != reflect.String || t != dateType {
		return data, nil
	}
	return models.ParseDate(strings.TrimSpace(data.(string)))
}
