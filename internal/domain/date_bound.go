package domain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// DateBound is one end of an export date range: either an epoch timestamp
// or a date typed by a user in their display format.
type DateBound struct {
	Text    string
	Epoch   float64
	Numeric bool
}

// EpochBound returns a numeric bound
func EpochBound(seconds int64) DateBound {
	return DateBound{Epoch: float64(seconds), Numeric: true}
}

// TextBound returns a bound that must go through the date parser
func TextBound(text string) DateBound {
	return DateBound{Text: text}
}

// ParseDateBound classifies raw input. Decimal and exponent notation
// count as numeric; surrounding whitespace is ignored. A number too large
// for a float64 is still numeric and carries ±Inf.
func ParseDateBound(raw string) DateBound {
	trimmed := strings.TrimSpace(raw)
	if numericPattern.MatchString(trimmed) {
		v, err := strconv.ParseFloat(trimmed, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return DateBound{Text: raw, Epoch: v, Numeric: true}
		}
	}
	return TextBound(raw)
}

// String returns the bound as the caller supplied it
func (b DateBound) String() string {
	if b.Numeric && b.Text == "" {
		return strconv.FormatFloat(b.Epoch, 'f', -1, 64)
	}
	return b.Text
}

// EpochRange is a normalized export range in epoch seconds. A To derived
// from a calendar day is the following midnight and is exclusive; a numeric
// To is used as given and is inclusive.
type EpochRange struct {
	From        int64
	To          int64
	ToExclusive bool
}

// QueryBounds returns the inclusive [from, to] pair used to filter on
// date_creation
func (r EpochRange) QueryBounds() (int64, int64) {
	if r.ToExclusive {
		return r.From, r.To - 1
	}
	return r.From, r.To
}
