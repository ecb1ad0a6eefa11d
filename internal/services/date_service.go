package services

import (
	"math"
	"strings"
	"time"

	"task-export/internal/domain"
	"task-export/internal/errors"
	"task-export/internal/i18n"
)

// ISODateLayout is accepted regardless of locale and is the export output format
const ISODateLayout = "2006-01-02"

// dateParserImpl implements the DateParser interface
type dateParserImpl struct {
	layouts  []string
	hint     string
	location *time.Location
}

// NewDateParser creates a DateParser. layout is the configured display
// layout and may be empty; format supplies the region layouts.
func NewDateParser(layout string, format i18n.DateFormat, loc *time.Location) DateParser {
	if loc == nil {
		loc = time.Local
	}

	layouts := make([]string, 0, len(format.Layouts)+5)
	if layout != "" {
		layouts = append(layouts, layout)
	}
	layouts = append(layouts, format.Layouts...)
	layouts = append(layouts,
		ISODateLayout,
		"2006/01/02",
		"2006-01-02 15:04",
		"2006-01-02 15:04:05",
	)

	return &dateParserImpl{layouts: layouts, hint: format.Hint, location: loc}
}

// Parse tries each layout in order, then RFC 3339
func (d *dateParserImpl) Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, d.parseError(value, nil)
	}

	for _, layout := range d.layouts {
		if t, err := time.ParseInLocation(layout, value, d.location); err == nil {
			return t, nil
		}
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, d.parseError(value, err)
	}
	return t.In(d.location), nil
}

func (d *dateParserImpl) parseError(value string, cause error) error {
	err := errors.NewParseError("date", value, cause)
	if d.hint != "" {
		err.WithContext(errors.ContextExpected, d.hint)
	}
	return err
}

func (d *dateParserImpl) ResetDateToMidnight(t time.Time) time.Time {
	t = t.In(d.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, d.location)
}

func (d *dateParserImpl) Location() *time.Location {
	return d.location
}

// dateNormalizerImpl implements the DateNormalizer interface
type dateNormalizerImpl struct {
	parser DateParser
}

// NewDateNormalizer creates a new DateNormalizer instance
func NewDateNormalizer(parser DateParser) DateNormalizer {
	return &dateNormalizerImpl{parser: parser}
}

func (n *dateNormalizerImpl) Normalize(from, to domain.DateBound) (domain.EpochRange, error) {
	var r domain.EpochRange

	if from.Numeric {
		r.From = clampEpoch(math.Ceil(from.Epoch))
	} else {
		t, err := n.parser.Parse(from.Text)
		if err != nil {
			return domain.EpochRange{}, withField(err, "from")
		}
		r.From = n.parser.ResetDateToMidnight(t).Unix()
	}

	// A numeric to bound is used as given, without the extra day.
	if to.Numeric {
		r.To = clampEpoch(math.Floor(to.Epoch))
	} else {
		t, err := n.parser.Parse(to.Text)
		if err != nil {
			return domain.EpochRange{}, withField(err, "to")
		}
		r.To = n.parser.ResetDateToMidnight(t.AddDate(0, 0, 1)).Unix()
		r.ToExclusive = true
	}

	return r, nil
}

func withField(err error, field string) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.WithContext("bound", field)
	}
	return err
}

func clampEpoch(v float64) int64 {
	switch {
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(v)
	}
}
