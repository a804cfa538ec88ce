// Package parser converts raw ICS calendar exports into normalized timetable
// events. It keeps recurrence rules verbatim and never expands them.
package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"timetable-assistant/internal/model"
	pkgLog "timetable-assistant/pkg/log"
)

// ErrMalformedDocument marks input the ICS library could not parse at all.
// A well-formed calendar with zero events is not an error.
var ErrMalformedDocument = errors.New("malformed calendar document")

var (
	classTitleRe = regexp.MustCompile(`Class Title: ([^\n]+)`)
	instructorRe = regexp.MustCompile(`Instructor: ([^\n]+)`)

	// RFC 5545 duration value, e.g. PT1H30M, P1DT2H, PT45M.
	icsDurationRe = regexp.MustCompile(`^([+-]?)P(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)
)

// Parser parses ICS payloads into model.Event slices.
type Parser struct {
	l pkgLog.Logger
}

// New creates a Parser.
func New(l pkgLog.Logger) *Parser {
	return &Parser{l: l}
}

// Parse parses a full ICS document and returns every event it can interpret,
// past ones included — callers decide how to treat aged-out events. Events the
// library cannot interpret individually are skipped; a document that is not a
// calendar at all yields ErrMalformedDocument.
func (p *Parser) Parse(ctx context.Context, raw []byte) ([]model.Event, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(raw))
	if err != nil {
		p.l.Warnf(ctx, "parser: ics parse failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	events := make([]model.Event, 0)
	for _, ve := range cal.Events() {
		ev, perr := parseVEvent(ve)
		if perr != nil {
			// Skip this event but keep parsing the rest.
			p.l.Warnf(ctx, "parser: skipping vevent: %v", perr)
			continue
		}
		events = append(events, ev)
	}

	p.l.Debugf(ctx, "parser: parsed %d event(s)", len(events))
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (model.Event, error) {
	var out model.Event

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = unescapeText(p.Value)
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = unescapeText(p.Value)
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = unescapeText(p.Value)
	}

	// DTSTART / DTEND via the library's timezone-aware helpers.
	start, err := ve.GetStartAt()
	if err != nil {
		return out, fmt.Errorf("missing or invalid DTSTART: %w", err)
	}
	out.Start = start

	if end, err := ve.GetEndAt(); err == nil {
		out.End = end
		out.Duration = formatDuration(end.Sub(start))
	} else if d := explicitDuration(ve); d != nil {
		// No DTEND but an explicit DURATION property.
		out.End = start.Add(*d)
		out.Duration = formatDuration(*d)
	} else {
		// No explicit end or duration: default to one hour.
		out.End = start.Add(time.Hour)
		out.Duration = "PT1H"
	}

	out.Status = model.DefaultStatus
	if p := ve.GetProperty(ical.ComponentPropertyStatus); p != nil && p.Value != "" {
		out.Status = p.Value
	}

	// RRULE is recorded verbatim, never expanded.
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.Recurrence = p.Value
	}

	out.ClassTitle = extractLabel(classTitleRe, out.Description)
	out.Instructor = extractLabel(instructorRe, out.Description)

	return out, nil
}

// explicitDuration reads the DURATION property, or nil when absent/invalid.
func explicitDuration(ve *ical.VEvent) *time.Duration {
	p := ve.GetProperty(ical.ComponentProperty(ical.PropertyDuration))
	if p == nil || p.Value == "" {
		return nil
	}
	d, err := parseICSDuration(p.Value)
	if err != nil {
		return nil
	}
	return &d
}

// parseICSDuration parses an RFC 5545 duration value (weeks/days/hours/
// minutes/seconds; year and month designators are not part of the grammar).
func parseICSDuration(v string) (time.Duration, error) {
	m := icsDurationRe.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return 0, fmt.Errorf("invalid duration value %q", v)
	}

	var d time.Duration
	for i, unit := range []time.Duration{
		7 * 24 * time.Hour, // weeks
		24 * time.Hour,     // days
		time.Hour,
		time.Minute,
		time.Second,
	} {
		if m[i+2] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+2])
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q", v)
		}
		d += time.Duration(n) * unit
	}
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}

// unescapeText reverses RFC 5545 TEXT escaping: `\n`/`\N` become a newline,
// and `\,`, `\;`, `\\` become the literal character.
func unescapeText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// extractLabel returns the first trimmed match of a "<Label>: value" line,
// or "" when the label is absent.
func extractLabel(re *regexp.Regexp, description string) string {
	m := re.FindStringSubmatch(description)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// formatDuration renders hours and minutes as an ISO-8601 style token,
// e.g. 90m -> PT1H30M. Negative spans from malformed sources are rendered
// as-is, not corrected.
func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("PT%dH%dM", hours, minutes)
}
