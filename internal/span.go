package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Limits mirror the largest span representable over the supported calendar range.
const (
	maxSpanDays    = 7_304_484
	maxSpanHours   = 175_307_616
	maxSpanMinutes = 10_518_456_960
	maxSpanSeconds = 631_107_417_600

	nanosPerSecond = int64(time.Second)
)

var (
	errSpanNegative = errors.New("span components must not be negative")
	errSpanOverflow = errors.New("span overflows representable range")
	errSpanNanos    = errors.New("span nanoseconds must be less than one second")
)

// Span is a calendar-aware duration kept as separate day, hour, minute and
// second components. A day is 24 hours; spans never carry calendar months.
type Span struct {
	Days        int64
	Hours       int64
	Minutes     int64
	Seconds     int64
	Nanoseconds int64
}

// SpanFromDuration splits d into hours, minutes, seconds and nanoseconds.
// Negative durations yield the zero span.
func SpanFromDuration(d time.Duration) Span {
	if d <= 0 {
		return Span{}
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	return Span{Hours: int64(h), Minutes: int64(m), Seconds: int64(s), Nanoseconds: int64(d)}
}

// IsZero reports whether every component is zero
func (s Span) IsZero() bool {
	return s == Span{}
}

func (s Span) validate() error {
	if s.Days < 0 || s.Hours < 0 || s.Minutes < 0 || s.Seconds < 0 || s.Nanoseconds < 0 {
		return errSpanNegative
	}
	if s.Nanoseconds >= nanosPerSecond {
		return errSpanNanos
	}
	if s.Days > maxSpanDays || s.Hours > maxSpanHours || s.Minutes > maxSpanMinutes || s.Seconds > maxSpanSeconds {
		return errSpanOverflow
	}
	return nil
}

// CheckedAdd adds o to s component by component. Nanoseconds that add up to a
// whole second are carried into Seconds; nothing else is rebalanced.
func (s Span) CheckedAdd(o Span) (Span, error) {
	if err := s.validate(); err != nil {
		return Span{}, &TimeError{Op: "add", Err: err}
	}
	if err := o.validate(); err != nil {
		return Span{}, &TimeError{Op: "add", Err: err}
	}

	nanos := s.Nanoseconds + o.Nanoseconds

	sum := Span{
		Days:        s.Days + o.Days,
		Hours:       s.Hours + o.Hours,
		Minutes:     s.Minutes + o.Minutes,
		Seconds:     s.Seconds + o.Seconds + nanos/nanosPerSecond,
		Nanoseconds: nanos % nanosPerSecond,
	}
	// Each operand is bounded well below MaxInt64/2, so the sums cannot wrap.
	if err := sum.validate(); err != nil {
		return Span{}, &TimeError{Op: "add", Err: err}
	}
	return sum, nil
}

// totalSeconds returns the span flattened to whole seconds plus a sub-second remainder
func (s Span) totalSeconds() (int64, int64, error) {
	if err := s.validate(); err != nil {
		return 0, 0, err
	}
	secs := s.Days*86_400 + s.Hours*3_600 + s.Minutes*60 + s.Seconds
	return secs, s.Nanoseconds, nil
}

// Round rebalances the span so that hours are its largest unit. Days are
// folded in as 24 hours and minutes/seconds are carried into hours.
func (s Span) Round() (Span, error) {
	secs, nanos, err := s.totalSeconds()
	if err != nil {
		return Span{}, &TimeError{Op: "round", Err: err}
	}
	return Span{
		Hours:       secs / 3_600,
		Minutes:     secs % 3_600 / 60,
		Seconds:     secs % 60,
		Nanoseconds: nanos,
	}, nil
}

// Duration converts the span to a time.Duration. It fails when the span is
// longer than time.Duration can hold (about 292 years).
func (s Span) Duration() (time.Duration, error) {
	secs, nanos, err := s.totalSeconds()
	if err != nil {
		return 0, &TimeError{Op: "convert", Err: err}
	}
	if secs > (1<<63-1-nanos)/nanosPerSecond {
		return 0, &TimeError{Op: "convert", Err: errSpanOverflow}
	}
	return time.Duration(secs*nanosPerSecond + nanos), nil
}

// String renders the span as an ISO 8601 duration, e.g. P1DT2H4M0.5S. The
// text is exact for every valid span, so ParseSpan(s.String()) == s.
func (s Span) String() string {
	if s.IsZero() {
		return "PT0S"
	}

	var b strings.Builder
	b.WriteByte('P')
	if s.Days != 0 {
		fmt.Fprintf(&b, "%dD", s.Days)
	}
	if s.Hours == 0 && s.Minutes == 0 && s.Seconds == 0 && s.Nanoseconds == 0 {
		return b.String()
	}

	b.WriteByte('T')
	if s.Hours != 0 {
		fmt.Fprintf(&b, "%dH", s.Hours)
	}
	if s.Minutes != 0 {
		fmt.Fprintf(&b, "%dM", s.Minutes)
	}
	if s.Seconds != 0 || s.Nanoseconds != 0 {
		b.WriteString(strconv.FormatInt(s.Seconds, 10))
		if s.Nanoseconds != 0 {
			b.WriteByte('.')
			b.WriteString(strings.TrimRight(fmt.Sprintf("%09d", s.Nanoseconds), "0"))
		}
		b.WriteByte('S')
	}
	return b.String()
}

// ParseSpan parses the ISO 8601 form produced by Span.String. Only day, hour,
// minute and second designators are accepted; only seconds may be fractional.
func ParseSpan(text string) (Span, error) {
	span, err := parseSpan(strings.ToUpper(strings.TrimSpace(text)))
	if err != nil {
		return Span{}, &TimeError{Op: "parse", Err: fmt.Errorf("%q: %w", text, err)}
	}
	if err := span.validate(); err != nil {
		return Span{}, &TimeError{Op: "parse", Err: fmt.Errorf("%q: %w", text, err)}
	}
	return span, nil
}

func parseSpan(text string) (Span, error) {
	if !strings.HasPrefix(text, "P") {
		return Span{}, errors.New("missing P designator")
	}
	rest := text[1:]
	if rest == "" || rest == "T" {
		return Span{}, errors.New("no components")
	}

	var span Span
	inTime := false
	seen := ""
	for rest != "" {
		if rest[0] == 'T' {
			if inTime {
				return Span{}, errors.New("duplicate T designator")
			}
			inTime = true
			rest = rest[1:]
			if rest == "" {
				return Span{}, errors.New("empty time part")
			}
			continue
		}

		i := 0
		for i < len(rest) && (rest[i] >= '0' && rest[i] <= '9' || rest[i] == '.') {
			i++
		}
		if i == 0 || i == len(rest) {
			return Span{}, fmt.Errorf("malformed component %q", rest)
		}
		number, unit := rest[:i], rest[i]
		rest = rest[i+1:]

		key := string(unit)
		if inTime {
			key = "T" + key
		}
		if strings.Contains(seen, key+",") {
			return Span{}, fmt.Errorf("duplicate %c component", unit)
		}
		seen += key + ","

		whole, frac, hasFrac := strings.Cut(number, ".")
		if hasFrac && (!inTime || unit != 'S') {
			return Span{}, fmt.Errorf("fractional %c is not supported", unit)
		}
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return Span{}, err
		}

		switch {
		case !inTime && unit == 'D':
			span.Days = n
		case inTime && unit == 'H':
			span.Hours = n
		case inTime && unit == 'M':
			span.Minutes = n
		case inTime && unit == 'S':
			span.Seconds = n
			if hasFrac {
				if frac == "" || len(frac) > 9 {
					return Span{}, fmt.Errorf("invalid fraction %q", frac)
				}
				nanos, err := strconv.ParseInt(frac+strings.Repeat("0", 9-len(frac)), 10, 64)
				if err != nil {
					return Span{}, err
				}
				span.Nanoseconds = nanos
			}
		default:
			return Span{}, fmt.Errorf("unsupported unit %c", unit)
		}
	}
	return span, nil
}

// MarshalText implements encoding.TextMarshaler; yaml.v3 and encoding/json use it.
func (s Span) MarshalText() ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, &TimeError{Op: "encode", Err: err}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Span) UnmarshalText(text []byte) error {
	parsed, err := ParseSpan(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
