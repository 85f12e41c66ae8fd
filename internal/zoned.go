package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Session timestamps carry IANA zone names; embed the database so they
	// resolve on hosts without /usr/share/zoneinfo.
	_ "time/tzdata"
)

const zonedLayout = "2006-01-02T15:04:05.999999999-07:00"

// Zoned is an instant paired with the time zone it was observed in.
// Its text form follows RFC 9557: 2024-08-10T23:14:00-04:00[America/New_York].
type Zoned struct {
	t time.Time
}

// NewZoned attaches t to its own location. A time in the process-local zone
// is moved to the IANA zone that backs it, when that can be determined.
func NewZoned(t time.Time) Zoned {
	if t.Location() == time.Local {
		t = t.In(LocalZone())
	}
	return Zoned{t: t}
}

// ZonedIn returns t observed in loc
func ZonedIn(t time.Time, loc *time.Location) Zoned {
	return Zoned{t: t.In(loc)}
}

// LocalZone resolves the IANA zone of the current process from $TZ or the
// /etc/localtime symlink, falling back to time.Local. A TZ that is set but
// empty means UTC, as it does for time.Local.
func LocalZone() *time.Location {
	if tz, ok := os.LookupEnv("TZ"); ok {
		tz = strings.TrimPrefix(tz, ":")
		if tz == "" {
			return time.UTC
		}
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if name := time.Local.String(); name != "" && name != "Local" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if target, err := os.Readlink("/etc/localtime"); err == nil {
		if _, name, ok := strings.Cut(filepath.ToSlash(target), "zoneinfo/"); ok {
			if loc, err := time.LoadLocation(name); err == nil {
				return loc
			}
		}
	}
	return time.Local
}

// Time returns the underlying instant in its zone
func (z Zoned) Time() time.Time {
	return z.t
}

// IsZero reports whether z is the zero instant
func (z Zoned) IsZero() bool {
	return z.t.IsZero()
}

// ZoneName returns the IANA zone name, or "" when z only carries an offset
func (z Zoned) ZoneName() string {
	switch name := z.t.Location().String(); name {
	case "", "Local":
		return ""
	default:
		if _, err := time.LoadLocation(name); err != nil {
			return ""
		}
		return name
	}
}

// After reports whether z is strictly later than o, regardless of their zones
func (z Zoned) After(o Zoned) bool {
	return z.t.After(o.t)
}

// Equal reports whether both values name the same instant in the same zone
func (z Zoned) Equal(o Zoned) bool {
	return z.t.Equal(o.t) && z.ZoneName() == o.ZoneName() && z.offset() == o.offset()
}

func (z Zoned) offset() int {
	_, off := z.t.Zone()
	return off
}

// SubDays moves z back n calendar days in its own zone, so a DST transition
// inside the window keeps the wall-clock time.
func (z Zoned) SubDays(n int) Zoned {
	return Zoned{t: z.t.AddDate(0, 0, -n)}
}

// Until returns the elapsed span from z to end
func (z Zoned) Until(end Zoned) Span {
	return SpanFromDuration(end.t.Sub(z.t))
}

func (z Zoned) String() string {
	s := z.t.Format(zonedLayout)
	if name := z.ZoneName(); name != "" {
		s += "[" + name + "]"
	}
	return s
}

// ParseZoned parses the RFC 9557 form written by Zoned.String. Without a
// bracketed zone name the result carries a fixed offset.
func ParseZoned(text string) (Zoned, error) {
	text = strings.TrimSpace(text)
	base, zone, hasZone := strings.Cut(text, "[")
	if hasZone {
		if !strings.HasSuffix(zone, "]") {
			return Zoned{}, &TimeError{Op: "parse", Err: fmt.Errorf("%q: unterminated zone annotation", text)}
		}
		zone = strings.TrimPrefix(strings.TrimSuffix(zone, "]"), "!")
		if zone == "" {
			return Zoned{}, &TimeError{Op: "parse", Err: fmt.Errorf("%q: empty zone annotation", text)}
		}
	}

	t, err := time.Parse(time.RFC3339Nano, base)
	if err != nil {
		return Zoned{}, &TimeError{Op: "parse", Err: err}
	}

	if !hasZone {
		_, off := t.Zone()
		return Zoned{t: t.In(time.FixedZone("", off))}, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Zoned{}, &TimeError{Op: "parse", Err: errors.Join(fmt.Errorf("unknown zone %q", zone), err)}
	}

	// A numeric offset must be the one the zone had at that instant, otherwise
	// the wall-clock time would silently shift. "Z" only fixes the instant.
	_, parsedOffset := t.Zone()
	zoned := t.In(loc)
	utcDesignator := strings.HasSuffix(base, "Z") || strings.HasSuffix(base, "z")
	if _, zoneOffset := zoned.Zone(); !utcDesignator && zoneOffset != parsedOffset {
		return Zoned{}, &TimeError{Op: "parse", Err: fmt.Errorf("%q: offset %s does not match zone %s (%s)",
			text, formatOffset(parsedOffset), zone, formatOffset(zoneOffset))}
	}
	return Zoned{t: zoned}, nil
}

func formatOffset(seconds int) string {
	return time.Unix(0, 0).In(time.FixedZone("", seconds)).Format("-07:00")
}

// MarshalText implements encoding.TextMarshaler
func (z Zoned) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (z *Zoned) UnmarshalText(text []byte) error {
	parsed, err := ParseZoned(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}
