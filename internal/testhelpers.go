package internal

import (
	"time"
)

// CreateTestZoned returns a timestamp in the named IANA zone. It panics on
// an unknown zone, which only happens with a typo in a test.
func CreateTestZoned(zone string, year int, month time.Month, day, hour, minute int) Zoned {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		panic(err)
	}
	return ZonedIn(time.Date(year, month, day, hour, minute, 0, 0, loc), loc)
}

// CreateTestSession creates a session starting at ts lasting d
func CreateTestSession(ts Zoned, d time.Duration) Session {
	return Session{Timestamp: ts, Duration: SpanFromDuration(d)}
}

// CreateTestApp creates an app with the given sessions
func CreateTestApp(name string, sessions ...Session) App {
	if sessions == nil {
		sessions = []Session{}
	}
	return App{
		Name:     name,
		Exe:      "/usr/games/" + name,
		Sessions: sessions,
	}
}

// CreateTestConfig creates a config holding two apps with a handful of
// sessions recorded in different zones.
func CreateTestConfig() *Config {
	return &Config{
		Apps: []App{
			CreateTestApp("doom",
				CreateTestSession(CreateTestZoned("America/New_York", 2024, time.August, 10, 23, 14), 124*time.Minute),
				CreateTestSession(CreateTestZoned("Europe/Berlin", 2024, time.August, 12, 9, 30), 45*time.Minute+30*time.Second),
			),
			CreateTestApp("quake"),
		},
	}
}
