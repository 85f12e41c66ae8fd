package internal

// Config is the persisted registry of apps, loaded at the start of a
// command and saved after any mutation.
type Config struct {
	Apps []App `yaml:"apps" json:"apps"`
}

// App is a launchable program and its recorded play history
type App struct {
	Name     string    `yaml:"name" json:"name"`
	Exe      string    `yaml:"exe" json:"exe"`
	Sessions []Session `yaml:"sessions" json:"sessions"`
}

// Session is one recorded run of an app. Sessions are append-only.
type Session struct {
	Timestamp Zoned `yaml:"timestamp" json:"timestamp"`
	Duration  Span  `yaml:"duration" json:"duration"`
}

// Add registers a new app with an empty session list. Names are matched
// exactly and case-sensitively.
func (c *Config) Add(name, exe string) (*App, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if exe == "" {
		return nil, ErrEmptyExe
	}
	if c.indexOf(name) >= 0 {
		return nil, &AppExistsError{Name: name}
	}

	c.Apps = append(c.Apps, App{
		Name:     name,
		Exe:      exe,
		Sessions: []Session{},
	})
	return &c.Apps[len(c.Apps)-1], nil
}

// Remove deletes an app together with its session history
func (c *Config) Remove(name string) error {
	i := c.indexOf(name)
	if i < 0 {
		return &AppNotFoundError{Name: name}
	}
	c.Apps = append(c.Apps[:i], c.Apps[i+1:]...)
	return nil
}

// Find returns the app with the given name. The pointer refers into c.Apps,
// so sessions appended through it are part of c.
func (c *Config) Find(name string) (*App, error) {
	i := c.indexOf(name)
	if i < 0 {
		return nil, &AppNotFoundError{Name: name}
	}
	return &c.Apps[i], nil
}

func (c *Config) indexOf(name string) int {
	for i := range c.Apps {
		if c.Apps[i].Name == name {
			return i
		}
	}
	return -1
}

// SessionCount returns the number of sessions across all apps
func (c *Config) SessionCount() int {
	n := 0
	for _, app := range c.Apps {
		n += len(app.Sessions)
	}
	return n
}

// AppSummary is the aggregated view of one app shown by list
type AppSummary struct {
	Name         string
	Exe          string
	Total        Span
	Recent       Span
	SessionCount int
	LastPlayed   Zoned
	HasPlayed    bool
}

// Summaries aggregates every app's total time and the time recorded in the
// windowDays days before now. Nothing is modified.
func (c *Config) Summaries(now Zoned, windowDays int) ([]AppSummary, error) {
	cutoff := RecentCutoff(now, windowDays)

	summaries := make([]AppSummary, 0, len(c.Apps))
	for i := range c.Apps {
		app := &c.Apps[i]

		total, err := app.TotalTime()
		if err != nil {
			return nil, err
		}
		recent, err := app.TimeSince(cutoff)
		if err != nil {
			return nil, err
		}

		summary := AppSummary{
			Name:         app.Name,
			Exe:          app.Exe,
			Total:        total,
			Recent:       recent,
			SessionCount: len(app.Sessions),
		}
		if last, ok := app.LastSession(); ok {
			summary.LastPlayed = last.Timestamp
			summary.HasPlayed = true
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
