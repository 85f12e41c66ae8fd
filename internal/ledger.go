package internal

// DefaultRecentDays is the window used by list for "recorded recently"
const DefaultRecentDays = 7

// TotalTime is the checked sum of every session duration
func (a *App) TotalTime() (Span, error) {
	return sumSessions(a.Sessions, nil)
}

// TimeSince sums the sessions that started strictly after cutoff. The
// comparison is between instants, so sessions recorded in other zones are
// placed correctly.
func (a *App) TimeSince(cutoff Zoned) (Span, error) {
	return sumSessions(a.Sessions, func(s Session) bool {
		return s.Timestamp.After(cutoff)
	})
}

// LastSession returns the most recently appended session
func (a *App) LastSession() (Session, bool) {
	if len(a.Sessions) == 0 {
		return Session{}, false
	}
	return a.Sessions[len(a.Sessions)-1], true
}

// Append adds a session to the end of the ledger
func (a *App) Append(s Session) {
	a.Sessions = append(a.Sessions, s)
}

// RecentCutoff returns the instant days calendar days before now
func RecentCutoff(now Zoned, days int) Zoned {
	return now.SubDays(days)
}

func sumSessions(sessions []Session, keep func(Session) bool) (Span, error) {
	total := Span{}
	for _, s := range sessions {
		if keep != nil && !keep(s) {
			continue
		}
		var err error
		if total, err = total.CheckedAdd(s.Duration); err != nil {
			return Span{}, err
		}
	}
	return total, nil
}
