package editor

import (
	"slices"
	"time"
)

type (
	// Alerts is the queue of transient messages shown to the user, e.g.
	// "Layout saved" or a failed file operation. Alerts fade in, stay for
	// their Duration and fade out; Update advances them.
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		// Name identifies alerts that should replace each other instead of
		// piling up; empty for anonymous alerts.
		Name      string
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	defaultAlertDuration = 3 * time.Second
	alertFadeTime        = 150 * time.Millisecond
	maxAlerts            = 8
)

// Add shows an anonymous message with the default duration.
func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}

// AddNamed shows a message that replaces any earlier alert with the same
// name.
func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Name:     name,
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}

func (m *Alerts) AddAlert(a Alert) {
	if a.Duration <= 0 {
		a.Duration = defaultAlertDuration
	}
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				a.FadeLevel = m.alerts[i].FadeLevel
				m.alerts[i] = a
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
	if len(m.alerts) > maxAlerts {
		m.alerts = slices.Delete(m.alerts, 0, len(m.alerts)-maxAlerts)
	}
}

// ClearNamed starts fading out the alert with the given name.
func (m *Alerts) ClearNamed(name string) {
	for i := range m.alerts {
		if m.alerts[i].Name == name {
			m.alerts[i].Duration = 0
		}
	}
}

// Update advances the alerts by d and drops the ones that have faded out. It
// returns true if any alert is still visible, i.e. the host should keep
// redrawing.
func (m *Alerts) Update(d time.Duration) (animating bool) {
	fade := float64(d) / float64(alertFadeTime)
	for i := len(m.alerts) - 1; i >= 0; i-- {
		a := &m.alerts[i]
		if a.Duration > 0 {
			a.Duration -= d
			a.FadeLevel = min(a.FadeLevel+fade, 1)
		} else {
			a.Duration = 0
			a.FadeLevel = max(a.FadeLevel-fade, 0)
			if a.FadeLevel <= 0 {
				m.alerts = slices.Delete(m.alerts, i, i+1)
				continue
			}
		}
		animating = true
	}
	return
}

// Iterate yields the alerts, oldest first.
func (m *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	for i, a := range m.alerts {
		if !yield(i, a) {
			return
		}
	}
}

func (m *Alerts) Len() int { return len(m.alerts) }

func (p AlertPriority) String() string {
	switch p {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}
