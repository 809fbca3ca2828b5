package ui

import (
	"sync"
	"time"
)

// StatusReady is shown when no transient message is active.
const StatusReady = "Ready"

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Status        string
	StatusExpires time.Time // zero when the status does not expire

	Warning string // non-empty while the warning overlay is up

	FilePath   string
	AppVersion string

	Logs []string

	LastUpdated time.Time
}

// AppState tracks the editor state shared between the Gio event loop and the
// file dialog goroutines.
type AppState struct {
	mu sync.RWMutex

	status        string
	statusExpires time.Time

	warning string

	filePath   string
	appVersion string

	logs     []string
	logLimit int

	now         func() time.Time
	lastUpdated time.Time
}

// NewState returns a baseline AppState with safe defaults.
func NewState() *AppState {
	s := &AppState{
		logLimit:   200,
		status:     StatusReady,
		appVersion: "dev",
		now:        time.Now,
	}
	s.lastUpdated = s.now()
	return s
}

// Snapshot returns a copy of the mutable state for rendering. An expired
// transient status reads as StatusReady.
func (s *AppState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logCopy := make([]string, len(s.logs))
	copy(logCopy, s.logs)

	status, expires := s.status, s.statusExpires
	if !expires.IsZero() && !s.now().Before(expires) {
		status, expires = StatusReady, time.Time{}
	}

	return StateSnapshot{
		Status:        status,
		StatusExpires: expires,
		Warning:       s.warning,
		FilePath:      s.filePath,
		AppVersion:    s.appVersion,
		Logs:          logCopy,
		LastUpdated:   s.lastUpdated,
	}
}

// SetStatus shows a persistent status message.
func (s *AppState) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.statusExpires = time.Time{}
	s.lastUpdated = s.now()
}

// FlashStatus shows a status message that reverts to StatusReady after d.
func (s *AppState) FlashStatus(status string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.statusExpires = s.now().Add(d)
	s.lastUpdated = s.now()
}

// Warn raises the blocking warning overlay.
func (s *AppState) Warn(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warning = msg
	s.lastUpdated = s.now()
}

// DismissWarning closes the warning overlay.
func (s *AppState) DismissWarning() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warning = ""
	s.lastUpdated = s.now()
}

// SetFilePath records the file the text pane was last loaded from or saved to.
func (s *AppState) SetFilePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filePath = path
	s.lastUpdated = s.now()
}

// AppendLog appends a log message, trimming the oldest entries past the limit.
func (s *AppState) AppendLog(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, msg)
	if s.logLimit > 0 && len(s.logs) > s.logLimit {
		offset := len(s.logs) - s.logLimit
		s.logs = append([]string(nil), s.logs[offset:]...)
	}
	s.lastUpdated = s.now()
}

// SetAppVersion records the running application version string.
func (s *AppState) SetAppVersion(version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version == "" {
		version = "dev"
	}
	s.appVersion = version
	s.lastUpdated = s.now()
}

// AppVersion returns the current application version string.
func (s *AppState) AppVersion() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appVersion
}
