package inline

import "sync/atomic"

// Session records whether the script bundle has been defined in the host
// page. It moves from uninitialized to initialized exactly once and never
// back. The zero value is an uninitialized session.
type Session struct {
	initialized atomic.Bool
}

// NewSession returns an uninitialized session.
func NewSession() *Session { return &Session{} }

// DefaultSession is shared by renderers created without [WithSession], so
// the bundle is defined once per process.
var DefaultSession = NewSession()

// HasInitialized reports whether the bundle has been emitted.
func (s *Session) HasInitialized() bool { return s.initialized.Load() }

// MarkInitialized records that the bundle has been emitted. It reports
// whether this call performed the transition; at most one call per session
// returns true.
func (s *Session) MarkInitialized() bool {
	return s.initialized.CompareAndSwap(false, true)
}
