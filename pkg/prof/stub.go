//go:build !profile

package prof

// Enabled reports whether profiling is compiled in.
const Enabled = false

// Session is an open profiling run. Without the "profile" tag no session is
// ever opened.
type Session struct{}

// Start returns [ErrDisabled] if opts requests any profile.
func Start(opts Options) (*Session, error) {
	if opts.Empty() {
		return nil, nil
	}
	return nil, ErrDisabled
}

// Stop does nothing.
func (s *Session) Stop() error {
	return nil
}
