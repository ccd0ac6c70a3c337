//go:build !windows && !((linux || darwin || freebsd) && cgo)

package screen

// primary is used where no display API is wired up.
type primary struct{}

func (primary) Resolution() (int, int, error) {
	return 0, 0, ErrNoDisplay
}
