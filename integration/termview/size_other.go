//go:build !unix && !windows

package termview

import "io"

func terminalSize(io.Writer) (cols, rows int, ok bool) {
	return 0, 0, false
}
