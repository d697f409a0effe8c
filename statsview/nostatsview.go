//go:build !statsview
// +build !statsview

package statsview

import "io"

// Available reports whether Launch starts a server.
func Available() bool {
	return false
}

// Launch does nothing without the statsview build tag.
func Launch(io.Writer) {}
