//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const path = "/debug/statsview"

// Available reports whether Launch starts a server.
func Available() bool {
	return true
}

// Launch starts the statistics server in the background and tells output
// where to find it.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	go statsview.New().Start()
	fmt.Fprintf(output, "Serving stats at http://%s%s\n", Address, path)
}
