// Package statsview serves runtime statistics of the emulator over HTTP,
// using github.com/go-echarts/statsview. It is compiled in only with the
// statsview build tag:
//
//	go build -tags statsview
//
// Charts are then at localhost:12600/debug/statsview and the pprof
// endpoints at localhost:12600/debug/pprof/.
package statsview
