// Package profile provides optional runtime profiling for the pyscribe
// command.
//
// Profiling support is compiled in only when building with the build tag
// named by [Tag]:
//
//	go build -tags pprof
//
// Without the tag, [Config.Start] returns a no-op and [Modes] is empty, so
// the CLI flag group can reference this package unconditionally.
package profile

// Tag is the build tag that enables profiling support.
const Tag = `pprof`
