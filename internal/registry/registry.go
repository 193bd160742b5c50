// Package registry defines the fixed table of platforms matrixgen can emit
// build-matrix rows for.
//
// Each row maps a Rust target triple to the class of CI runner that builds
// it, plus any extra flags that target's build command needs. The table is
// compiled into the binary and never changes at runtime; supporting a new
// platform is adding one row.
package registry

import "sort"

// Host labels for the runner classes that execute builds.
const (
	HostMacOS   = "macos-latest"
	HostWindows = "windows-latest"
	HostUbuntu  = "ubuntu-latest"
)

// Entry is one row of a generated build matrix: the runner that should
// execute the build, the target triple it builds, and the fully
// parametrized command line to run.
type Entry struct {
	Host   string `json:"host"`
	Target string `json:"target"`
	Build  string `json:"build"`
}

// Platform describes one supported target triple.
type Platform struct {
	// Target is the Rust target triple.
	Target string `json:"target"`

	// Host is the runner class that builds this target.
	Host string `json:"host"`

	// Flags are the extra build-command flags this target requires,
	// appended after --target <triple>. Empty for natively built targets.
	Flags string `json:"flags,omitempty"`
}

// platforms is the supported-platform table, keyed by target triple.
//
// Linux glibc targets cross-compile with --use-napi-cross, musl targets
// with -x (zig). riscv64 musl is not a tier-1 Rust target yet and needs
// the standard library built from source on top of that. Android and
// FreeBSD builds run on the Linux runner; the toolchain setup for them
// belongs to the workflow, not to this table.
var platforms = map[string]Platform{
	"x86_64-apple-darwin":  {Host: HostMacOS},
	"aarch64-apple-darwin": {Host: HostMacOS},

	"x86_64-pc-windows-msvc":  {Host: HostWindows},
	"i686-pc-windows-msvc":    {Host: HostWindows},
	"aarch64-pc-windows-msvc": {Host: HostWindows},

	"x86_64-unknown-linux-gnu":      {Host: HostUbuntu, Flags: "--use-napi-cross"},
	"aarch64-unknown-linux-gnu":     {Host: HostUbuntu, Flags: "--use-napi-cross"},
	"armv7-unknown-linux-gnueabihf": {Host: HostUbuntu, Flags: "--use-napi-cross"},
	"riscv64gc-unknown-linux-gnu":   {Host: HostUbuntu, Flags: "--use-napi-cross"},

	"x86_64-unknown-linux-musl":      {Host: HostUbuntu, Flags: "-x"},
	"aarch64-unknown-linux-musl":     {Host: HostUbuntu, Flags: "-x"},
	"armv7-unknown-linux-musleabihf": {Host: HostUbuntu, Flags: "-x"},
	"riscv64gc-unknown-linux-musl":   {Host: HostUbuntu, Flags: "-x -Z build-std=std,panic_abort"},

	"aarch64-linux-android":   {Host: HostUbuntu},
	"armv7-linux-androideabi": {Host: HostUbuntu},

	"x86_64-unknown-freebsd": {Host: HostUbuntu},
}

// Lookup resolves a target triple into a build-matrix entry for the given
// base build command. The entry's Build field is the base command with
// --target <triple> and the target's extra flags appended.
//
// The second return value is false when the triple is not in the platform
// table; deciding how to report that is the caller's concern.
func Lookup(target, baseCmd string) (Entry, bool) {
	p, ok := platforms[target]
	if !ok {
		return Entry{}, false
	}

	build := baseCmd + " --target " + target
	if p.Flags != "" {
		build += " " + p.Flags
	}

	return Entry{Host: p.Host, Target: target, Build: build}, true
}

// All returns every supported platform, sorted by target triple.
func All() []Platform {
	out := make([]Platform, 0, len(platforms))
	for target, p := range platforms {
		p.Target = target
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	return out
}

// Targets returns the supported target triples, sorted.
func Targets() []string {
	out := make([]string, 0, len(platforms))
	for target := range platforms {
		out = append(out, target)
	}
	sort.Strings(out)
	return out
}
