// Package version reports the build version of the objectid binaries.
//
// Values are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/objectid/version.Version=1.2.0 \
//	    -X github.com/kbukum/objectid/version.GitCommit=$(git rev-parse HEAD)"
//
// and fall back to the VCS stamps recorded by the Go toolchain.
package version
