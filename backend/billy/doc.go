// Package billy provides go-billy-backed implementations of backend.Backend.
//
// NewLocal wraps billy's osfs rooted at "/" for real disk access; NewMemory
// wraps memfs for tests and scratch trees. New accepts any billy.Filesystem,
// for example a chroot, so handles can be pointed at an alternate root.
//
// Usage:
//
//	local, err := billy.NewLocal()
//	if err != nil {
//	    return err
//	}
//	folder, err := files.NewFolder("~/Documents", files.WithBackend(local))
//
// # Memory Backend
//
// The memory backend starts with its special directories already created:
//
//	mem := billy.NewMemory(billy.WithSpecialDirectory(backend.Home, "/users/me"))
//
// # Configuration
//
// Special directories of the local backend default to the operating system
// values and can be overridden with environment variables, see LocalConfig.
//
// # Thread Safety
//
// Backends are safe for concurrent use by multiple goroutines to the extent
// the wrapped billy.Filesystem is. Operations on overlapping paths are not
// synchronized.
package billy
