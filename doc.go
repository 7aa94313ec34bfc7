// Package files provides typed handles for files and folders.
//
// A *File or *Folder is created from a path string, which is resolved to a
// canonical absolute path ("~" expands to the home directory, relative paths
// are resolved against the working directory, "." and ".." are collapsed)
// and checked against the filesystem. Handles then offer the operations
// application code usually re-derives by hand: reading and writing contents,
// looking up and creating children, renaming, moving, copying, deleting and
// enumerating folder trees.
//
//	folder, err := files.NewFolder("~/projects/site")
//	if err != nil {
//	    return err
//	}
//	index, err := folder.CreateFileIfNeeded("public/index.html", []byte("<html></html>"))
//	if err != nil {
//	    return err
//	}
//	names, err := folder.Files().Recursive().Names()
//
// # Backends
//
// Handles never call the operating system directly. They go through a
// backend.Backend, the local disk by default, or whatever WithBackend
// supplies. Tests typically use an in-memory backend:
//
//	mem := billy.NewMemory()
//	home, err := files.Home(files.WithBackend(mem))
//
// # Canonical paths
//
// Folder paths always end with "/", file paths never do. Two handles are
// Equal when they have the same canonical path under the same backend,
// regardless of when or how they were created.
//
// # Staleness
//
// A handle checks that its entry exists when it is created and caches
// nothing but its path afterwards. Every operation asks the backend again,
// so a handle whose entry was deleted by someone else fails instead of
// acting on stale state. Rename and Move keep the cached path in sync.
//
// # Sequences
//
// Folder.Files and Folder.Subfolders return a Sequence, a description of what
// to enumerate rather than a list. Each consumption walks the backend again:
//
//	for file, err := range folder.Files().Recursive().IncludingHidden().All() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(file.Path())
//	}
//
// # Errors
//
// Failures are reported as *LocationError, *ReadError or *WriteError. Each
// carries the path involved and a Reason, and implements the PlatformError
// contract of the errors package. No operation synchronizes access; callers
// sharing overlapping trees across goroutines must do their own locking.
package files
