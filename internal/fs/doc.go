// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: an open file with positional read/write, truncate and sync
//   - [FileSystem]: filesystem operations (open, remove, stat, etc.)
//
// # Implementations
//
//   - [LocalFS]: production implementation using the standard os package
//   - [FaultyFS]: test utility that injects I/O errors
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]):
//
//	file, err := fs.Default.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
//
// Tests can inject [FaultyFS] to simulate a failing disk under a slot store:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("biglist", fs.Fault{FailAfterBytes: 4096})
//	store, _ := slotstore.OpenFile(path, slotstore.WithFileSystem(ffs))
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// Local file operations are non-interruptible at the syscall level.
package fs
