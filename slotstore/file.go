package slotstore

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/hupe1980/bigseq/internal/conv"
	"github.com/hupe1980/bigseq/internal/fs"
)

// FileOptions configures a FileStore.
type FileOptions struct {
	// FileSystem opens the backing file. Defaults to fs.Default.
	FileSystem fs.FileSystem
	// Perm is used when the file is created. Defaults to 0o644.
	Perm os.FileMode
}

// FileStore keeps all slots in one flat file: slot s occupies
// [s*slotSize, (s+1)*slotSize).
type FileStore struct {
	f      fs.File
	size   int64 // current file length
	closed bool
}

// OpenFile opens (creating if needed) the file at path as a slot store.
// Existing contents are kept; call Truncate to start empty.
func OpenFile(path string, optFns ...func(*FileOptions)) (*FileStore, error) {
	opts := FileOptions{
		FileSystem: fs.Default,
		Perm:       0o644,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	f, err := opts.FileSystem.OpenFile(path, os.O_RDWR|os.O_CREATE, opts.Perm)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &FileStore{f: f, size: info.Size()}, nil
}

// Name returns the backing file's name.
func (s *FileStore) Name() string {
	return s.f.Name()
}

// Size returns the current length of the backing file in bytes.
func (s *FileStore) Size() int64 {
	return s.size
}

func (s *FileStore) ReadSlot(_ context.Context, slot int64, p []byte) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	if err := checkSlot(slot, p); err != nil {
		return false, err
	}

	off, err := conv.SlotOffset(slot, len(p))
	if err != nil {
		return false, err
	}
	if off >= s.size {
		return false, nil
	}

	avail := p
	if rest := s.size - off; rest < int64(len(p)) {
		avail = p[:rest]
		clear(p[rest:])
	}

	n, err := s.f.ReadAt(avail, off)
	if err != nil && !(errors.Is(err, io.EOF) && n == len(avail)) {
		return false, err
	}
	return true, nil
}

func (s *FileStore) WriteSlot(_ context.Context, slot int64, p []byte) error {
	if s.closed {
		return ErrClosed
	}
	if err := checkSlot(slot, p); err != nil {
		return err
	}

	off, err := conv.SlotOffset(slot, len(p))
	if err != nil {
		return err
	}

	n, err := s.f.WriteAt(p, off)
	if end := off + int64(n); end > s.size {
		s.size = end
	}
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}

func (s *FileStore) Truncate(context.Context) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.f.Truncate(0); err != nil {
		return err
	}
	s.size = 0
	return nil
}

func (s *FileStore) Sync(context.Context) error {
	if s.closed {
		return ErrClosed
	}
	return s.f.Sync()
}

func (s *FileStore) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.f.Close()
}
