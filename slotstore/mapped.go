package slotstore

import (
	"context"
	"os"

	"github.com/hupe1980/bigseq/internal/conv"
	"github.com/hupe1980/bigseq/internal/mmap"
)

// MappedStore has the same on-disk layout as FileStore but moves slot bytes
// through a shared read-write mapping of the file instead of pread/pwrite.
// The file is extended and remapped whenever a write lands past its end.
//
// Write errors on a mapping surface as signals rather than error values,
// so a full disk is only detected when the file is grown.
type MappedStore struct {
	f      *os.File
	m      *mmap.Mapping
	closed bool
}

// OpenMapped opens (creating if needed) the file at path as a mapped slot store.
func OpenMapped(path string) (*MappedStore, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	size, err := conv.Int64ToInt(info.Size())
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	m, err := mmap.Map(f, size, mmap.ReadWrite)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	_ = m.Advise(mmap.AccessRandom)

	return &MappedStore{f: f, m: m}, nil
}

// Size returns the current length of the mapped file in bytes.
func (s *MappedStore) Size() int64 {
	return int64(s.m.Size())
}

func (s *MappedStore) ReadSlot(_ context.Context, slot int64, p []byte) (bool, error) {
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
	data := s.m.Bytes()
	if off >= int64(len(data)) {
		return false, nil
	}

	n := copy(p, data[off:])
	clear(p[n:])
	return true, nil
}

func (s *MappedStore) WriteSlot(_ context.Context, slot int64, p []byte) error {
	if s.closed {
		return ErrClosed
	}
	if err := checkSlot(slot, p); err != nil {
		return err
	}

	end, err := conv.SlotEnd(slot, len(p))
	if err != nil {
		return err
	}
	if end > int64(s.m.Size()) {
		if err := s.remap(end); err != nil {
			return err
		}
	}

	// SlotEnd succeeded, so the start offset fits in an int as well.
	off := int(end) - len(p)
	r, err := s.m.Region(off, len(p))
	if err != nil {
		return err
	}
	copy(r.Bytes(), p)
	return nil
}

// remap grows the file to size bytes and maps it again.
func (s *MappedStore) remap(size int64) error {
	n, err := conv.Int64ToInt(size)
	if err != nil {
		return err
	}
	if err := s.m.Close(); err != nil {
		return err
	}
	if err := s.f.Truncate(size); err != nil {
		s.mapCurrent()
		return err
	}
	m, err := mmap.Map(s.f, n, mmap.ReadWrite)
	if err != nil {
		s.mapCurrent()
		return err
	}
	s.m = m
	return nil
}

// mapCurrent maps whatever length the file has now, falling back to an
// empty mapping so the store never holds a closed one.
func (s *MappedStore) mapCurrent() {
	if info, err := s.f.Stat(); err == nil {
		if n, err := conv.Int64ToInt(info.Size()); err == nil {
			if m, err := mmap.Map(s.f, n, mmap.ReadWrite); err == nil {
				s.m = m
				return
			}
		}
	}
	s.m, _ = mmap.Map(s.f, 0, mmap.ReadWrite)
}

func (s *MappedStore) Truncate(context.Context) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.m.Close(); err != nil {
		return err
	}
	err := s.f.Truncate(0)
	s.mapCurrent()
	return err
}

func (s *MappedStore) Sync(context.Context) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.m.Sync(); err != nil {
		return err
	}
	return s.f.Sync()
}

func (s *MappedStore) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.m.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}
