package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/bigseq/slotstore"
)

// Store implements slotstore.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
	slots  *slotstore.SlotSet
	closed bool
}

// NewStore creates a new MinIO slot store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "seq-1/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
		slots:  slotstore.NewSlotSet(),
	}
}

func (s *Store) key(slot int64) string {
	return path.Join(s.prefix, slotstore.SlotName(slot))
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}

// ReadSlot reads slot into p.
func (s *Store) ReadSlot(ctx context.Context, slot int64, p []byte) (bool, error) {
	if s.closed {
		return false, slotstore.ErrClosed
	}
	if slot < 0 || len(p) == 0 {
		return false, slotstore.ErrInvalidSlot
	}
	if s.slots.Absent(slot) {
		return false, nil
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.key(slot), minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	defer obj.Close()

	// GetObject is lazy: a missing key surfaces on the first read.
	buf := make([]byte, len(p))
	n, err := io.ReadFull(obj, buf)
	switch {
	case err == nil, errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
	case isNotFound(err):
		return false, nil
	default:
		return false, err
	}

	copy(p, buf[:n])
	clear(p[n:])
	s.slots.Add(slot)
	return true, nil
}

// WriteSlot uploads p as the object for slot.
func (s *Store) WriteSlot(ctx context.Context, slot int64, p []byte) error {
	if s.closed {
		return slotstore.ErrClosed
	}
	if slot < 0 || len(p) == 0 {
		return slotstore.ErrInvalidSlot
	}

	_, err := s.client.PutObject(ctx, s.bucket, s.key(slot), bytes.NewReader(p), int64(len(p)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return err
	}
	s.slots.Add(slot)
	return nil
}

// list returns the slots that currently have objects.
func (s *Store) list(ctx context.Context) ([]int64, error) {
	var slots []int64
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		name := strings.TrimPrefix(strings.TrimPrefix(obj.Key, s.prefix), "/")
		if slot, ok := slotstore.ParseSlotName(name); ok {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// Refresh lists the bucket and records which slots exist, so later reads
// of missing slots are answered locally.
func (s *Store) Refresh(ctx context.Context) error {
	if s.closed {
		return slotstore.ErrClosed
	}
	slots, err := s.list(ctx)
	if err != nil {
		return err
	}
	s.slots.Seed(slots)
	return nil
}

// Truncate removes every slot object under the prefix.
func (s *Store) Truncate(ctx context.Context) error {
	if s.closed {
		return slotstore.ErrClosed
	}
	slots, err := s.list(ctx)
	if err != nil {
		return err
	}

	objects := make(chan minio.ObjectInfo, len(slots))
	for _, slot := range slots {
		objects <- minio.ObjectInfo{Key: s.key(slot)}
	}
	close(objects)

	for rerr := range s.client.RemoveObjects(ctx, s.bucket, objects, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil && !isNotFound(rerr.Err) {
			return fmt.Errorf("remove %s: %w", rerr.ObjectName, rerr.Err)
		}
	}

	s.slots.Reset()
	return nil
}

// Sync is a no-op: PutObject is durable once it returns.
func (s *Store) Sync(context.Context) error {
	if s.closed {
		return slotstore.ErrClosed
	}
	return nil
}

// Close marks the store closed. The client is owned by the caller.
func (s *Store) Close() error {
	s.closed = true
	return nil
}
