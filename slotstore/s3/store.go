package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/hupe1980/bigseq/slotstore"
)

// Client is the subset of the S3 API used by Store.
// *s3.Client satisfies it.
type Client interface {
	manager.UploadAPIClient
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// Options configures New.
type Options struct {
	// Prefix is prepended to all keys (e.g. "seq-1/").
	Prefix string
	// Region overrides the region from the default configuration.
	Region string
	// ConfigOptions are passed to config.LoadDefaultConfig.
	ConfigOptions []func(*config.LoadOptions) error
	// PartSize is the multipart upload part size. Zero uses the manager default.
	PartSize int64
}

// Store implements slotstore.Store for S3.
type Store struct {
	client   Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
	slots    *slotstore.SlotSet
	closed   bool
}

// New creates a Store from the default AWS configuration.
func New(ctx context.Context, bucket string, optFns ...func(*Options)) (*Store, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	cfgOpts := opts.ConfigOptions
	if opts.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s := NewStore(s3.NewFromConfig(cfg), bucket, opts.Prefix)
	if opts.PartSize > 0 {
		s.uploader = manager.NewUploader(s.client, func(u *manager.Uploader) {
			u.PartSize = opts.PartSize
		})
	}
	return s, nil
}

// NewStore creates a new S3 slot store on an existing client.
// rootPrefix is prepended to all keys (e.g. "seq-1/").
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return &Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   rootPrefix,
		slots:    slotstore.NewSlotSet(),
	}
}

func (s *Store) key(slot int64) string {
	return path.Join(s.prefix, slotstore.SlotName(slot))
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NoSuchKey" || code == "NotFound"
	}
	return false
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

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(slot)),
		Range:  aws.String(fmt.Sprintf("bytes=0-%d", len(p)-1)),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()

	buf := make([]byte, len(p))
	n, err := io.ReadFull(resp.Body, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
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

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(slot)),
		Body:          bytes.NewReader(p),
		ContentLength: aws.Int64(int64(len(p))),
		ContentType:   aws.String("application/octet-stream"),
	})
	if err != nil {
		return err
	}
	s.slots.Add(slot)
	return nil
}

// list returns the keys of all slot objects under the prefix.
func (s *Store) list(ctx context.Context) ([]int64, []string, error) {
	var (
		slots []int64
		keys  []string
	)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, nil, err
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			name := strings.TrimPrefix(strings.TrimPrefix(key, s.prefix), "/")
			if slot, ok := slotstore.ParseSlotName(name); ok {
				slots = append(slots, slot)
				keys = append(keys, key)
			}
		}
	}
	return slots, keys, nil
}

// Refresh lists the bucket and records which slots exist, so later reads
// of missing slots are answered locally.
func (s *Store) Refresh(ctx context.Context) error {
	if s.closed {
		return slotstore.ErrClosed
	}
	slots, _, err := s.list(ctx)
	if err != nil {
		return err
	}
	s.slots.Seed(slots)
	return nil
}

// maxDeleteBatch is the DeleteObjects request limit.
const maxDeleteBatch = 1000

// Truncate deletes every slot object under the prefix.
func (s *Store) Truncate(ctx context.Context) error {
	if s.closed {
		return slotstore.ErrClosed
	}
	_, keys, err := s.list(ctx)
	if err != nil {
		return err
	}

	for start := 0; start < len(keys); start += maxDeleteBatch {
		batch := keys[start:min(start+maxDeleteBatch, len(keys))]
		ids := make([]types.ObjectIdentifier, len(batch))
		for i, key := range batch {
			ids[i] = types.ObjectIdentifier{Key: aws.String(key)}
		}

		out, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		})
		if err != nil {
			return err
		}
		if len(out.Errors) > 0 {
			e := out.Errors[0]
			return fmt.Errorf("delete %s: %s: %s", aws.ToString(e.Key), aws.ToString(e.Code), aws.ToString(e.Message))
		}
	}

	s.slots.Reset()
	return nil
}

// Sync is a no-op: uploads are durable once they return.
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
