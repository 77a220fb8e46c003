// Package s3 provides a slot store on Amazon S3.
//
// Each slot is one object named slotstore.SlotName(slot) under the root
// prefix. Writes go through the S3 upload manager, so segments larger than
// the part size are uploaded as parallel multipart uploads.
//
// # Basic Usage
//
//	store, err := s3.New(ctx, "my-bucket", func(o *s3.Options) {
//	    o.Prefix = "seq-1/"
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	seq, err := bigseq.New(ctx, 1<<20, bigseq.WithStore(store))
//
// Credentials and region come from the default AWS configuration chain.
package s3
