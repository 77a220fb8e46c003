// Package minio provides a slot store on MinIO and other S3-compatible
// object storage (Ceph, Garage, SeaweedFS), using the MinIO Go client.
//
// Each slot is one object named slotstore.SlotName(slot) under the root
// prefix. A slot that has no object reads as absent.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioslot.NewStore(client, "my-bucket", "seq-1/")
//	seq, err := bigseq.New(ctx, 4096, bigseq.WithStore(store))
package minio
