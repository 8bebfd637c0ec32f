package main

import (
	"context"

	storage "google.golang.org/api/storage/v1"
)

// Bucket is an interface that specifies what a cloud storage service
// must implement to have its buckets listed.
type Bucket interface {
	// List returns every bucket visible to the account, in provider order
	List(ctx context.Context) ([]*storage.Bucket, error)
}
