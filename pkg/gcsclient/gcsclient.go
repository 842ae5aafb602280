package gcsclient

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/storage"

	"github.com/avdeev/courtside-media/pkg/gcpauth"
)

const (
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
)

type GCSClient struct {
	connAttempts int
	connTimeout  time.Duration

	credentials string
	bucket      string

	Client *storage.Client
}

// New resolves the credential source, constructs the storage client and
// verifies the bucket is reachable. The credential string is either inline
// service-account JSON or a path to a key file.
func New(ctx context.Context, credentials, bucket string, opts ...Option) (*GCSClient, error) {
	c := &GCSClient{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		credentials:  credentials,
		bucket:       bucket,
	}

	for _, opt := range opts {
		opt(c)
	}

	creds, err := gcpauth.Resolve(c.credentials)
	if err != nil {
		return nil, fmt.Errorf("GCSClient - New - gcpauth.Resolve: %w", err)
	}
	defer creds.Cleanup()

	for c.connAttempts > 0 {
		err = c.connect(ctx, creds)
		if err == nil {
			break
		}

		log.Printf("GCS is trying to connect, attempts left: %d", c.connAttempts)

		time.Sleep(c.connTimeout)

		c.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("GCSClient - New - connAttempts == 0: %w", err)
	}

	return c, nil
}

func (c *GCSClient) connect(ctx context.Context, creds *gcpauth.Credentials) error {
	client, err := storage.NewClient(ctx, creds.ClientOption())
	if err != nil {
		return fmt.Errorf("GCSClient - storage.NewClient: %w", err)
	}

	// check connection
	_, err = client.Bucket(c.bucket).Attrs(ctx)
	if err != nil {
		client.Close()

		return fmt.Errorf("GCSClient - Bucket.Attrs: %w", err)
	}

	c.Client = client

	return nil
}

func (c *GCSClient) Bucket() *storage.BucketHandle {
	return c.Client.Bucket(c.bucket)
}

func (c *GCSClient) BucketName() string {
	return c.bucket
}

func (c *GCSClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}
