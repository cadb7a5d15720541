package minio

import "github.com/friendsofgo/errors"

var (
	ErrNotConnected       = errors.New("minio: not connected")
	ErrEndpointRequired   = errors.New("minio: endpoint is required")
	ErrCredentialRequired = errors.New("minio: access key and secret key are required")
	ErrBucketNameRequired = errors.New("minio: bucket name is required")
)
