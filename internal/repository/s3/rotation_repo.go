package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/repository"
)

// ObjectAPI is the part of the S3 client the repository uses.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

type rotationCacheRepository struct {
	client ObjectAPI
	bucket string
	key    string
}

// NewRotationCacheRepository keeps the rotation document at bucket/key.
func NewRotationCacheRepository(client ObjectAPI, bucket, key string) *rotationCacheRepository {
	return &rotationCacheRepository{client: client, bucket: bucket, key: key}
}

func (r *rotationCacheRepository) Get(ctx context.Context) (*domain.RotationDocument, error) {
	out, err := r.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", r.bucket, r.key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rotation document: %w", err)
	}

	var doc domain.RotationDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode rotation document: %w", err)
	}
	return &doc, nil
}

// Put replaces the object. S3 writes are atomic per object, so concurrent
// readers see either the old or the new document.
func (r *rotationCacheRepository) Put(ctx context.Context, doc *domain.RotationDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode rotation document: %w", err)
	}

	_, err = r.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(r.key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put s3://%s/%s: %w", r.bucket, r.key, err)
	}
	return nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}

func NewRepositories(client ObjectAPI, bucket, key string) *repository.Repositories {
	return &repository.Repositories{
		RotationCache: NewRotationCacheRepository(client, bucket, key),
	}
}
