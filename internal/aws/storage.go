package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/luciopaiva/glacier-retrieve/pkg/provider"
	"github.com/luciopaiva/glacier-retrieve/pkg/types"
)

// AWSStorageProvider implements the StorageProvider interface for S3
type AWSStorageProvider struct {
	client *Client
}

// NewStorageProvider creates a new S3-backed storage provider
func NewStorageProvider(client *Client) *AWSStorageProvider {
	return &AWSStorageProvider{
		client: client,
	}
}

// ListBuckets returns all buckets visible to the caller
func (p *AWSStorageProvider) ListBuckets(ctx context.Context) ([]types.Bucket, error) {
	output, err := p.client.S3.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	var buckets []types.Bucket
	for _, b := range output.Buckets {
		bucket := types.Bucket{
			Name: deref(b.Name),
		}
		if b.CreationDate != nil {
			bucket.CreatedAt = *b.CreationDate
		}
		buckets = append(buckets, bucket)
	}

	return buckets, nil
}

// ListObjectsPage returns one page of objects from a bucket
func (p *AWSStorageProvider) ListObjectsPage(ctx context.Context, bucket, token string) (*provider.ObjectPage, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}
	if token != "" {
		input.ContinuationToken = aws.String(token)
	}

	output, err := p.client.S3.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, err)
	}

	page := &provider.ObjectPage{}
	for _, obj := range output.Contents {
		page.Objects = append(page.Objects, s3ToObject(obj))
	}

	if output.IsTruncated != nil && *output.IsTruncated {
		page.NextToken = deref(output.NextContinuationToken)
	}

	return page, nil
}

// GetObjectMetadata returns head metadata for a single object
func (p *AWSStorageProvider) GetObjectMetadata(ctx context.Context, bucket, key string) (*types.ObjectMetadata, error) {
	output, err := p.client.S3.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to head object %s: %w", key, err)
	}

	meta := &types.ObjectMetadata{
		StorageClass:  string(output.StorageClass),
		RestoreMarker: deref(output.Restore),
	}
	if output.ContentLength != nil {
		meta.Size = *output.ContentLength
	}

	return meta, nil
}

// RequestRestore submits an asynchronous restore for one object
func (p *AWSStorageProvider) RequestRestore(ctx context.Context, bucket, key string, req provider.RestoreRequest) error {
	_, err := p.client.S3.RestoreObject(ctx, &s3.RestoreObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		RestoreRequest: &s3types.RestoreRequest{
			Days: aws.Int32(req.RetentionDays),
			GlacierJobParameters: &s3types.GlacierJobParameters{
				Tier: restoreTier(req.Tier),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to request restore of %s: %w", key, err)
	}

	return nil
}

// restoreTier converts a tier name to the SDK retrieval tier
func restoreTier(tier string) s3types.Tier {
	switch strings.ToLower(tier) {
	case "expedited":
		return s3types.TierExpedited
	case "standard":
		return s3types.TierStandard
	default:
		return s3types.TierBulk
	}
}

// s3ToObject converts an S3 listing entry to the unified Object type
func s3ToObject(obj s3types.Object) types.Object {
	o := types.Object{
		Key:  deref(obj.Key),
		Tier: types.ClassifyTier(string(obj.StorageClass)),
	}

	if obj.Size != nil {
		o.Size = *obj.Size
	}

	if obj.LastModified != nil {
		o.LastModified = *obj.LastModified
	}

	return o
}
