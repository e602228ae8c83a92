package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/JoannaDrx/Catalog/pkg/logging"
)

// S3Client implements Client against AWS S3 or any S3-compatible endpoint.
type S3Client struct {
	client     *s3.Client
	downloader *manager.Downloader
	uploader   *manager.Uploader
	logger     logging.Interface
	config     *Config
}

// NewS3Client creates a new S3-backed object-store client.
func NewS3Client(ctx context.Context, cfg *Config, logger logging.Interface) (*S3Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		defaults := DefaultConfig()
		if cfg.PartSize == 0 {
			cfg.PartSize = defaults.PartSize
		}
		if cfg.Concurrency == 0 {
			cfg.Concurrency = defaults.Concurrency
		}
	}

	awsCfg, err := createAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	downloader := manager.NewDownloader(client, func(d *manager.Downloader) {
		d.PartSize = cfg.PartSize
		d.Concurrency = cfg.Concurrency
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = cfg.PartSize
		u.Concurrency = cfg.Concurrency
		u.LeavePartsOnError = false
	})

	return &S3Client{
		client:     client,
		downloader: downloader,
		uploader:   uploader,
		logger:     logger,
		config:     cfg,
	}, nil
}

func createAWSConfig(ctx context.Context, cfg *Config) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// List enumerates the entries directly under prefix. Sub-prefixes come back
// with a trailing slash, ahead of leaf keys, in lexical order.
func (s *S3Client) List(ctx context.Context, prefix string, opts ...ListOption) ([]string, error) {
	bucket, key, err := ParseLocation(prefix)
	if err != nil {
		return nil, err
	}
	if key != "" && !strings.HasSuffix(key, "/") {
		key += "/"
	}

	options := BuildListOptions(opts...)

	var prefixes, leaves []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Prefix:    aws.String(key),
		Delimiter: aws.String("/"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, NewError("list", prefix, err)
		}
		for _, cp := range page.CommonPrefixes {
			entry := FormatLocation(bucket, aws.ToString(cp.Prefix))
			if options.Match(entry) {
				prefixes = append(prefixes, entry)
			}
		}
		for _, obj := range page.Contents {
			objKey := aws.ToString(obj.Key)
			if objKey == key {
				// placeholder object for the prefix itself
				continue
			}
			entry := FormatLocation(bucket, objKey)
			if options.Match(entry) {
				leaves = append(leaves, entry)
			}
		}
	}

	sort.Strings(prefixes)
	sort.Strings(leaves)
	return append(prefixes, leaves...), nil
}

// IsPrefix reports whether a listed entry is directory-like.
func (s *S3Client) IsPrefix(entry string) bool {
	return strings.HasSuffix(entry, "/")
}

// Copy transfers a single object. Direction is inferred from the location
// schemes: remote->local downloads, local->remote uploads, remote->remote
// copies server-side. It returns the concrete destination path written.
func (s *S3Client) Copy(ctx context.Context, source, destination string) (string, error) {
	switch {
	case IsRemote(source) && IsRemote(destination):
		return s.copyObject(ctx, source, destination)
	case IsRemote(source):
		return s.download(ctx, source, destination)
	case IsRemote(destination):
		return s.upload(ctx, source, destination)
	default:
		return "", NewError("copy", source, fmt.Errorf("%w: local to local copy", ErrNotSupported))
	}
}

// Open streams the object at location.
func (s *S3Client) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, key, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, NewError("open", location, ErrNotFound)
		}
		return nil, NewError("open", location, err)
	}
	return resp.Body, nil
}

func (s *S3Client) copyObject(ctx context.Context, source, destination string) (string, error) {
	srcBucket, srcKey, err := ParseLocation(source)
	if err != nil {
		return "", err
	}
	dstBucket, dstKey, err := ParseLocation(destination)
	if err != nil {
		return "", err
	}

	_, err = s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(dstBucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(srcBucket + "/" + srcKey),
	})
	if err != nil {
		return "", NewError("copy", source, err)
	}

	s.logger.WithField("source", source).WithField("destination", destination).Debug("Copied object")
	return destination, nil
}

func (s *S3Client) download(ctx context.Context, source, destination string) (string, error) {
	bucket, key, err := ParseLocation(source)
	if err != nil {
		return "", err
	}

	target := destination
	if info, statErr := os.Stat(destination); (statErr == nil && info.IsDir()) ||
		strings.HasSuffix(destination, string(os.PathSeparator)) {
		target = filepath.Join(destination, LastSegment(source))
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create target directory: %w", err)
	}

	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create target file: %w", err)
	}
	defer file.Close()

	_, err = s.downloader.Download(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return "", NewError("download", source, ErrNotFound)
		}
		return "", NewError("download", source, err)
	}

	s.logger.WithField("source", source).WithField("target", target).Debug("Downloaded object")
	return target, nil
}

func (s *S3Client) upload(ctx context.Context, source, destination string) (string, error) {
	bucket, key, err := ParseLocation(destination)
	if err != nil {
		return "", err
	}

	file, err := os.Open(source)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer file.Close()

	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return "", NewError("upload", destination, err)
	}

	s.logger.WithField("source", source).WithField("destination", destination).Debug("Uploaded object")
	return destination, nil
}
