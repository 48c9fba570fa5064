package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("object not found")

// Storage serves the calendar's data files and media assets.
type Storage interface {
	// Open reads a data file such as "holidays.json".
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// URL is the public address of an asset such as "jan_flower.png".
	URL(name string) string
	// SaveFile stores an uploaded asset and returns its public URL.
	SaveFile(fileHeader *multipart.FileHeader, filename string) (string, error)
}

type LocalStorage struct {
	dataDir   string
	uploadDir string
	baseURL   string
}

type SpacesStorage struct {
	client     *s3.S3
	bucket     string
	cdnURL     string
	dataPrefix string
}

// NewLocalStorage reads data files from dataDir and keeps uploads in uploadDir,
// served by the HTTP server under baseURL.
func NewLocalStorage(dataDir, uploadDir, baseURL string) *LocalStorage {
	return &LocalStorage{dataDir: dataDir, uploadDir: uploadDir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func NewSpacesStorage(endpoint, region, bucket, cdnURL, accessKey, secretKey, dataPrefix string) (*SpacesStorage, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStorage{
		client:     s3.New(sess),
		bucket:     bucket,
		cdnURL:     strings.TrimSuffix(cdnURL, "/"),
		dataPrefix: strings.Trim(dataPrefix, "/"),
	}, nil
}

// normalizeFilename creates a unique, normalized filename without spaces
func normalizeFilename(originalFilename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	baseName := strings.TrimSuffix(filepath.Base(originalFilename), filepath.Ext(originalFilename))

	baseName = strings.ReplaceAll(baseName, " ", "_")
	reg := regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	baseName = reg.ReplaceAllString(baseName, "")
	if baseName == "" {
		baseName = "file"
	}

	return fmt.Sprintf("%s_%s%s", baseName, now.Format("20060102_150405"), ext)
}

func (ls *LocalStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(ls.dataDir, filepath.Clean("/"+name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return f, nil
}

func (ls *LocalStorage) URL(name string) string {
	if name == "" {
		return ""
	}
	return ls.baseURL + "/" + strings.TrimPrefix(name, "/")
}

func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, filename string) (string, error) {
	normalizedFilename := normalizeFilename(filename, time.Now())
	log.Debug().Str("original", filename).Str("normalized", normalizedFilename).Msg("asset upload normalized")
	uploadPath := filepath.Join(ls.uploadDir, normalizedFilename)

	if err := os.MkdirAll(ls.uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(uploadPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return ls.URL(normalizedFilename), nil
}

func (ss *SpacesStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := path.Join(ss.dataPrefix, name)
	out, err := ss.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ss.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		log.Error().Err(err).Str("key", key).Msg("failed to read object from Spaces")
		return nil, fmt.Errorf("failed to read %s from Spaces: %w", key, err)
	}
	return out.Body, nil
}

func (ss *SpacesStorage) URL(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", ss.cdnURL, strings.TrimPrefix(name, "/"))
}

func (ss *SpacesStorage) SaveFile(fileHeader *multipart.FileHeader, filename string) (string, error) {
	normalizedFilename := normalizeFilename(filename, time.Now())
	log.Debug().Str("original", filename).Str("normalized", normalizedFilename).Msg("asset upload normalized")

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("uploads/%s", normalizedFilename)
	_, err = ss.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(ss.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(getContentType(normalizedFilename)),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to upload asset to Spaces")
		return "", fmt.Errorf("failed to upload to Spaces: %w", err)
	}

	return ss.URL(key), nil
}

func getContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
