// Package storage holds the uploaded display assets (wallpaper image,
// alarm tone). Assets live in fixed slots, one file per slot, so an
// upload always replaces the previous asset of that kind.
package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

// DefaultMaxAssetBytes caps uploads at 8 MiB. A display wallpaper or a
// short alarm tone comfortably fits; anything bigger is a mistake.
const DefaultMaxAssetBytes = 8 << 20

// Storage persists slot assets and tells the HTTP layer where to serve
// them from.
type Storage interface {
	Save(name, mimeType string, data []byte) error
	URL(name string) (string, bool)
}

// LocalStorage writes assets to a directory on the display box.
type LocalStorage struct {
	uploadDir string
	maxBytes  int
}

func NewLocalStorage(uploadDir string, maxBytes int) *LocalStorage {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxAssetBytes
	}
	return &LocalStorage{uploadDir: uploadDir, maxBytes: maxBytes}
}

func (ls *LocalStorage) Save(name, mimeType string, data []byte) error {
	if len(data) > ls.maxBytes {
		return fmt.Errorf("asset %s is %d bytes, exceeds the %d byte limit", name, len(data), ls.maxBytes)
	}
	if err := os.MkdirAll(ls.uploadDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(ls.uploadDir, name+extensionFor(mimeType))
	// Drop stale variants of the slot written under a different extension.
	if old, ok := ls.find(name); ok && old != path {
		if err := os.Remove(old); err != nil {
			log.Warn().Err(err).Str("path", old).Msg("failed to remove stale asset")
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write asset %s: %w", name, err)
	}
	log.Debug().Str("asset", name).Int("bytes", len(data)).Msg("asset stored")
	return nil
}

// URL returns the serve path for a slot, relative to the assets route.
func (ls *LocalStorage) URL(name string) (string, bool) {
	path, ok := ls.find(name)
	if !ok {
		return "", false
	}
	return "/assets/" + filepath.Base(path), ok
}

// Dir is the directory the HTTP layer serves as /assets.
func (ls *LocalStorage) Dir() string { return ls.uploadDir }

func (ls *LocalStorage) find(name string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(ls.uploadDir, name+".*"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// SpacesStorage uploads assets to an S3-compatible bucket fronted by a
// CDN, for installations that pair many displays with one panel.
type SpacesStorage struct {
	client   *s3.S3
	bucket   string
	cdnURL   string
	maxBytes int
	keys     map[string]string
}

func NewSpacesStorage(endpoint, region, bucket, cdnURL, accessKey, secretKey string, maxBytes int) (*SpacesStorage, error) {
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

	if maxBytes <= 0 {
		maxBytes = DefaultMaxAssetBytes
	}
	return &SpacesStorage{
		client:   s3.New(sess),
		bucket:   bucket,
		cdnURL:   cdnURL,
		maxBytes: maxBytes,
		keys:     make(map[string]string),
	}, nil
}

func (ss *SpacesStorage) Save(name, mimeType string, data []byte) error {
	if len(data) > ss.maxBytes {
		return fmt.Errorf("asset %s is %d bytes, exceeds the %d byte limit", name, len(data), ss.maxBytes)
	}

	key := fmt.Sprintf("assets/%s%s", name, extensionFor(mimeType))
	_, err := ss.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(ss.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		log.Error().Err(err).Str("asset", name).Msg("failed to upload asset")
		return fmt.Errorf("failed to upload to bucket: %w", err)
	}
	ss.keys[name] = key
	return nil
}

func (ss *SpacesStorage) URL(name string) (string, bool) {
	key, ok := ss.keys[name]
	if !ok {
		return "", false
	}
	return strings.TrimSuffix(ss.cdnURL, "/") + "/" + key, true
}

func extensionFor(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/ogg":
		return ".ogg"
	case "audio/wav", "audio/x-wav":
		return ".wav"
	default:
		return ".bin"
	}
}
