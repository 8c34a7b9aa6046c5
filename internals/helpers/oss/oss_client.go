package oss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

/* =======================================================================
   OSS Service
   One instance per bucket. The fest uses two: a public bucket for
   registration/delegate/merch screenshots (direct URLs) and a private
   one for concert payments, which only ever stores the object key and
   hands out short-lived signed URLs on the admin side.
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Public     bool
}

func newOSSService(bucketName string, public bool) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY or bucket name")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Public:     public,
	}, nil
}

// NewPublicFromEnv opens the public screenshot bucket (ALI_OSS_BUCKET).
func NewPublicFromEnv() (*OSSService, error) {
	return newOSSService(getEnv("ALI_OSS_BUCKET"), true)
}

// NewPrivateFromEnv opens the private concert bucket
// (ALI_OSS_BUCKET_PRIVATE). Falls back to the public bucket name when
// unset so a single-bucket deployment still works.
func NewPrivateFromEnv() (*OSSService, error) {
	name := getEnv("ALI_OSS_BUCKET_PRIVATE")
	if name == "" {
		name = getEnv("ALI_OSS_BUCKET")
	}
	return newOSSService(name, false)
}

/* =======================================================================
   Upload
======================================================================= */

// UploadScreenshot stores fh under "<dir>/<refID>_<unix-millis><ext>"
// and returns the object key. The bytes go up as-is unless the WebP
// re-encode path is enabled (see screenshot_webp.go).
func (s *OSSService) UploadScreenshot(ctx context.Context, dir, refID string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	ct := sniffContentType(all, ext)

	if webpEnabled() {
		if converted, cerr := reencodeWebP(all); cerr == nil {
			all = converted
			ext = ".webp"
			ct = "image/webp"
		} else {
			log.Printf("[OSS] webp re-encode skipped (%s): %v", fh.Filename, cerr)
		}
	}

	key := fmt.Sprintf("%s/%s_%d%s", strings.Trim(dir, "/"), refID, time.Now().UnixMilli(), ext)

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(all), opts...); err != nil {
		return "", err
	}
	return key, nil
}

func sniffContentType(all []byte, ext string) string {
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	if ct == "application/octet-stream" {
		switch ext {
		case ".jpg", ".jpeg":
			ct = "image/jpeg"
		case ".png":
			ct = "image/png"
		case ".webp":
			ct = "image/webp"
		}
	}
	return ct
}

/* =======================================================================
   URLs
======================================================================= */

// PublicURL builds the direct URL for a key in a public bucket.
func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

// SignedURL hands out a time-limited GET URL for a private object.
func (s *OSSService) SignedURL(key string, ttl time.Duration) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty key")
	}
	return s.Bucket.SignURL(key, oss.HTTPGet, int64(ttl.Seconds()))
}

// DeleteObject removes a key; used only by ops tooling, never by the
// submission path (orphaned uploads are an accepted leak).
func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}
