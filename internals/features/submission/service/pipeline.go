// Package service holds the submission pipeline shared by all four
// flows (event registration, delegate pass, concert booking, merch
// order). Each flow supplies a Config and a record builder; the steps
// and their ordering are identical everywhere:
//
//	reference ID → screenshot upload (optional) → row insert → async email
//
// There is no transaction across upload and insert: an upload whose
// insert later fails is left orphaned, and a failed email never fails
// the submission.
package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"utsav_backend/internals/helpers/refid"
)

// Visibility decides what gets persisted for an attachment: public
// buckets store the direct URL, the private concert bucket stores only
// the object key (admin resolves signed URLs later).
type Visibility int

const (
	BucketPublic Visibility = iota
	BucketPrivate
)

// Uploader is the slice of the OSS service the pipeline needs.
type Uploader interface {
	UploadScreenshot(ctx context.Context, dir, refID string, fh *multipart.FileHeader) (key string, err error)
	PublicURL(key string) string
}

// Notifier fires the confirmation email without blocking the caller.
type Notifier interface {
	SendAsync(emailType string, params map[string]string)
}

// Config parameterizes one submission flow.
type Config struct {
	IDPrefix   string
	StorageDir string
	Visibility Visibility
	EmailType  string
}

type Result struct {
	ReferenceID   string
	AttachmentRef string // public URL or bare object key, "" when nothing was uploaded
}

// StepError tags a failure with the pipeline step that produced it so
// controllers can phrase the user-facing message.
type StepError struct {
	Step string // "upload" | "insert"
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

type Pipeline struct {
	DB     *gorm.DB
	Store  Uploader
	Mailer Notifier
}

func NewPipeline(db *gorm.DB, store Uploader, mailer Notifier) *Pipeline {
	return &Pipeline{DB: db, Store: store, Mailer: mailer}
}

// Run executes one submission. The caller validates the form first;
// Run assumes its inputs are good. buildRecord receives the generated
// reference ID and the attachment ref and returns the row to insert;
// emailParams (optional) builds the template params for the
// confirmation email.
func (p *Pipeline) Run(
	ctx context.Context,
	cfg Config,
	screenshot *multipart.FileHeader,
	buildRecord func(id, attachmentRef string) interface{},
	emailParams func(id string) map[string]string,
) (Result, error) {
	id := refid.New(cfg.IDPrefix)

	attachmentRef := ""
	if screenshot != nil {
		key, err := p.Store.UploadScreenshot(ctx, cfg.StorageDir, id, screenshot)
		if err != nil {
			return Result{}, &StepError{Step: "upload", Err: err}
		}
		if cfg.Visibility == BucketPublic {
			attachmentRef = p.Store.PublicURL(key)
		} else {
			attachmentRef = key
		}
	}

	record := buildRecord(id, attachmentRef)
	if err := p.DB.WithContext(ctx).Create(record).Error; err != nil {
		// the uploaded object is not rolled back
		return Result{}, &StepError{Step: "insert", Err: err}
	}

	if p.Mailer != nil && emailParams != nil {
		p.Mailer.SendAsync(cfg.EmailType, emailParams(id))
	}

	return Result{ReferenceID: id, AttachmentRef: attachmentRef}, nil
}
