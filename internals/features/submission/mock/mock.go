// Package mock provides in-memory stand-ins for the submission
// pipeline's collaborators, used by the flow controller tests.
package mock

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"
)

type Upload struct {
	Dir      string
	RefID    string
	Filename string
}

// Store records uploads instead of talking to a bucket.
type Store struct {
	mu       sync.Mutex
	Uploads  []Upload
	FailWith error
}

func (s *Store) UploadScreenshot(ctx context.Context, dir, refID string, fh *multipart.FileHeader) (string, error) {
	if s.FailWith != nil {
		return "", s.FailWith
	}
	s.mu.Lock()
	s.Uploads = append(s.Uploads, Upload{Dir: dir, RefID: refID, Filename: fh.Filename})
	s.mu.Unlock()
	return fmt.Sprintf("%s/%s_1%s", dir, refID, ".png"), nil
}

func (s *Store) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func (s *Store) UploadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Uploads)
}

type Call struct {
	EmailType string
	Params    map[string]string
}

// Notifier records fire-and-forget email calls.
type Notifier struct {
	mu    sync.Mutex
	Calls []Call
}

func (n *Notifier) SendAsync(emailType string, params map[string]string) {
	n.mu.Lock()
	n.Calls = append(n.Calls, Call{EmailType: emailType, Params: params})
	n.mu.Unlock()
}

func (n *Notifier) CallCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Calls)
}
