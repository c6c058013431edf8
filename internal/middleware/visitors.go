package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// VisitRecorder stores a page view
type VisitRecorder interface {
	Record(ctx context.Context, ip, userAgent, path string) error
}

var untrackedPrefixes = []string{"/static/", "/api/", "/favicon"}

const recordTimeout = 5 * time.Second

// VisitTracker records page views in the background. Asset, API and health
// requests are skipped, and so are visitors who send DNT: 1.
type VisitTracker struct {
	recorder VisitRecorder
	wg       sync.WaitGroup
}

// NewVisitTracker creates a tracker writing to recorder
func NewVisitTracker(recorder VisitRecorder) *VisitTracker {
	return &VisitTracker{recorder: recorder}
}

// Handler is the tracking middleware
func (t *VisitTracker) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Tracked(r) {
			ip, ua, path := ClientIP(r), r.UserAgent(), r.URL.Path
			t.wg.Add(1)
			go func() {
				defer t.wg.Done()
				ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
				defer cancel()
				if err := t.recorder.Record(ctx, ip, ua, path); err != nil {
					logrus.WithError(err).Warn("Failed to record visit")
				}
			}()
		}
		next.ServeHTTP(w, r)
	})
}

// Wait blocks until every pending visit has been written. Call it after the
// server has stopped accepting requests and before closing the recorder.
func (t *VisitTracker) Wait() {
	t.wg.Wait()
}

// Tracked reports whether a request counts as a page view
func Tracked(r *http.Request) bool {
	if r.Method != http.MethodGet || r.Header.Get("DNT") == "1" {
		return false
	}
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return true
}
