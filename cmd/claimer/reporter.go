package main

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
)

// sentryReporter sends account and pass failures to Sentry.
type sentryReporter struct {
	hub *sentry.Hub
}

func newSentryReporter(opts sentry.ClientOptions) (*sentryReporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, err
	}
	return &sentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Report captures err with tags. Safe for concurrent use.
func (r *sentryReporter) Report(_ context.Context, err error, tags map[string]string) {
	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		hub.CaptureException(err)
	})
}

func (r *sentryReporter) Flush(timeout time.Duration) {
	r.hub.Flush(timeout)
}
