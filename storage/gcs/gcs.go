// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcs publishes rendered charts and reports to a Google Cloud
// Storage bucket.
package gcs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// An Uploader copies local files into a bucket under a common prefix.
type Uploader struct {
	Bucket string
	Prefix string // object name prefix, without leading or trailing "/"

	client *storage.Client
}

// TokenSource returns the application default credentials scoped for
// writing objects.
func TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	return google.DefaultTokenSource(ctx, storage.ScopeReadWrite)
}

// NewUploader returns an Uploader for bucket. If opts is empty, the
// client authenticates with TokenSource.
func NewUploader(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs: empty bucket name")
	}
	if len(opts) == 0 {
		ts, err := TokenSource(ctx)
		if err != nil {
			return nil, fmt.Errorf("gcs: credentials: %w", err)
		}
		opts = []option.ClientOption{option.WithTokenSource(ts)}
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Uploader{Bucket: bucket, Prefix: strings.Trim(prefix, "/"), client: client}, nil
}

// ObjectName returns the name under which the file at p is stored.
func (u *Uploader) ObjectName(p string) string {
	base := filepath.Base(p)
	if u.Prefix == "" {
		return base
	}
	return path.Join(u.Prefix, base)
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".csv":  "text/csv; charset=utf-8",
	".html": "text/html; charset=utf-8",
	".txt":  "text/plain; charset=utf-8",
}

// ContentType returns the MIME type stored with the file at p.
func ContentType(p string) string {
	if t, ok := contentTypes[strings.ToLower(filepath.Ext(p))]; ok {
		return t
	}
	return "application/octet-stream"
}

// Upload copies the file at p to the bucket and returns its gs:// URL.
func (u *Uploader) Upload(ctx context.Context, p string) (string, error) {
	f, err := os.Open(p)
	if err != nil {
		return "", err
	}
	defer f.Close()

	name := u.ObjectName(p)
	w := u.client.Bucket(u.Bucket).Object(name).NewWriter(ctx)
	w.ContentType = ContentType(p)
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return "", fmt.Errorf("upload %s: %w", p, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", p, err)
	}
	return fmt.Sprintf("gs://%s/%s", u.Bucket, name), nil
}

// Close releases the underlying client.
func (u *Uploader) Close() error {
	return u.client.Close()
}
