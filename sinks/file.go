// FILE: sinks/file.go
package sinks

import (
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/loggable-io/loggable"
)

// File writes records as text lines to a size-rotated log file. Rotation and
// backup retention are delegated to lumberjack.
type File struct {
	mu              sync.Mutex
	out             *lumberjack.Logger
	timestampFormat string
}

// FileOption customizes a File sink.
type FileOption func(*File)

// WithMaxSizeMB sets the rotation threshold in megabytes (default 10).
func WithMaxSizeMB(size int) FileOption {
	return func(s *File) {
		s.out.MaxSize = size
	}
}

// WithMaxBackups sets how many rotated files to retain (default 5).
func WithMaxBackups(count int) FileOption {
	return func(s *File) {
		s.out.MaxBackups = count
	}
}

// WithMaxAgeDays sets the retention age for rotated files in days
// (default 0 = keep by count only).
func WithMaxAgeDays(days int) FileOption {
	return func(s *File) {
		s.out.MaxAge = days
	}
}

// WithCompression gzip-compresses rotated files.
func WithCompression() FileOption {
	return func(s *File) {
		s.out.Compress = true
	}
}

// WithFileTimestampFormat overrides the timestamp layout (default RFC3339).
func WithFileTimestampFormat(layout string) FileOption {
	return func(s *File) {
		s.timestampFormat = layout
	}
}

// NewFile creates a rotating file sink writing to path. The file is created
// lazily on first write.
func NewFile(path string, opts ...FileOption) *File {
	s := &File{
		out: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10,
			MaxBackups: 5,
		},
		timestampFormat: time.RFC3339,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Consume implements loggable.Sink.
func (s *File) Consume(rec loggable.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeTextLine(s.out, s.timestampFormat, rec)
}

// Close closes the underlying file.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Close()
}
