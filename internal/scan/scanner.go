package scan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/fontdex/fontdex/internal/record"
)

// Writer persists the rows of one file. Implementations are called from a
// single goroutine.
type Writer interface {
	WriteFile(ctx context.Context, f record.File) error
}

// Options configures a Scanner. The zero value is usable.
type Options struct {
	// Workers is the number of goroutines reading and parsing files.
	// Zero means runtime.NumCPU(); 1 processes files strictly in walk order.
	Workers int

	// Progress receives one line per written file (its relative path).
	// Nil disables progress output.
	Progress io.Writer

	// Logger receives diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// Summary counts what a scan wrote.
type Summary struct {
	Files      int
	Names      int
	FaceErrors int
}

// Scanner walks a directory tree and writes every file's rows to a Writer.
//
// Files are read and parsed by a pool of workers; all writes go through the
// goroutine that called Run, so the Writer never sees concurrent calls.
type Scanner struct {
	fs     afero.Fs
	writer Writer
	opts   Options
}

// New creates a Scanner reading from fsys and writing to w.
func New(fsys afero.Fs, w Writer, opts Options) *Scanner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Scanner{fs: fsys, writer: w, opts: opts}
}

// Run scans every regular file below root. The first walk, read or write
// error cancels the scan and is returned; face parse failures are recorded as
// error rows and never stop the scan.
func (s *Scanner) Run(ctx context.Context, root string) (Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	entries := make(chan Entry)
	results := make(chan record.File)

	g.Go(func() error {
		defer close(entries)
		return Walk(s.fs, root, s.opts.Logger, func(e Entry) error {
			select {
			case entries <- e:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})

	var wg sync.WaitGroup
	for i := 0; i < s.opts.Workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for e := range entries {
				f, err := s.readFile(e)
				if err != nil {
					return err
				}
				select {
				case results <- f:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Single writer. Stops at the first failure anywhere; blocked senders
	// exit through gctx.
	var sum Summary
	var writeErr error
	for f := range results {
		if gctx.Err() != nil {
			break
		}
		if err := s.write(ctx, f); err != nil {
			writeErr = err
			cancel()
			break
		}
		sum.Files++
		sum.Names += len(f.Names)
		sum.FaceErrors += len(f.Errors)
	}

	err := g.Wait()
	if writeErr != nil {
		return sum, writeErr
	}
	if err == nil {
		// Parent cancellation can race every goroutine to a clean exit.
		err = ctx.Err()
	}
	return sum, err
}

// readFile reads one file fully and parses it.
func (s *Scanner) readFile(e Entry) (record.File, error) {
	data, err := afero.ReadFile(s.fs, e.FullPath)
	if err != nil {
		return record.File{}, fmt.Errorf("read %s: %w", e.Path, err)
	}
	return ProcessFile(e.Path, e.Size, data), nil
}

func (s *Scanner) write(ctx context.Context, f record.File) error {
	if err := s.writer.WriteFile(ctx, f); err != nil {
		return err
	}
	for _, e := range f.Errors {
		s.opts.Logger.Debug("face not parsed", "path", e.Path, "face", e.FaceIndex, "error", e.Reason)
	}
	if s.opts.Progress != nil {
		fmt.Fprintln(s.opts.Progress, f.Font.Path)
	}
	return nil
}
