// Package repair reconciles drift between what the current naming
// convention expects and what actually exists in the blob store. It runs
// repeatedly in production as new drift is discovered, so every pass must be
// idempotent: a second run over a healthy namespace changes nothing.
package repair

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"sync"

	"github.com/drussmiller/sparta-media-go/internal/mimetype"
	"github.com/drussmiller/sparta-media-go/internal/port"
	"github.com/drussmiller/sparta-media-go/internal/resolver"
)

// ErrRenameConflict marks a rename whose target already exists with
// different content. The conflicting object is left untouched: a silent
// overwrite could destroy a legitimately different asset that happens to
// collide on a legacy naming pattern.
var ErrRenameConflict = errors.New("repair: rename target exists with different content")

// DefaultRoots are the storage prefixes scanned when none are configured.
var DefaultRoots = []string{
	resolver.ThumbRoot,
	resolver.UploadRoot + resolver.ThumbRoot,
	"media/" + resolver.ThumbRoot,
}

const DefaultWorkers = 4

// Summary is the outcome of one scan pass.
type Summary struct {
	Checked int `json:"checked"`
	Fixed   int `json:"fixed"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

type Options struct {
	Roots   []string
	Workers int
}

// Scanner walks thumbnail namespaces looking for two defect classes:
// (a) objects named with a video extension whose content is an image, and
// (b) derived images stranded at non-canonical locations.
type Scanner struct {
	strg    port.Storage
	roots   []string
	workers int
	locks   keyedMutex
}

func NewScanner(strg port.Storage, opts Options) *Scanner {
	roots := opts.Roots
	if len(roots) == 0 {
		roots = DefaultRoots
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Scanner{strg: strg, roots: roots, workers: workers}
}

// Scan walks every configured root and fixes what it finds. Different
// objects are processed concurrently; writes to the same logical asset are
// serialised through a per-asset lock. Cancellation is honoured between
// objects, never mid-fix, so an interrupted run leaves no half-renamed
// asset behind.
func (s *Scanner) Scan(ctx context.Context) (Summary, error) {
	keys, err := s.collectKeys(ctx)
	if err != nil {
		return Summary{}, err
	}
	log.Printf("repair scan starting over %d objects in %d roots...", len(keys), len(s.roots))

	var (
		mu      sync.Mutex
		summary Summary
		wg      sync.WaitGroup
	)
	work := make(chan string)

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range work {
				fixed, skipped, err := s.checkObject(ctx, key)

				mu.Lock()
				summary.Checked++
				switch {
				case err != nil:
					summary.Errors++
					log.Printf("repair of %q failed: %v", key, err)
				case fixed:
					summary.Fixed++
				case skipped:
					summary.Skipped++
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, key := range keys {
		select {
		case <-ctx.Done():
			break feed
		case work <- key:
		}
	}
	close(work)
	wg.Wait()

	log.Printf("repair scan done: checked=%d fixed=%d skipped=%d errors=%d",
		summary.Checked, summary.Fixed, summary.Skipped, summary.Errors)
	return summary, ctx.Err()
}

func (s *Scanner) collectKeys(ctx context.Context) ([]string, error) {
	var keys []string
	seen := make(map[string]bool)
	for _, root := range s.roots {
		listed, err := s.strg.ListKeys(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("listing %q failed: %w", root, err)
		}
		for _, k := range listed {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys, nil
}

// checkObject inspects a single object and corrects it if needed. Exactly
// one of fixed/skipped is true on a nil error.
func (s *Scanner) checkObject(ctx context.Context, key string) (fixed, skipped bool, err error) {
	ext := strings.ToLower(path.Ext(key))
	logicalID := resolver.LogicalID(key)

	unlock := s.locks.lock(logicalID)
	defer unlock()

	switch {
	case mimetype.IsVideoExt(ext):
		return s.fixMislabeled(ctx, key, ext)
	case mimetype.IsImageExt(ext):
		return s.fixMisplaced(ctx, key, logicalID, ext)
	default:
		return false, true, nil
	}
}

// fixMislabeled handles defect class (a): a video-extension name over image
// content. The blob store has no atomic rename, so the fix is write-new,
// read back and verify, then delete-old.
func (s *Scanner) fixMislabeled(ctx context.Context, key, ext string) (bool, bool, error) {
	head, err := s.readHead(ctx, key)
	if err != nil {
		return false, false, err
	}

	imgExt, ok := sniffImageExt(head)
	if !ok {
		// content matches the extension, nothing to do
		return false, true, nil
	}

	data, err := s.strg.ReadFile(ctx, key)
	if err != nil {
		return false, false, err
	}

	newKey := strings.TrimSuffix(key, path.Ext(key)) + imgExt

	exists, err := s.strg.FileExists(ctx, newKey)
	if err != nil {
		return false, false, err
	}
	if exists {
		existing, err := s.strg.ReadFile(ctx, newKey)
		if err != nil {
			return false, false, err
		}
		if !bytes.Equal(existing, data) {
			return false, false, fmt.Errorf("%w: %q -> %q", ErrRenameConflict, key, newKey)
		}
		// target already written by an earlier interrupted pass;
		// finishing the rename only needs the delete
		return true, false, s.strg.RemoveFile(ctx, key)
	}

	opts := map[string]string{"Content-Type": mimetype.ForKey(newKey)}
	if err := s.strg.SaveFile(ctx, newKey, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return false, false, fmt.Errorf("writing %q failed: %w", newKey, err)
	}

	// delete the old key only once the new key reads back correctly
	written, err := s.strg.ReadFile(ctx, newKey)
	if err != nil {
		return false, false, fmt.Errorf("verify read of %q failed: %w", newKey, err)
	}
	if !bytes.Equal(written, data) {
		return false, false, fmt.Errorf("verify of %q failed: content mismatch", newKey)
	}
	if err := s.strg.RemoveFile(ctx, key); err != nil {
		return false, false, fmt.Errorf("deleting old key %q failed: %w", key, err)
	}

	log.Printf("renamed mislabeled object %q to %q", key, newKey)
	return true, false, nil
}

// fixMisplaced handles defect class (b): a derived image that exists under
// a legacy location but is missing from its canonical one.
func (s *Scanner) fixMisplaced(ctx context.Context, key, logicalID, ext string) (bool, bool, error) {
	canonical := resolver.CanonicalKeyFor(logicalID, ext)
	if key == canonical {
		return false, true, nil
	}

	exists, err := s.strg.FileExists(ctx, canonical)
	if err != nil {
		return false, false, err
	}
	if exists {
		return false, true, nil
	}

	if err := s.strg.CopyFile(ctx, key, canonical); err != nil {
		return false, false, fmt.Errorf("copying %q to %q failed: %w", key, canonical, err)
	}

	log.Printf("copied misplaced thumbnail %q to canonical key %q", key, canonical)
	return true, false, nil
}

func (s *Scanner) readHead(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.strg.GetFile(ctx, key)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := obj.Close(); err != nil {
			log.Printf("failed to close reader for %q: %v", key, err)
		}
	}()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(obj, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return head[:n], nil
}

// keyedMutex serialises work per logical asset so two workers never race to
// rename the same object.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
