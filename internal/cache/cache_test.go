package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mr.Close)
	return NewCache(mr.Addr(), ""), mr
}

func TestCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetResolvedKey(ctx, "clip", "thumbnails/clip.jpg", time.Minute)

	got, err := c.GetResolvedKey(ctx, "clip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "thumbnails/clip.jpg" {
		t.Errorf("got %q; want cached key", got)
	}
}

func TestCache_MissIsNotAnError(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.GetResolvedKey(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("miss returned error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q; want empty string on miss", got)
	}
}

func TestCache_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetResolvedKey(ctx, "clip", "thumbnails/clip.jpg", time.Minute)
	if err := c.DeleteResolvedKey(ctx, "clip"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.GetResolvedKey(ctx, "clip")
	if err != nil || got != "" {
		t.Errorf("entry survived delete: (%q, %v)", got, err)
	}
}

func TestCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetResolvedKey(ctx, "clip", "thumbnails/clip.jpg", time.Minute)
	mr.FastForward(2 * time.Minute)

	got, err := c.GetResolvedKey(ctx, "clip")
	if err != nil || got != "" {
		t.Errorf("entry survived its TTL: (%q, %v)", got, err)
	}
}
