// Package bank loads and normalizes minigame content from a content
// directory: speed-quiz prompts, picture-guess images, hinted-photo sets,
// song tracks, and true/false items. Results are cached with a TTL so
// repeated round starts during one event do not re-read the disk.
package bank

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/iniiswil/speed-quiz/games"
)

// Source lists and reads content files. The os-backed implementation lives in
// DirSource; tests substitute an in-memory one.
type Source interface {
	List(ctx context.Context, dir string) ([]string, error)
	Read(ctx context.Context, name string) ([]byte, error)
}

// Bank implements games.ContentSource on top of a Source.
type Bank struct {
	source Source
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu    sync.RWMutex
	cache map[string]cached
}

type cached struct {
	value     any
	expiresAt time.Time
}

// New creates a bank; ttl <= 0 disables caching.
func New(source Source, ttl time.Duration) *Bank {
	return &Bank{
		source: source,
		ttl:    ttl,
		clock:  time.Now,
		cache:  make(map[string]cached),
	}
}

// Questions returns the combined speed and act-it-out prompt pool.
func (b *Bank) Questions(ctx context.Context) ([]games.QuestionItem, error) {
	return load(b, ctx, "questions", b.loadQuestions)
}

// CatchmindImages returns the picture-guess pool with suffix-derived points.
func (b *Bank) CatchmindImages(ctx context.Context) ([]games.ImageAsset, error) {
	return load(b, ctx, "catchmind", b.loadCatchmindImages)
}

// PhotoSets returns the complete three-image hint sets.
func (b *Bank) PhotoSets(ctx context.Context) ([]games.PhotoSet, error) {
	return load(b, ctx, "photos", b.loadPhotoSets)
}

// Songs returns the song-guess track list.
func (b *Bank) Songs(ctx context.Context) ([]games.SongAsset, error) {
	return load(b, ctx, "songs", b.loadSongs)
}

// TrueFalseItems returns the parsed O/X question list.
func (b *Bank) TrueFalseItems(ctx context.Context) ([]games.TrueFalseItem, error) {
	return load(b, ctx, "oxquiz", b.loadTrueFalseItems)
}

// Invalidate drops all cached content so the next load re-reads the source.
func (b *Bank) Invalidate() {
	b.mu.Lock()
	b.cache = make(map[string]cached)
	b.mu.Unlock()
}

// load serves a typed value from the cache, collapsing concurrent loads of
// the same key through singleflight.
func load[T any](b *Bank, ctx context.Context, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T

	if b.ttl > 0 {
		now := b.clock()
		b.mu.RLock()
		if entry, ok := b.cache[key]; ok && entry.expiresAt.After(now) {
			b.mu.RUnlock()
			return entry.value.(T), nil
		}
		b.mu.RUnlock()
	}

	result, err, _ := b.sf.Do(key, func() (any, error) {
		value, err := loader(ctx)
		if err != nil {
			return zero, err
		}
		if b.ttl > 0 {
			b.mu.Lock()
			b.cache[key] = cached{
				value:     value,
				expiresAt: b.clock().Add(b.ttl),
			}
			b.mu.Unlock()
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}
