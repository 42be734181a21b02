package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"studykit/internal/cache"
	"studykit/internal/domain"
	"studykit/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SummaryCache caches successful summaries keyed by a digest of the source
// content plus the requested length. Concurrent identical requests are
// collapsed into one upstream call. Degraded results never reach the cache
// because failed generations return an error before the Set.
type SummaryCache struct {
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewSummaryCache wraps c with the summary caching policy.
func NewSummaryCache(c domain.Cache, ttl time.Duration) *SummaryCache {
	return &SummaryCache{cache: c, ttl: ttl}
}

func summaryCacheKey(content domain.Content, targetLength string) string {
	h := sha256.New()
	if content.File != nil {
		h.Write([]byte(content.File.MIMEType))
		h.Write([]byte(content.File.Data))
	} else {
		h.Write([]byte(content.Text))
	}
	return cache.GenerateCacheKey("study", "summary", hex.EncodeToString(h.Sum(nil)), targetLength)
}

// GetOrGenerate returns the cached summary when present, otherwise invokes
// generate once (deduplicated across concurrent callers) and caches the
// result. Cache failures are logged and treated as misses.
func (s *SummaryCache) GetOrGenerate(ctx context.Context, content domain.Content, targetLength string, generate func(context.Context) (string, error)) (string, error) {
	key := summaryCacheKey(content, targetLength)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		return cached, nil
	}
	if err != domain.ErrCacheMiss {
		logger.Get().Warn("summary cache read failed", zap.Error(err))
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		text, err := generate(ctx)
		if err != nil {
			return nil, err
		}
		if setErr := s.cache.Set(ctx, key, text, s.ttl); setErr != nil {
			logger.Get().Warn("summary cache write failed", zap.Error(setErr))
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
