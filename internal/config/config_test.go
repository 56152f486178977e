package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	if got := cfg.GetInt("classify.short_word_threshold"); got != 50 {
		t.Errorf("short_word_threshold = %d, want 50", got)
	}
	if got := cfg.GetInt("classify.feed_short_word_threshold"); got != 20 {
		t.Errorf("feed_short_word_threshold = %d, want 20", got)
	}
	if got := cfg.GetBatch().MaxRecords; got != 100 {
		t.Errorf("batch.max_records = %d, want 100", got)
	}
	if got := cfg.GetString("cache.type"); got != "memory" {
		t.Errorf("cache.type = %q, want memory", got)
	}

	feedCfg, err := cfg.GetFeed()
	if err != nil {
		t.Fatalf("GetFeed returned error: %v", err)
	}
	if feedCfg.Provider != "mediastack" {
		t.Errorf("feed.provider = %q, want mediastack", feedCfg.Provider)
	}
	if feedCfg.Timeout != 10*time.Second {
		t.Errorf("feed.timeout = %v, want 10s", feedCfg.Timeout)
	}
	if feedCfg.Limit != 25 {
		t.Errorf("feed.limit = %d, want 25", feedCfg.Limit)
	}
}
