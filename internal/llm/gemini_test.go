package llm

import (
	"errors"
	"sync"
	"testing"
)

func TestNewGeminiRequiresKeys(t *testing.T) {
	if _, err := NewGemini(nil, "gemini-2.5-flash", 0.3, testLogger()); err == nil {
		t.Fatal("expected error without API keys")
	}
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"http 429", errors.New("googleapi: Error 429: rate limit"), true},
		{"quota message", errors.New("quota exceeded for project"), true},
		{"resource exhausted", errors.New("rpc error: code = RESOURCE_EXHAUSTED"), true},
		{"other error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isQuotaError(tt.err); got != tt.want {
				t.Errorf("isQuotaError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRotateKey(t *testing.T) {
	c := &implGemini{apiKeys: []string{"a", "b", "c"}}

	order := []int{1, 2, 0, 1}
	for i, want := range order {
		c.rotateKey()
		if c.currentKey != want {
			t.Fatalf("rotation %d: currentKey = %d, want %d", i+1, c.currentKey, want)
		}
	}
}

// The map phase fans Complete out across goroutines, so key reads and
// rotations from concurrent quota-error branches must be safe.
func TestRotateKeyConcurrent(t *testing.T) {
	c := &implGemini{apiKeys: []string{"a", "b", "c"}}

	const workers = 3
	const rotationsEach = 100

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rotationsEach {
				key, index := c.activeKey()
				if key == "" || index < 0 || index >= len(c.apiKeys) {
					t.Errorf("activeKey() = %q, %d", key, index)
					return
				}
				c.rotateKey()
			}
		}()
	}
	wg.Wait()

	if want := (workers * rotationsEach) % 3; c.currentKey != want {
		t.Errorf("currentKey = %d after %d rotations, want %d", c.currentKey, workers*rotationsEach, want)
	}
}
