package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBulkIngestBucketExhausts(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("admin-1", "bulk_ingest")
		assert.True(t, allowed, "upload %d should pass", i+1)
	}

	allowed, wait := rl.Allow("admin-1", "bulk_ingest")
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestBucketsAreScopedPerUserAndAction(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 3; i++ {
		rl.Allow("admin-1", "bulk_ingest")
	}

	allowed, _ := rl.Allow("admin-2", "bulk_ingest")
	assert.True(t, allowed, "another user has their own bucket")

	allowed, _ = rl.Allow("admin-1", "mutation")
	assert.True(t, allowed, "another action has its own bucket")
}

func TestTokenBucketRefills(t *testing.T) {
	tb := NewTokenBucket(1, 1, 10*time.Millisecond)

	allowed, _ := tb.Allow()
	assert.True(t, allowed)

	allowed, _ = tb.Allow()
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)
	allowed, _ = tb.Allow()
	assert.True(t, allowed)
}
