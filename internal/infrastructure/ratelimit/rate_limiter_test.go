package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfiguredMessageBudget(t *testing.T) {
	limiter := NewRateLimiter(2)

	allowed, _ := limiter.Allow("alice", "send_message")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("alice", "send_message")
	assert.True(t, allowed)

	allowed, retryAfter := limiter.Allow("alice", "send_message")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))

	// Other users and other actions keep their own buckets.
	allowed, _ = limiter.Allow("bob", "send_message")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("alice", "swipe")
	assert.True(t, allowed)
}

func TestZeroBudgetFallsBackToDefault(t *testing.T) {
	limiter := NewRateLimiter(0)
	assert.Equal(t, DefaultMessagesPerMinute, limiter.messagesPerMinute)

	allowed, _ := limiter.Allow("alice", "send_message")
	assert.True(t, allowed)
}

func TestBucketRefills(t *testing.T) {
	bucket := NewTokenBucket(1, 1, 10*time.Millisecond)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)
	allowed, _ = bucket.Allow()
	assert.False(t, allowed)

	time.Sleep(15 * time.Millisecond)
	allowed, _ = bucket.Allow()
	assert.True(t, allowed)
}
