package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneTimeCredentialStoreSetGetDelete(t *testing.T) {
	store := NewOneTimeCredentialStore()

	store.Set("otp:asha@example.com", "123456", time.Minute)

	value, ok := store.Get("otp:asha@example.com")
	require.True(t, ok)
	assert.Equal(t, "123456", value)

	store.Delete("otp:asha@example.com")
	_, ok = store.Get("otp:asha@example.com")
	assert.False(t, ok)
}

func TestOneTimeCredentialStoreExpiry(t *testing.T) {
	store := NewOneTimeCredentialStore()

	store.Set("key", "value", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get("key")
	assert.False(t, ok)
}

func TestOneTimeCredentialStoreEntriesExpireIndependently(t *testing.T) {
	store := NewOneTimeCredentialStore()

	store.Set("short", "a", 10*time.Millisecond)
	store.Set("long", "b", time.Minute)
	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get("short")
	assert.False(t, ok)
	value, ok := store.Get("long")
	require.True(t, ok)
	assert.Equal(t, "b", value)
}

func TestOneTimeCredentialStoreOverwrite(t *testing.T) {
	store := NewOneTimeCredentialStore()

	store.Set("key", "first", time.Minute)
	store.Set("key", "second", time.Minute)

	value, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, "second", value)
}
