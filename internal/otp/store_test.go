// internal/otp/store_test.go
package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAndGet(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	s.Put("+15550001111", "123456", time.Minute)

	code, ok := s.Get("+15550001111")
	require.True(t, ok)
	assert.Equal(t, "123456", code)
}

func TestGetMissingKey(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	code, ok := s.Get("+15550001111")
	assert.False(t, ok)
	assert.Empty(t, code)
}

func TestExpiredCodeIsGone(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	s.Put("+15550001111", "123456", -time.Second)

	_, ok := s.Get("+15550001111")
	assert.False(t, ok)
}

func TestPutReplacesPreviousCode(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	s.Put("+15550001111", "111111", time.Minute)
	s.Put("+15550001111", "222222", time.Minute)

	code, ok := s.Get("+15550001111")
	require.True(t, ok)
	assert.Equal(t, "222222", code)
}

func TestDeleteConsumesCode(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	s.Put("+15550001111", "123456", time.Minute)
	s.Delete("+15550001111")

	_, ok := s.Get("+15550001111")
	assert.False(t, ok)
}
