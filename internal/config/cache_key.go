package config

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

type CacheKeyStruct struct{}

// CacheKey is the shared registry of Redis key builders.
var CacheKey = &CacheKeyStruct{}

// StudentSessionKey returns the cache key for a student's active login session.
func (r *CacheKeyStruct) StudentSessionKey(studentID int) string {
	return fmt.Sprintf("login:student:%d", studentID)
}

// GeneratedNoteKey returns the cache key for a generated study note.
// Keyed by a hash of subject+topic so identical requests reuse the same text.
func (r *CacheKeyStruct) GeneratedNoteKey(subject, topic string) string {
	h := sha1.Sum([]byte(strings.ToLower(subject) + "|" + strings.ToLower(topic)))
	return "note:generated:" + hex.EncodeToString(h[:])
}
