package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentSessionKey(t *testing.T) {
	assert.Equal(t, "login:student:42", CacheKey.StudentSessionKey(42))
}

func TestGeneratedNoteKeyIsStable(t *testing.T) {
	a := CacheKey.GeneratedNoteKey("Math", "Fractions")
	b := CacheKey.GeneratedNoteKey("Math", "Fractions")
	assert.Equal(t, a, b)
}

func TestGeneratedNoteKeyVariesByInput(t *testing.T) {
	a := CacheKey.GeneratedNoteKey("Math", "Fractions")
	b := CacheKey.GeneratedNoteKey("Math", "Decimals")
	c := CacheKey.GeneratedNoteKey("Science", "Fractions")
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}
