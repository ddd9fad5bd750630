package itf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDBName(t *testing.T) {
	assert.Equal(t, "testactivityrepository_create", sanitizeDBName("TestActivityRepository/Create"))
	assert.Equal(t, "a_b_c", sanitizeDBName("a -- b (c)"))
	assert.Equal(t, "test_db", sanitizeDBName("///"))

	long := sanitizeDBName("Test" + strings.Repeat("VeryLongSubtestName/", 10))
	assert.Len(t, long, maxDBNameLength)
	assert.NotEqual(t, long, sanitizeDBName("Test"+strings.Repeat("VeryLongSubtestName/", 11)))
}
