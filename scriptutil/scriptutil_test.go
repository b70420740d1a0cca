// File: scriptutil/scriptutil_test.go
package scriptutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edespino/scriptbox/scriptutil"
)

func TestStackLIFO(t *testing.T) {
	var s scriptutil.Stack[int]

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, s.Len())
}

func TestStackPopEmptyIsNoOp(t *testing.T) {
	var s scriptutil.Stack[string]

	got, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", got)
	assert.Equal(t, 0, s.Len())
}

func TestStackPeek(t *testing.T) {
	var s scriptutil.Stack[int]

	_, ok := s.Peek()
	assert.False(t, ok)

	s.Push(9)
	got, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 9, got)
	assert.Equal(t, 1, s.Len())
}

func TestContains(t *testing.T) {
	assert.True(t, scriptutil.Contains([]int{1, 2, 3}, 2))
	assert.False(t, scriptutil.Contains([]int{1, 2, 3}, 4))
	assert.True(t, scriptutil.Contains([]string{"a", "b"}, "b"))
	assert.False(t, scriptutil.Contains([]string{}, "a"))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, scriptutil.Min(1, 2, 3))
	assert.Equal(t, 3, scriptutil.Max(1, 2, 3))
	assert.Equal(t, 5, scriptutil.Min(5))
	assert.Equal(t, 5, scriptutil.Max(5))
	assert.Equal(t, -2, scriptutil.Min(3, -2, 7))
	assert.Equal(t, "c", scriptutil.Max("a", "c", "b"))
}

func TestFormatHHMMSS(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{3661, "01:01:01"},
		{12345, "03:25:45"},
		{59, "00:00:59"},
		{90000, "25:00:00"}, // hours are not wrapped at 24
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scriptutil.FormatHHMMSS(tt.seconds))
	}
}

func TestHHMMSS(t *testing.T) {
	got, err := scriptutil.HHMMSS("3661")
	require.NoError(t, err)
	assert.Equal(t, "01:01:01", got)

	got, err = scriptutil.HHMMSS("0")
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", got)
}

func TestHHMMSSEchoesBadInput(t *testing.T) {
	got, err := scriptutil.HHMMSS("abc")
	assert.Error(t, err)
	assert.Equal(t, "abc", got)

	got, err = scriptutil.HHMMSS("-5")
	assert.Error(t, err)
	assert.Equal(t, "-5", got)
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")

	require.NoError(t, scriptutil.EnsureDir(nested))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing path.
	assert.NoError(t, scriptutil.EnsureDir(nested))
}
