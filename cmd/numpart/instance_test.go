package numpart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInstanceFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseInstanceBasic(t *testing.T) {
	path := writeInstanceFile(t, `
# known optimum
8
3
5
4
3
3
2
2
2
1
1
`)
	inst, err := ParseInstance(path)
	require.NoError(t, err)

	assert.Equal(t, 9, inst.N)
	assert.Equal(t, 3, inst.K)
	assert.True(t, inst.HasSolution())
	assert.Equal(t, int64(8), inst.Solution())
	assert.Equal(t, []int64{5, 4, 3, 3, 2, 2, 2, 1, 1}, inst.S)
}

func TestParseInstanceUnknownSolution(t *testing.T) {
	path := writeInstanceFile(t, "-1\n2\n10\n5\n")
	inst, err := ParseInstance(path)
	require.NoError(t, err)
	assert.False(t, inst.HasSolution())
}

func TestParseInstanceSkipsBlankAndCommentLines(t *testing.T) {
	path := writeInstanceFile(t, "\n# comment\n-1\n\n# another\n2\n# sizes follow\n4\n4\n\n")
	inst, err := ParseInstance(path)
	require.NoError(t, err)
	assert.Equal(t, 2, inst.N)
	assert.Equal(t, []int64{4, 4}, inst.S)
}

func TestParseInstanceRejectsNonPositiveSize(t *testing.T) {
	path := writeInstanceFile(t, "-1\n2\n4\n0\n")
	_, err := ParseInstance(path)
	assert.Error(t, err)
}

func TestParseInstanceRejectsOutOfOrderSizes(t *testing.T) {
	path := writeInstanceFile(t, "-1\n2\n4\n5\n")
	_, err := ParseInstance(path)
	assert.Error(t, err)
}

func TestParseInstanceRejectsKLessThanTwo(t *testing.T) {
	path := writeInstanceFile(t, "-1\n1\n4\n3\n")
	_, err := ParseInstance(path)
	assert.Error(t, err)
}

func TestParseInstanceMissingFile(t *testing.T) {
	_, err := ParseInstance(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.Error(t, err)
}
