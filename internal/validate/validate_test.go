package validate

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamlwhisperer/cli/internal/testutil"
)

func TestValidateFile_Valid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		docs    int
	}{
		{name: "mapping with flow sequence", content: "a: 1\nb: [2, 3]\n", docs: 1},
		{name: "empty file", content: "", docs: 0},
		{name: "comments only", content: "# nothing here\n", docs: 0},
		{name: "explicit null document", content: "---\n", docs: 1},
		{name: "leading document marker", content: "---\nkind: Service\n", docs: 1},
		{name: "anchors and merge keys", content: "base: &b {x: 1}\nchild:\n  <<: *b\n  y: 2\n", docs: 1},
		{name: "standard tags", content: "s: !!str 1\ni: !!int 2\nb: !!binary aGVsbG8=\nt: !!timestamp 2001-12-14\n", docs: 1},
		{name: "block scalar", content: "script: |\n  echo hi\n  exit 0\n", docs: 1},
	}

	dir := t.TempDir()
	v := New(Options{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml", tt.content)

			res := v.ValidateFile(path)

			require.NoError(t, res.Err)
			assert.True(t, res.OK())
			assert.Equal(t, Valid, res.Outcome)
			assert.Equal(t, tt.docs, res.Documents)
			assert.Equal(t, path, res.Path)
		})
	}
}

func TestValidateFile_SyntaxError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unclosed flow sequence", content: "a: [1, 2\n"},
		{name: "unclosed flow sequence value", content: "key: [unclosed"},
		{name: "bad indentation", content: "a:\n  b: 1\n c: 2\n"},
		{name: "unterminated quote", content: "a: \"open\n"},
		{name: "duplicate keys", content: "a: 1\na: 2\n"},
		{name: "tab indentation", content: "a:\n\tb: 1\n"},
		{name: "bad int construction", content: "n: !!int twelve\n"},
	}

	dir := t.TempDir()
	v := New(Options{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml", tt.content)

			res := v.ValidateFile(path)

			require.Error(t, res.Err)
			assert.False(t, res.OK())
			assert.Equal(t, SyntaxError, res.Outcome)
			assert.Empty(t, res.Explanation, "explanations are off by default")
		})
	}
}

func TestValidateFile_DiagnosticIsTruncated(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "bad.yaml", "a: [1, 2\n")

	res := New(Options{}).ValidateFile(path)

	require.Equal(t, SyntaxError, res.Outcome)
	assert.Contains(t, res.Err.Error(), "line")
	assert.Equal(t, "yaml: ", res.Message())
}

func TestValidateFile_UnsafeTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		tag     string
	}{
		{
			name:    "python object",
			content: "cmd: !!python/object/apply:os.system [\"ls\"]\n",
			tag:     "!!python/object/apply:os.system",
		},
		{
			name:    "local tag",
			content: "bucket: !Ref MyBucket\n",
			tag:     "!Ref",
		},
		{
			name:    "tag on mapping",
			content: "obj: !custom\n  a: 1\n",
			tag:     "!custom",
		},
	}

	dir := t.TempDir()
	v := New(Options{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml", tt.content)

			res := v.ValidateFile(path)

			assert.Equal(t, SyntaxError, res.Outcome)
			var tagErr *TagError
			require.True(t, errors.As(res.Err, &tagErr))
			assert.Equal(t, tt.tag, tagErr.Tag)
			assert.Greater(t, tagErr.Line, 0)
		})
	}
}

func TestValidateFile_MultipleDocuments(t *testing.T) {
	dir := t.TempDir()
	stream := testutil.WriteFile(t, dir, "stream.yaml", "kind: Service\n---\nkind: Deployment\n")
	trailing := testutil.WriteFile(t, dir, "trailing.yaml", "a: 1\n---\n")
	badSecond := testutil.WriteFile(t, dir, "bad-second.yaml", "a: 1\n---\nb: [\n")

	t.Run("single-document mode rejects streams", func(t *testing.T) {
		v := New(Options{})

		res := v.ValidateFile(stream)
		assert.Equal(t, SyntaxError, res.Outcome)
		assert.True(t, errors.Is(res.Err, ErrMultipleDocuments))
		assert.Equal(t, 1, res.Documents)
		assert.True(t, strings.HasPrefix(ErrMultipleDocuments.Error(), res.Message()))

		assert.Equal(t, SyntaxError, v.ValidateFile(trailing).Outcome)
	})

	t.Run("multi-document mode accepts streams", func(t *testing.T) {
		v := New(Options{MultiDocument: true})

		res := v.ValidateFile(stream)
		require.NoError(t, res.Err)
		assert.Equal(t, 2, res.Documents)
	})

	t.Run("multi-document mode names the failing document", func(t *testing.T) {
		res := New(Options{MultiDocument: true}).ValidateFile(badSecond)

		assert.Equal(t, SyntaxError, res.Outcome)
		assert.True(t, strings.HasPrefix(res.Err.Error(), "document 2: "))
		assert.Equal(t, 1, res.Documents)
	})
}

func TestValidateFile_ReadError(t *testing.T) {
	dir := t.TempDir()
	v := New(Options{})

	t.Run("missing file", func(t *testing.T) {
		res := v.ValidateFile(filepath.Join(dir, "missing.yaml"))

		assert.Equal(t, ReadError, res.Outcome)
		assert.False(t, res.OK())
		assert.True(t, errors.Is(res.Err, fs.ErrNotExist))
		assert.Contains(t, res.Message(), "no such file or directory")
	})

	t.Run("directory", func(t *testing.T) {
		res := v.ValidateFile(dir)
		assert.Equal(t, ReadError, res.Outcome)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "latin1.yaml", "name: caf\xe9\n")

		res := v.ValidateFile(path)

		assert.Equal(t, ReadError, res.Outcome)
		var encErr *EncodingError
		require.True(t, errors.As(res.Err, &encErr))
		assert.Equal(t, 9, encErr.Offset)
	})

	t.Run("permission denied", func(t *testing.T) {
		path := testutil.Unreadable(t, dir, "locked.yaml", "a: 1\n")

		res := v.ValidateFile(path)

		assert.Equal(t, ReadError, res.Outcome)
		assert.True(t, errors.Is(res.Err, fs.ErrPermission))
	})
}

func TestValidateFile_Explain(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "bad.yaml", "a: [1, 2\n")

	res := New(Options{Explain: true}).ValidateFile(path)

	require.Equal(t, SyntaxError, res.Outcome)
	assert.NotEmpty(t, res.Explanation)
}

func TestExplain_AcceptedInput(t *testing.T) {
	assert.Empty(t, Explain([]byte("a: 1\n"), false))
}

func TestValidateFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "good.yaml", "a: 1\n")
	bad := testutil.WriteFile(t, dir, "bad.yaml", "a: [1\n")
	v := New(Options{})

	for _, path := range []string{good, bad} {
		first := v.ValidateFile(path)
		second := v.ValidateFile(path)
		assert.Equal(t, first.Outcome, second.Outcome)
		assert.Equal(t, first.Message(), second.Message())
	}
}

func TestCheck(t *testing.T) {
	n, err := New(Options{}).Check([]byte("a: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
