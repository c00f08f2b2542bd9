// Package validate checks that files hold syntactically valid YAML under
// safe-load rules: only scalars, sequences and mappings with standard tags.
package validate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	goyaml "github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"
	"gopkg.in/yaml.v3"
)

// ErrMultipleDocuments is returned for a stream holding more than one
// document when multi-document mode is off.
var ErrMultipleDocuments = errors.New("expected a single document in the stream, but found another document")

// safeTags are the tags a safe load may construct. "!" is the
// non-specific tag, which resolves to a string.
var safeTags = map[string]bool{
	"!":           true,
	"!!null":      true,
	"!!bool":      true,
	"!!int":       true,
	"!!float":     true,
	"!!str":       true,
	"!!binary":    true,
	"!!timestamp": true,
	"!!seq":       true,
	"!!map":       true,
	"!!set":       true,
	"!!omap":      true,
	"!!pairs":     true,
	"!!merge":     true,
}

// TagError reports a node carrying a tag outside the safe set.
type TagError struct {
	Tag    string
	Line   int
	Column int
}

// Error implements the error interface.
func (e *TagError) Error() string {
	return fmt.Sprintf("could not determine a constructor for the tag %s at line %d, column %d", e.Tag, e.Line, e.Column)
}

// EncodingError reports contents that are not valid UTF-8 text.
type EncodingError struct {
	Offset int
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte at offset %d", e.Offset)
}

// Options configures a Validator.
type Options struct {
	// MultiDocument accepts ---separated streams of documents.
	MultiDocument bool

	// Explain attaches an annotated source excerpt to syntax errors.
	Explain bool

	// Color renders explanations with ANSI colors.
	Color bool
}

// Validator validates YAML files.
type Validator struct {
	opts Options
}

// New creates a Validator.
func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

// ValidateFile reads path and checks its contents.
func (v *Validator) ValidateFile(path string) Result {
	res := Result{Path: path}

	data, err := readFile(path)
	if err != nil {
		res.Outcome = ReadError
		res.Err = err
		return res
	}

	res.Documents, err = v.Check(data)
	if err != nil {
		res.Outcome = SyntaxError
		res.Err = err
		if v.opts.Explain {
			res.Explanation = Explain(data, v.opts.Color)
		}
		return res
	}

	res.Outcome = Valid
	return res
}

// Check parses data and returns the number of documents it holds.
// Empty input is a valid stream of zero documents.
func (v *Validator) Check(data []byte) (int, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	count := 0
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, v.documentError(count+1, err)
		}
		if count == 1 && !v.opts.MultiDocument {
			return count, ErrMultipleDocuments
		}
		if err := safeLoad(&doc); err != nil {
			return count, v.documentError(count+1, err)
		}
		count++
	}
}

func (v *Validator) documentError(n int, err error) error {
	if !v.opts.MultiDocument {
		return err
	}
	return fmt.Errorf("document %d: %w", n, err)
}

// safeLoad rejects unsafe tags, then constructs plain values from the
// document to surface construction errors such as a bad !!int.
func safeLoad(doc *yaml.Node) error {
	if err := checkTags(doc); err != nil {
		return err
	}
	var out any
	return doc.Decode(&out)
}

func checkTags(n *yaml.Node) error {
	switch n.Kind {
	case yaml.AliasNode:
		return nil
	case yaml.ScalarNode, yaml.SequenceNode, yaml.MappingNode:
		if tag := n.ShortTag(); !safeTags[tag] {
			return &TagError{Tag: tag, Line: n.Line, Column: n.Column}
		}
	}
	for _, c := range n.Content {
		if err := checkTags(c); err != nil {
			return err
		}
	}
	return nil
}

// readFile reads the whole file and requires it to be UTF-8 text.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, &EncodingError{Offset: invalidOffset(data)}
	}
	return data, nil
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}

// Explain re-parses data with goccy/go-yaml and returns its annotated
// error (source excerpt with a caret), or "" if that parser accepts it.
func Explain(data []byte, color bool) string {
	if _, err := parser.ParseBytes(data, 0); err != nil {
		return goyaml.FormatError(err, color, true)
	}
	return ""
}
