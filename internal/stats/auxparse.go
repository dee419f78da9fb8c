package stats

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bazelbuild/buildtools/build"
	"github.com/yoheimuta/go-protoparser/v4"
	"github.com/xwb1989/sqlparser"
	"go.starlark.net/syntax"
	"go.uber.org/thriftrw/idl"
	"golang.org/x/mod/modfile"

	"github.com/zograscope/zograscope/internal/diff"
)

// auxKind reports which auxiliary parser, if any, handles path based on
// its name/extension (SPEC_FULL.md §B): these are build-system-adjacent
// formats the core's Tree pipeline never diffs, but whose syntactic
// well-formedness `stats` still validates with a matching domain parser
// before falling back to text-only line bucketing.
func auxKind(path string) string {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case base == "build" || base == "build.bazel" || strings.HasSuffix(base, ".bzl"):
		return "bazel"
	case base == "go.mod":
		return "gomod"
	case strings.HasSuffix(base, ".proto"):
		return "protobuf"
	case strings.HasSuffix(base, ".thrift"):
		return "thrift"
	case strings.HasSuffix(base, ".sql"):
		return "sql"
	case strings.HasSuffix(base, ".star"):
		return "starlark"
	default:
		return ""
	}
}

// auxCommentPrefix returns the line-comment prefix stats' text-only
// bucketing recognizes for an auxiliary file kind.
func auxCommentPrefix(path string) string {
	switch auxKind(path) {
	case "sql":
		return "--"
	default:
		return "#"
	}
}

// validateAux parses path with the domain library matching its kind,
// reporting a parse error the same way a front-end ParseError would;
// stats doesn't keep the resulting AST (it has no Tree to attach it to),
// it only uses the parse as a well-formedness check (SPEC_FULL.md §B).
func validateAux(path string) error {
	switch auxKind(path) {
	case "bazel":
		data, err := os.ReadFile(path)
		if err != nil {
			return &diff.IOError{Path: path, Err: err}
		}
		if _, err := build.Parse(path, data); err != nil {
			return &diff.ParseError{Path: path, Err: err}
		}
	case "gomod":
		data, err := os.ReadFile(path)
		if err != nil {
			return &diff.IOError{Path: path, Err: err}
		}
		if _, err := modfile.Parse(path, data, nil); err != nil {
			return &diff.ParseError{Path: path, Err: err}
		}
	case "protobuf":
		f, err := os.Open(path)
		if err != nil {
			return &diff.IOError{Path: path, Err: err}
		}
		defer f.Close()
		if _, err := protoparser.Parse(f); err != nil {
			return &diff.ParseError{Path: path, Err: err}
		}
	case "thrift":
		data, err := os.ReadFile(path)
		if err != nil {
			return &diff.IOError{Path: path, Err: err}
		}
		if _, err := idl.Parse(data); err != nil {
			return &diff.ParseError{Path: path, Err: err}
		}
	case "sql":
		f, err := os.Open(path)
		if err != nil {
			return &diff.IOError{Path: path, Err: err}
		}
		defer f.Close()
		tokens := sqlparser.NewTokenizer(f)
		for {
			_, err := sqlparser.ParseNext(tokens)
			if err == io.EOF {
				break
			}
			if err != nil {
				return &diff.ParseError{Path: path, Err: err}
			}
		}
	case "starlark":
		if _, err := syntax.Parse(path, nil, ^syntax.RetainComments); err != nil {
			return &diff.ParseError{Path: path, Err: err}
		}
	default:
		return fmt.Errorf("%s: not an auxiliary file", path)
	}
	return nil
}

// bucketTextOnly classifies contents' physical lines without a Tree
// (auxiliary formats aren't materialized): blank, a line starting with
// commentPrefix once trimmed, or code.
func bucketTextOnly(contents, commentPrefix string, b *LineBuckets) {
	for _, line := range strings.Split(contents, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			b.Blank++
		case strings.HasPrefix(trimmed, commentPrefix):
			b.Comment++
		default:
			b.Code++
		}
	}
}
