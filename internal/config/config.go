// Package config loads optional per-project defaults for the CLI
// (SPEC_FULL.md §A "Config loading"): a `.zograscope.env`/`.env` for
// scalar flag defaults, read with github.com/joho/godotenv, ignoring a
// missing file, and an optional `.zograscope.yml` for per-path language
// overrides and ignore globs, read with gopkg.in/yaml.v3 and matched with
// github.com/bmatcuk/doublestar/v4. Explicit CLI flags always win over
// anything loaded here; this package only supplies defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults holds the scalar flag defaults a `.env`-style file can set.
// Zero values mean "not set"; the CLI only applies a Default field when
// its own flag wasn't explicitly passed.
type Defaults struct {
	Color    bool
	Lang     string
	TabWidth int
}

// LoadEnv loads dir/.zograscope.env and dir/.env, in that order, into the
// process environment via godotenv.Load, ignoring a missing file, then
// reads the three recognized ZOGRASCOPE_* variables into a Defaults.
func LoadEnv(dir string) Defaults {
	// One call per file: godotenv.Load stops at the first file it can't
	// read, which would skip .env whenever .zograscope.env is missing.
	_ = godotenv.Load(filepath.Join(dir, ".zograscope.env"))
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	var d Defaults
	if v := os.Getenv("ZOGRASCOPE_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			d.Color = b
		}
	}
	d.Lang = os.Getenv("ZOGRASCOPE_LANG")
	if v := os.Getenv("ZOGRASCOPE_TAB_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			d.TabWidth = n
		}
	}
	return d
}

// Project is the parsed shape of an optional `.zograscope.yml`: per-path
// language overrides (glob -> language name) and ignore globs `find`/
// `stats` skip during their directory walk.
type Project struct {
	Languages map[string]string `yaml:"languages"`
	Ignore    []string          `yaml:"ignore"`
}

// Load reads dir/.zograscope.yml. A missing file returns a zero-value
// Project and no error; a malformed one returns the yaml.v3 parse error.
func Load(dir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(dir, ".zograscope.yml"))
	if err != nil {
		if os.IsNotExist(err) {
			return &Project{}, nil
		}
		return nil, err
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// LangFor returns the language name of a glob pattern in p.Languages that
// matches path, or "" if none does. Patterns are tried in map order, so
// when several match, which one wins is not defined.
func (p *Project) LangFor(path string) string {
	for pattern, name := range p.Languages {
		if matched, err := doublestar.PathMatch(pattern, path); err == nil && matched {
			return name
		}
	}
	return ""
}

// Ignored reports whether path matches any of p.Ignore's glob patterns.
func (p *Project) Ignored(path string) bool {
	for _, pattern := range p.Ignore {
		if matched, err := doublestar.PathMatch(pattern, path); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, filepath.Base(path)); err == nil && matched {
			return true
		}
	}
	return false
}
