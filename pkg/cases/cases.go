// Package cases loads the reduction regression corpus: named lambda terms
// paired with the normal form they must reduce to.
package cases

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var corpus []byte

// Case is one entry of the corpus.
type Case struct {
	Name   string
	Input  string
	Output string
	// Diverges marks terms without a normal form.
	Diverges bool
	Tags     []string
}

// HasTag reports whether the case carries tag.
func (c Case) HasTag(tag string) bool {
	return lo.Contains(c.Tags, tag)
}

type corpusDisk struct {
	Cases []caseDisk `yaml:"cases"`
}

type caseDisk struct {
	Name     string   `yaml:"name"`
	Input    string   `yaml:"input"`
	Output   string   `yaml:"output"`
	Diverges bool     `yaml:"diverges"`
	Tags     []string `yaml:"tags"`
}

// Default returns the corpus shipped with the module.
func Default() ([]Case, error) {
	return Parse(corpus)
}

// Load reads a corpus file from disk.
func Load(path string) ([]Case, error) {
	if path == "" {
		return nil, fmt.Errorf("cases: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cases: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	cs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cases: %s: %w", abs, err)
	}
	return cs, nil
}

// Parse decodes and validates a corpus document. Unknown fields are rejected.
func Parse(data []byte) ([]Case, error) {
	var raw corpusDisk
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	out := make([]Case, 0, len(raw.Cases))
	for i, c := range raw.Cases {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("case %d: missing name", i)
		}
		if strings.TrimSpace(c.Input) == "" {
			return nil, fmt.Errorf("case %s: missing input", name)
		}
		output := strings.TrimSpace(c.Output)
		switch {
		case c.Diverges && output != "":
			return nil, fmt.Errorf("case %s: a diverging case has no output", name)
		case !c.Diverges && output == "":
			return nil, fmt.Errorf("case %s: missing output", name)
		}
		out = append(out, Case{
			Name:     name,
			Input:    strings.TrimSpace(c.Input),
			Output:   output,
			Diverges: c.Diverges,
			Tags:     c.Tags,
		})
	}

	if dups := lo.FindDuplicatesBy(out, func(c Case) string { return c.Name }); len(dups) > 0 {
		names := lo.Map(dups, func(c Case, _ int) string { return c.Name })
		return nil, fmt.Errorf("duplicate case names: %s", strings.Join(names, ", "))
	}
	return out, nil
}

// Normalizing returns the cases that have a normal form.
func Normalizing(cs []Case) []Case {
	return lo.Filter(cs, func(c Case, _ int) bool { return !c.Diverges })
}

// Tagged returns the cases carrying tag.
func Tagged(cs []Case, tag string) []Case {
	return lo.Filter(cs, func(c Case, _ int) bool { return c.HasTag(tag) })
}
