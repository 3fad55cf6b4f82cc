package cases

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCorpus(t *testing.T) {
	cs, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(cs) == 0 {
		t.Fatal("embedded corpus is empty")
	}
	if n := len(Normalizing(cs)); n == len(cs) || n == 0 {
		t.Errorf("expected a mix of normalizing and diverging cases, got %d of %d normalizing", n, len(cs))
	}
	for _, c := range Tagged(cs, "divergent") {
		if !c.Diverges {
			t.Errorf("%s is tagged divergent but not marked diverges", c.Name)
		}
	}
}

func TestParseRejectsBadCorpus(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown field",
			doc:  "cases:\n  - name: a\n    input: x\n    output: x\n    expected: x\n",
			want: "expected",
		},
		{
			name: "missing name",
			doc:  "cases:\n  - input: x\n    output: x\n",
			want: "missing name",
		},
		{
			name: "missing output",
			doc:  "cases:\n  - name: a\n    input: x\n",
			want: "missing output",
		},
		{
			name: "diverging with output",
			doc:  "cases:\n  - name: a\n    input: x\n    output: x\n    diverges: true\n",
			want: "diverging",
		},
		{
			name: "duplicate names",
			doc:  "cases:\n  - name: a\n    input: x\n    output: x\n  - name: a\n    input: y\n    output: y\n",
			want: "duplicate case names: a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	cs, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if len(cs) != 0 {
		t.Errorf("expected no cases, got %d", len(cs))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	doc := "cases:\n  - name: id\n    input: \" (#x -> x) y \"\n    output: y\n    tags: [identity]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cs) != 1 {
		t.Fatalf("expected 1 case, got %d", len(cs))
	}
	c := cs[0]
	if c.Input != "(#x -> x) y" || c.Output != "y" || !c.HasTag("identity") {
		t.Errorf("unexpected case: %+v", c)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
