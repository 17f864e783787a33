package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// fillPair is one operator-supplied placeholder value.
type fillPair struct {
	name  string
	value string
}

// fillValues collects repeated --fill nombre=valor flags in the order they
// were given. Order matters: when the same placeholder name appears twice
// in a body, each occurrence consumes its own pair.
type fillValues struct {
	pairs []fillPair
}

var _ pflag.Value = (*fillValues)(nil)

func (f *fillValues) String() string {
	parts := make([]string, len(f.pairs))
	for i, p := range f.pairs {
		parts[i] = p.name + "=" + p.value
	}
	return strings.Join(parts, ",")
}

func (f *fillValues) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("expected nombre=valor, got %q", s)
	}
	f.pairs = append(f.pairs, fillPair{name: strings.TrimSpace(name), value: value})
	return nil
}

func (f *fillValues) Type() string {
	return "nombre=valor"
}

// valuesFor maps the collected pairs onto the placeholder occurrences of a
// body, left to right. Each occurrence takes the next unconsumed pair with
// a matching name; occurrences with no pair left get the empty string.
func (f *fillValues) valuesFor(names []string) []string {
	used := make([]bool, len(f.pairs))
	out := make([]string, len(names))
	for i, name := range names {
		for j, p := range f.pairs {
			if !used[j] && p.name == name {
				out[i] = p.value
				used[j] = true
				break
			}
		}
	}
	return out
}
