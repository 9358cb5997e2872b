// Package specs loads the dataset-kind whitelists (selectable columns and
// join-tag vocabulary) that internal/dialect exposes from a CUE document,
// walking the parsed cue.Value into a typed Go struct field by field.
package specs

import (
	"embed"
	"fmt"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"
)

//go:embed dialect.cue
var defaultDialectCUE embed.FS

// DatasetSpec is the whitelist data for one dataset kind.
type DatasetSpec struct {
	SelectableColumns []string // alphabetically sorted
	JoinTags          []string
}

// LoadError reports a problem found while walking the CUE document, with
// its source position when CUE can supply one.
type LoadError struct {
	Path    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Load parses the embedded specs/dialect.cue and returns the resource and
// fact DatasetSpecs it declares.
func Load() (resource, fact DatasetSpec, err error) {
	data, err := defaultDialectCUE.ReadFile("dialect.cue")
	if err != nil {
		return DatasetSpec{}, DatasetSpec{}, fmt.Errorf("specs: read dialect.cue: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a CUE document's bytes directly — used by tests that
// want to exercise the loader against a deliberately malformed spec.
func LoadBytes(data []byte) (resource, fact DatasetSpec, err error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return DatasetSpec{}, DatasetSpec{}, &LoadError{Path: "datasets", Message: err.Error()}
	}

	resource, err = datasetSpecAt(v, "datasets.resource")
	if err != nil {
		return DatasetSpec{}, DatasetSpec{}, err
	}
	fact, err = datasetSpecAt(v, "datasets.fact")
	if err != nil {
		return DatasetSpec{}, DatasetSpec{}, err
	}
	return resource, fact, nil
}

func datasetSpecAt(root cue.Value, path string) (DatasetSpec, error) {
	v := root.LookupPath(cue.ParsePath(path))
	if !v.Exists() {
		return DatasetSpec{}, &LoadError{Path: path, Message: "missing dataset spec"}
	}

	cols, err := stringList(v, path+".selectable_columns")
	if err != nil {
		return DatasetSpec{}, err
	}
	tags, err := stringList(v, path+".join_tags")
	if err != nil {
		return DatasetSpec{}, err
	}

	sort.Strings(cols)
	return DatasetSpec{SelectableColumns: cols, JoinTags: tags}, nil
}

func stringList(v cue.Value, path string) ([]string, error) {
	field := v.LookupPath(cue.ParsePath(lastSegment(path)))
	if !field.Exists() {
		return nil, &LoadError{Path: path, Message: "missing field", Pos: v.Pos()}
	}
	iter, err := field.List()
	if err != nil {
		return nil, &LoadError{Path: path, Message: err.Error(), Pos: field.Pos()}
	}

	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, &LoadError{Path: path, Message: err.Error(), Pos: iter.Value().Pos()}
		}
		out = append(out, s)
	}
	return out, nil
}

// lastSegment returns the trailing "selectable_columns"/"join_tags" field
// name from a dotted path; v is already scoped to the dataset struct, so
// only the final selector is relevant to re-look-up on it.
func lastSegment(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return path
}
