package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/queryforge/pdbquery/internal/queryir"
)

// LoadError represents a failure to read or parse a query document from
// disk, distinct from a compiler.CompileError — this happens before any
// term compiler ever sees the query.
type LoadError struct {
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// LoadQueryDocument reads a query from path and parses it into a
// queryir.Node. The file may be YAML or JSON — yaml.v3 parses both, since
// JSON is a subset of YAML's flow style — which is why a query document
// like ["=", "type", "Class"] works unchanged whether the extension is
// .yaml, .yml, or .json.
func LoadQueryDocument(path string) (queryir.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("reading query document: %v", err)}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("parsing query document: %v", err)}
	}

	node, err := queryir.FromAny(doc)
	if err != nil {
		return nil, &LoadError{Path: path, Message: err.Error()}
	}
	return node, nil
}
