package cli

import (
	"fmt"

	"github.com/queryforge/pdbquery/internal/compiler"
	"github.com/queryforge/pdbquery/internal/dialect"
)

// tableFor resolves a dialect name (already validated by root.go's
// PersistentPreRunE) to its concrete operator table.
func tableFor(name dialect.Name) (dialect.Table, error) {
	switch name {
	case dialect.ResourceV1:
		return compiler.ResourceV1Table, nil
	case dialect.ResourceV2:
		return compiler.ResourceV2Table, nil
	case dialect.FactV2:
		return compiler.FactV2Table, nil
	default:
		return nil, fmt.Errorf("cli: unknown dialect %q", name)
	}
}
