package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseFoldLower(t *testing.T) {
	assert.Equal(t, "production", caseFoldLower("Production"))
	assert.Equal(t, "production", caseFoldLower("PRODUCTION"))
	assert.Equal(t, "production", caseFoldLower("production"))
}
