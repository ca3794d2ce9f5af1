package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xir/internal/xir"
)

func TestLookupKnownIntrinsic(t *testing.T) {
	i, ok := Lookup("dot")
	assert.True(t, ok)
	assert.Equal(t, xir.IntrinsicDot, i.Op)
	assert.Equal(t, 2, i.Arity)
}

func TestLookupUnknownIntrinsic(t *testing.T) {
	_, ok := Lookup("not_a_builtin")
	assert.False(t, ok)
}

func TestCatalogHasNoDuplicateNames(t *testing.T) {
	seen := map[string]bool{}
	for _, i := range catalog {
		assert.False(t, seen[i.Name], "duplicate intrinsic name %s", i.Name)
		seen[i.Name] = true
	}
}
