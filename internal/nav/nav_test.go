package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeHrefs(items []RenderedItem) []string {
	var out []string
	for _, it := range items {
		if it.Active {
			out = append(out, it.Href)
		}
	}
	return out
}

func TestBuildActiveState(t *testing.T) {
	assert.Empty(t, activeHrefs(Build("/")))
	assert.Equal(t, []string{"/products"}, activeHrefs(Build("/products")))
	assert.Equal(t, []string{"/products"}, activeHrefs(Build("/products/argan-oil-mask")))
	assert.Equal(t, []string{"/cart"}, activeHrefs(Build("/cart")))

	// prefix match requires a path boundary
	assert.Empty(t, activeHrefs(Build("/productsabc")))
}

func TestBreadcrumbsRoot(t *testing.T) {
	crumbs := Breadcrumbs("/")
	require.Len(t, crumbs, 1)
	assert.Equal(t, "Home", crumbs[0].Label)
	assert.True(t, crumbs[0].Active)
}

func TestBreadcrumbsNested(t *testing.T) {
	crumbs := Breadcrumbs("/products/argan-oil-mask")
	require.Len(t, crumbs, 3)

	assert.Equal(t, "Home", crumbs[0].Label)
	assert.False(t, crumbs[0].Active)

	assert.Equal(t, "/products", crumbs[1].Href)
	assert.Equal(t, "Products", crumbs[1].Label)
	assert.False(t, crumbs[1].Active)

	assert.Equal(t, "/products/argan-oil-mask", crumbs[2].Href)
	assert.Equal(t, "Argan oil mask", crumbs[2].Label)
	assert.True(t, crumbs[2].Active)
}

func TestBreadcrumbsUnknownSection(t *testing.T) {
	crumbs := Breadcrumbs("/pages/shipping-info")
	require.Len(t, crumbs, 3)
	assert.Equal(t, "Pages", crumbs[1].Label)
	assert.Equal(t, "Shipping info", crumbs[2].Label)
}
