package reporter

import (
	"strings"
	"testing"

	"github.com/aleister1102/goldencopy/internal/jsonvalue"
	"github.com/aleister1102/goldencopy/internal/structural"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Parse(text)
	require.NoError(t, err)
	return v
}

func TestJSONRenderer_Identical(t *testing.T) {
	v := mustParse(t, `{"a":1}`)

	html := NewJSONRenderer(structural.NewReconciler()).Render(v, v)

	assert.Equal(t, `<div class="json-diff"><div class="diff-line diff-equal" style="padding-left:0em">  {&#34;a&#34;:1}</div></div>`, html)
}

func TestJSONRenderer_ObjectChanges(t *testing.T) {
	ref := mustParse(t, `{"keep":1,"old":true,"val":"x"}`)
	cand := mustParse(t, `{"keep":1,"new":null,"val":"<y>"}`)

	html := NewJSONRenderer(structural.NewReconciler()).Render(ref, cand)

	assert.Contains(t, html, `<div class="diff-line diff-added" style="padding-left:2em">+ &#34;new&#34;: null</div>`)
	assert.Contains(t, html, `<div class="diff-line diff-removed" style="padding-left:2em">- &#34;old&#34;: true</div>`)
	assert.Contains(t, html, `<del class="diff-removed">&#34;x&#34;</del> <ins class="diff-added">&#34;&lt;y&gt;&#34;</ins>`)
	assert.NotContains(t, html, "<y>")
	assert.Less(t, strings.Index(html, "keep"), strings.Index(html, "new"), "keys render in sorted order")
}

func TestJSONRenderer_ArrayRows(t *testing.T) {
	ref := mustParse(t, `[1,2,3]`)
	cand := mustParse(t, `[1,3,4]`)

	html := NewJSONRenderer(structural.NewReconciler()).Render(ref, cand)

	assert.Contains(t, html, `data-index="1" style="padding-left:2em">- [1]: 2</div>`)
	assert.Contains(t, html, `data-index="2" style="padding-left:2em">+ [2]: 4</div>`)
	assert.Contains(t, html, `<div class="diff-line diff-equal" data-index="0"`)
	assert.Contains(t, html, `<div class="diff-line diff-equal" data-index="2" style="padding-left:2em">  [2]: 3</div>`, "unchanged elements keep their reference index")
}
