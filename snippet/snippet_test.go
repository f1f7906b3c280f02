package snippet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snep-format/go-snep/graph"
	"github.com/snep-format/go-snep/parse"
)

const libText = `#!/bin/sh
#@ snips[
#@ log[
#@ requires: color mod:coreutils
log() { printf '%s\n' "$(color "$1")"; }
#@ ]
#@ color[
color() { tput setaf 2; printf %s "$1"; tput sgr0; }
#@ ]
#@ die[
#@ requires: log
die() { log "$1"; exit 1; }
#@ ]
#@ retry[
#@ requires: log
#@ requires: mod:sleep
retry() { "$@" || { log retrying; "$@"; }; }
#@ ]
#@ ]
trailing text
`

func loadLibrary(t *testing.T, texts ...string) *Library {
	t.Helper()
	lib := NewLibrary()
	for _, text := range texts {
		doc, err := parse.Parse([]byte(text))
		require.NoError(t, err)
		require.NoError(t, lib.Add(doc))
	}
	return lib
}

func TestLibraryAdd(t *testing.T) {
	lib := loadLibrary(t, libText)
	require.Equal(t, 4, lib.Len())
	require.Equal(t, []string{"color", "die", "log", "retry"}, lib.Names())

	log, err := lib.Get("log")
	require.NoError(t, err)
	require.Equal(t, []string{"color"}, log.Requires)
	require.Equal(t, []string{"coreutils"}, log.Modules)

	retry, err := lib.Get("retry")
	require.NoError(t, err)
	require.Equal(t, []string{"log"}, retry.Requires)
	require.Equal(t, []string{"sleep"}, retry.Modules)

	_, err = lib.Get("nope")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestLibraryAddDuplicate(t *testing.T) {
	lib := NewLibrary()
	doc, err := parse.Parse([]byte("#@ snips[\n#@ a[\n#@ ]\n#@ ]\n"))
	require.NoError(t, err)
	require.NoError(t, lib.Add(doc))
	require.ErrorIs(t, lib.Add(doc), ErrDuplicate)
}

func TestLibraryAddMultipleDocs(t *testing.T) {
	lib := loadLibrary(t,
		"#@ snips[\n#@ a[\n#@ ]\n#@ ]\n",
		"#@ snips[\n#@ b[\n#@ requires: a\n#@ ]\n#@ ]\n")
	require.Equal(t, []string{"a", "b"}, lib.Names())
	b, err := lib.Get("b")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, b.Requires)
}

func TestLibraryIgnoresNonSnips(t *testing.T) {
	lib := loadLibrary(t, "#@ other[\n#@ a[\n#@ ]\n#@ ]\n")
	require.Equal(t, 0, lib.Len())
}

func TestLibraryNestedSnipsAreContent(t *testing.T) {
	// a snips element inside a snippet body defines nothing
	lib := loadLibrary(t, `#@ snips[
#@ outer[
#@ snips[
#@ inner[
#@ ]
#@ ]
#@ ]
#@ ]
`)
	require.Equal(t, []string{"outer"}, lib.Names())
}

func TestOrder(t *testing.T) {
	lib := loadLibrary(t, libText)

	order, err := lib.Order("die")
	require.NoError(t, err)
	require.Equal(t, []string{"color", "log", "die"}, order)

	// the whole library, requirements first, ties by name
	order, err = lib.Order()
	require.NoError(t, err)
	require.Equal(t, []string{"color", "log", "die", "retry"}, order)
}

func TestOrderUnknown(t *testing.T) {
	lib := loadLibrary(t, libText)
	_, err := lib.Order("nope")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestOrderUnknownRequirement(t *testing.T) {
	lib := loadLibrary(t, "#@ snips[\n#@ a[\n#@ requires: ghost\n#@ ]\n#@ ]\n")
	_, err := lib.Order("a")
	require.ErrorIs(t, err, ErrUnknown)
	require.ErrorContains(t, err, `"ghost" required by "a"`)
}

func TestOrderCyclic(t *testing.T) {
	lib := loadLibrary(t, `#@ snips[
#@ a[
#@ requires: b
#@ ]
#@ b[
#@ requires: a
#@ ]
#@ ]
`)
	_, err := lib.Order("a")
	require.ErrorIs(t, err, graph.ErrCyclic)
}

func TestModules(t *testing.T) {
	lib := loadLibrary(t, libText)

	mods, err := lib.Modules("die")
	require.NoError(t, err)
	require.Equal(t, []string{"coreutils"}, mods)

	mods, err = lib.Modules()
	require.NoError(t, err)
	require.Equal(t, []string{"coreutils", "sleep"}, mods)
}

func TestAssemble(t *testing.T) {
	lib := loadLibrary(t, libText)
	doc, err := lib.Assemble("die")
	require.NoError(t, err)
	require.Len(t, doc.Children, 3)
	require.Equal(t, "color", doc.Children[0].Name)
	require.Equal(t, "log", doc.Children[1].Name)
	require.Equal(t, "die", doc.Children[2].Name)

	color, err := lib.Get("color")
	require.NoError(t, err)
	require.Same(t, color.Node, doc.Children[0])
}

func TestGraph(t *testing.T) {
	lib := loadLibrary(t, libText)
	g := lib.Graph()
	require.Equal(t, []string{"color"}, g["log"])
	require.Empty(t, g["color"])
	require.Len(t, g, 4)
}
