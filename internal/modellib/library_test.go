package modellib

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edp1096/spicedeck/pkg/device"
	"github.com/edp1096/spicedeck/pkg/netlist"
)

func openTemp(t *testing.T) (*Library, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.db")
	lib, err := Open(context.Background(), path)
	require.NoError(t, err)
	return lib, path
}

var (
	bc547 = Record{
		Name:        "bc547",
		Type:        "npn",
		Description: "general purpose small signal transistor",
		Params:      map[string]any{"bf": 330, "is": 1.8e-14},
	}
	d1n4148 = Record{
		Name:        "d1n4148",
		Type:        "D",
		Description: "fast switching diode",
		Params:      map[string]any{"is": 2.52e-9, "n": 1.752},
	}
)

func TestPutGet(t *testing.T) {
	lib, _ := openTemp(t)
	defer lib.Close()

	require.NoError(t, lib.Put(bc547))

	r, err := lib.Get("bc547")
	require.NoError(t, err)
	require.Equal(t, "NPN", r.Type)
	require.Equal(t, bc547.Description, r.Description)
	require.Equal(t, 330, r.Params["bf"])
	require.Equal(t, 1.8e-14, r.Params["is"])

	_, err = lib.Get("nope")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestPutRejectsBadType(t *testing.T) {
	lib, _ := openTemp(t)
	defer lib.Close()

	err := lib.Put(Record{Name: "x", Type: "TUBE"})
	require.True(t, errors.Is(err, device.ErrModelType))

	records, err := lib.List()
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestListAndDelete(t *testing.T) {
	lib, _ := openTemp(t)
	defer lib.Close()

	require.NoError(t, lib.Put(d1n4148))
	require.NoError(t, lib.Put(bc547))

	records, err := lib.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "bc547", records[0].Name)
	require.Equal(t, "d1n4148", records[1].Name)

	require.NoError(t, lib.Delete("bc547"))
	require.True(t, errors.Is(lib.Delete("bc547"), ErrNotFound))

	found, err := lib.Search("transistor")
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestSearch(t *testing.T) {
	lib, _ := openTemp(t)
	defer lib.Close()

	require.NoError(t, lib.Put(bc547))
	require.NoError(t, lib.Put(d1n4148))

	found, err := lib.Search("switching")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "d1n4148", found[0].Name)

	found, err = lib.Search("type:npn")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "bc547", found[0].Name)
}

func TestSearchPages(t *testing.T) {
	lib, _ := openTemp(t)
	defer lib.Close()

	saved := searchPageSize
	searchPageSize = 2
	t.Cleanup(func() { searchPageSize = saved })

	for _, name := range []string{"d1", "d2", "d3", "d4", "d5"} {
		require.NoError(t, lib.Put(Record{Name: name, Type: "D", Description: "rectifier"}))
	}

	found, err := lib.Search("rectifier")
	require.NoError(t, err)
	require.Len(t, found, 5)

	seen := make(map[string]bool)
	for _, r := range found {
		seen[r.Name] = true
	}
	require.Len(t, seen, 5)
}

func TestReopenReindexes(t *testing.T) {
	lib, path := openTemp(t)
	require.NoError(t, lib.Put(d1n4148))
	require.NoError(t, lib.Close())

	lib, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer lib.Close()

	found, err := lib.Search("diode")
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestApply(t *testing.T) {
	lib, _ := openTemp(t)
	defer lib.Close()
	require.NoError(t, lib.Put(d1n4148))

	n := netlist.New()
	require.NoError(t, lib.Apply(n, "d1n4148"))
	require.Equal(t, ".model d1n4148 D (is=2.52e-09, n=1.752)\n", n.String())

	var dup *device.DuplicateNameError
	require.True(t, errors.As(lib.Apply(n, "d1n4148"), &dup))
	require.True(t, errors.Is(lib.Apply(n, "missing"), ErrNotFound))
}
