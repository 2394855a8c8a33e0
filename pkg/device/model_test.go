package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModelString(t *testing.T) {
	m, err := NewModel("D1N4148", "d", map[string]any{
		"is": 2.52e-9,
		"n":  1.752,
		"bv": 100,
	})
	require.NoError(t, err)
	require.Equal(t, "D", m.Type())
	require.Equal(t, ".model D1N4148 D (bv=100, is=2.52e-09, n=1.752)", m.String())

	v, ok := m.Param("n")
	require.True(t, ok)
	require.Equal(t, 1.752, v)
}

func TestModelParamsCopied(t *testing.T) {
	params := map[string]any{"vto": -2}
	m, err := NewModel("sw", "SW", params)
	require.NoError(t, err)
	params["vto"] = 5
	m.Params()["ron"] = 1
	require.Equal(t, ".model sw SW (vto=-2)", m.String())
}

func TestModelTypeRejected(t *testing.T) {
	_, err := NewModel("x", "CORE", nil)
	require.True(t, errors.Is(err, ErrModelType))

	_, err = NewModel("", "D", nil)
	require.Error(t, err)

	var nerr *NameError
	_, err = NewModel("d 1", "D", nil)
	require.True(t, errors.As(err, &nerr))
	require.Equal(t, "model", nerr.Kind)
}

func TestModelTypes(t *testing.T) {
	types := ModelTypes()
	require.Contains(t, types, "NMOS")
	require.Len(t, types, 16)

	desc, ok := DescribeModelType("npn")
	require.True(t, ok)
	require.Equal(t, "NPN BJT model", desc)
}
