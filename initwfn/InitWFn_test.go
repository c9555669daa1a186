package initwfn

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func TestUnmarshalJSON(t *testing.T) {
	var init InitWFn
	data := []byte(`{"Type": "GlorotU", "Config": {"Gain": 1.0}}`)
	require.NoError(t, json.Unmarshal(data, &init))
	require.Equal(t, GlorotU, init.Type())
	require.NotNil(t, init.InitWFn())

	// Initializers without parameters need no Config
	require.NoError(t, json.Unmarshal([]byte(`{"Type": "Zeroes"}`), &init))
	require.Equal(t, Zeroes, init.Type())

	require.Error(t, json.Unmarshal([]byte(`{"Type": "Orthogonal"}`), &init))
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewConstant(0.5))
	require.NoError(t, err)

	var init InitWFn
	require.NoError(t, json.Unmarshal(data, &init))
	require.Equal(t, Constant, init.Type())

	values := init.InitWFn()(tensor.Float64, 2, 3).([]float64)
	require.Equal(t, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, values)
}

func TestCreate(t *testing.T) {
	inits := []*InitWFn{
		NewGlorotU(1), NewGlorotN(1), NewHeU(1), NewHeN(1), NewZeroes(),
		NewUniform(-1, 1), NewGaussian(0, 1),
	}
	for _, init := range inits {
		values := init.InitWFn()(tensor.Float64, 4, 5).([]float64)
		require.Len(t, values, 20, init.String())
	}

	zeros := NewZeroes().InitWFn()(tensor.Float64, 2, 2).([]float64)
	require.Equal(t, []float64{0, 0, 0, 0}, zeros)
}
