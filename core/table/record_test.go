package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecord_Accessors(t *testing.T) {
	r := rec("unit", "cron.service", "sub", nil)

	v, ok := r.Get("unit")
	assert.True(t, ok)
	assert.Equal(t, "cron.service", v)

	_, ok = r.Get("sub")
	assert.False(t, ok)
	assert.True(t, r.Has("sub"))
	assert.True(t, r.IsNull("sub"))

	assert.False(t, r.Has("load"))
	assert.False(t, r.IsNull("load"))
	assert.Equal(t, []string{"unit", "sub"}, r.Names())

	m := r.Map()
	require.Contains(t, m, "sub")
	assert.Nil(t, m["sub"])
	require.NotNil(t, m["unit"])
	assert.Equal(t, "cron.service", *m["unit"])
}

func TestRecord_MarshalJSON(t *testing.T) {
	r := rec("zeta", "1", "alpha", nil, "mid", `quote " and \ slash`)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"1","alpha":null,"mid":"quote \" and \\ slash"}`, string(data))

	data, err = json.Marshal([]Record{rec("a", "x"), {}})
	require.NoError(t, err)
	assert.Equal(t, `[{"a":"x"},{}]`, string(data))
}

func TestRecord_MarshalYAML(t *testing.T) {
	r := rec("zeta", "1", "alpha", nil, "mid", "plain")

	data, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "zeta: \"1\"\nalpha: null\nmid: plain\n", string(data))
}
