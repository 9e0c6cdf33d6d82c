package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Demand      Field[int]    `json:"demand,omitzero"`
	Description Field[string] `json:"description,omitzero"`
}

func TestFieldUnmarshal(t *testing.T) {
	t.Run("absent key stays absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.False(t, p.Demand.IsPresent())
		assert.False(t, p.Demand.IsNull())
		assert.Nil(t, p.Demand.Ptr())
	})

	t.Run("explicit null is present and null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"description": null}`), &p))

		assert.True(t, p.Description.IsPresent())
		assert.True(t, p.Description.IsNull())
		assert.Nil(t, p.Description.Ptr())
		assert.False(t, p.Demand.IsPresent())
	})

	t.Run("value is present and valid", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"demand": 200, "description": "gown"}`), &p))

		v, ok := p.Demand.Get()
		assert.True(t, ok)
		assert.Equal(t, 200, v)
		require.NotNil(t, p.Description.Ptr())
		assert.Equal(t, "gown", *p.Description.Ptr())
	})

	t.Run("type mismatch is an error", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"demand": "many"}`), &p))
	})
}

func TestFieldMarshal(t *testing.T) {
	p := payload{Demand: Of(5), Description: Null[string]()}

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"demand": 5, "description": null}`, string(out))

	out, err = json.Marshal(payload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}
