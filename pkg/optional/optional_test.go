package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   Field[string]  `json:"name,omitzero"`
	Volume Field[float64] `json:"volume,omitzero"`
	Emoji  Field[uint64]  `json:"emoji_id,omitzero"`
}

func TestField_States(t *testing.T) {
	t.Run("zero value is unset", func(t *testing.T) {
		var f Field[string]
		assert.True(t, f.IsZero())
		assert.False(t, f.IsSet())
		assert.False(t, f.IsNull())
		_, ok := f.Get()
		assert.False(t, ok)
	})

	t.Run("null is set without value", func(t *testing.T) {
		f := Null[string]()
		assert.False(t, f.IsZero())
		assert.True(t, f.IsSet())
		assert.True(t, f.IsNull())
		_, ok := f.Get()
		assert.False(t, ok)
	})

	t.Run("some carries the value", func(t *testing.T) {
		f := Some("siren")
		assert.True(t, f.IsSet())
		assert.False(t, f.IsNull())
		v, ok := f.Get()
		assert.True(t, ok)
		assert.Equal(t, "siren", v)
	})

	t.Run("some with the type's zero value is still present", func(t *testing.T) {
		f := Some(0.0)
		assert.False(t, f.IsZero())
		v, ok := f.Get()
		assert.True(t, ok)
		assert.Equal(t, 0.0, v)
	})
}

func TestField_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   payload
		want string
	}{
		{
			name: "all unset",
			in:   payload{},
			want: `{}`,
		},
		{
			name: "present values",
			in:   payload{Name: Some("siren"), Volume: Some(0.5)},
			want: `{"name":"siren","volume":0.5}`,
		},
		{
			name: "null is emitted",
			in:   payload{Emoji: Null[uint64]()},
			want: `{"emoji_id":null}`,
		},
		{
			name: "empty string is emitted",
			in:   payload{Name: Some("")},
			want: `{"name":""}`,
		},
		{
			name: "zero number is emitted",
			in:   payload{Volume: Some(0.0)},
			want: `{"volume":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestField_UnmarshalJSON(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"horn","emoji_id":null}`), &p))

	name, ok := p.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "horn", name)
	assert.True(t, p.Emoji.IsNull())
	assert.False(t, p.Volume.IsSet())

	assert.Error(t, json.Unmarshal([]byte(`{"volume":"loud"}`), &p))
}
