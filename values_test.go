package deepgram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOrList(t *testing.T) {
	tests := []struct {
		name   string
		value  *StringOrList
		json   string
		isList bool
	}{
		{"single", One("pci"), `"pci"`, false},
		{"list", List("pci", "ssn"), `["pci","ssn"]`, true},
		{"list of one stays a list", List("pci"), `["pci"]`, true},
		{"empty list", List(), `[]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(data))

			var decoded StringOrList
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.isList, decoded.IsList())
			assert.Equal(t, len(tt.value.Values()), len(decoded.Values()))
		})
	}
}

func TestStringOrListRejectsOtherTypes(t *testing.T) {
	var v StringOrList
	assert.Error(t, json.Unmarshal([]byte(`12`), &v))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &v))
}

func TestBoolOrString(t *testing.T) {
	data, err := json.Marshal(BoolValue(true))
	require.NoError(t, err)
	assert.Equal(t, `true`, string(data))

	data, err = json.Marshal(StringValue("v2"))
	require.NoError(t, err)
	assert.Equal(t, `"v2"`, string(data))

	var v BoolOrString
	require.NoError(t, json.Unmarshal([]byte(`"v2"`), &v))
	assert.Equal(t, *StringValue("v2"), v)
	require.NoError(t, json.Unmarshal([]byte(`false`), &v))
	assert.Equal(t, *BoolValue(false), v)
	assert.Error(t, json.Unmarshal([]byte(`3`), &v))
}

func TestPointerHelpers(t *testing.T) {
	assert.True(t, *Bool(true))
	assert.Equal(t, "x", *String("x"))
	assert.Equal(t, 7, *Int(7))
}
