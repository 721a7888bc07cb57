package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	typ, err := FromString("call")
	a.NoError(err)
	a.Equal(Call, typ)

	typ, err = FromString("raise")
	a.NoError(err)
	a.Equal(Raise, typ)

	typ, err = FromString("check")
	a.EqualError(err, "unknown action for identifier: check")
	a.Equal(Type(""), typ)
}

func TestType_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Call", Call.String())
	a.Equal("Fold", Fold.String())
	a.Equal("Raise", Raise.String())
	a.PanicsWithValue("unknown action", func() {
		_ = Type("check").String()
	})
}

func TestType_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	data, err := json.Marshal(Fold)
	a.NoError(err)
	a.JSONEq(`{"id":"fold","name":"Fold"}`, string(data))
}

func TestType_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("called", Call.LogMessage(0))
	a.Equal("folded", Fold.LogMessage(0))
	a.Equal("raised by 50", Raise.LogMessage(50))
}
