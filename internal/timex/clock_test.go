package timex

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "midnight", in: "00:00", want: "00:00"},
		{name: "last minute", in: "23:59", want: "23:59"},
		{name: "morning", in: "09:05", want: "09:05"},
		{name: "single digit hour", in: "9:00", wantErr: true},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "12:60", wantErr: true},
		{name: "wrong separator", in: "12.30", wantErr: true},
		{name: "seconds", in: "12:30:00", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "letters", in: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestClock_MinusHours_Wraps(t *testing.T) {
	assert.Equal(t, "22:00", MustClock(10, 0).MinusHours(12).String())
	assert.Equal(t, "13:00", MustClock(1, 0).MinusHours(12).String())
	assert.Equal(t, "00:00", MustClock(12, 0).MinusHours(12).String())
	assert.Equal(t, "23:59", MustClock(11, 59).MinusHours(12).String())
	assert.Equal(t, "10:00", MustClock(10, 0).MinusHours(24).String())
}

func TestClock_Compare(t *testing.T) {
	a := MustClock(9, 0)
	b := MustClock(22, 0)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(MustClock(9, 0)))
}

func TestNewClock_Rejects(t *testing.T) {
	_, err := NewClock(24, 0)
	require.ErrorIs(t, err, common.ErrInvalidTimeFormat)
	_, err = NewClock(0, -1)
	require.ErrorIs(t, err, common.ErrInvalidTimeFormat)
	require.Panics(t, func() { MustClock(25, 0) })
}

func TestClock_JSON(t *testing.T) {
	type wrapper struct {
		At Clock `json:"at"`
	}

	b, err := json.Marshal(wrapper{At: MustClock(23, 59)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"23:59"}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"at":"00:00"}`), &w))
	assert.Equal(t, MustClock(0, 0), w.At)

	require.Error(t, json.Unmarshal([]byte(`{"at":"7:00"}`), &w))
	require.Error(t, json.Unmarshal([]byte(`{"at":700}`), &w))
}

func TestClock_SQL(t *testing.T) {
	v, err := MustClock(9, 30).Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)

	var c Clock
	require.NoError(t, c.Scan("12:00"))
	assert.Equal(t, MustClock(12, 0), c)
	require.NoError(t, c.Scan([]byte("00:01")))
	assert.Equal(t, MustClock(0, 1), c)
	require.Error(t, c.Scan(int64(5)))
	require.Error(t, c.Scan("garbage"))
}
