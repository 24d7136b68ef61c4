package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "08:00", want: "08:00"},
		{name: "valid evening", input: "17:30", want: "17:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "no leading zero", input: "8:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "with seconds", input: "08:00:00", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "add half hour", start: "16:00", minutes: 30, want: "16:30"},
		{name: "cross hour", start: "16:45", minutes: 30, want: "17:15"},
		{name: "zero", start: "16:00", minutes: 0, want: "16:00"},
		{name: "to last minute", start: "23:00", minutes: 59, want: "23:59"},
		{name: "past midnight", start: "23:45", minutes: 30, wantErr: true},
		{name: "exactly midnight", start: "23:30", minutes: 30, wantErr: true},
		{name: "negative result", start: "00:10", minutes: -20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:30"))
	assert.False(t, TimeString("08:30").IsBefore("08:00"))
	assert.False(t, TimeString("08:00").IsBefore("08:00"))

	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("17:59").IsAfter("18:00"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("16:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 16*60+30, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want TimeString
	}{
		{name: "nil", src: nil, want: ""},
		{name: "string HH:MM", src: "16:30", want: "16:30"},
		{name: "string with seconds", src: "16:30:00", want: "16:30"},
		{name: "bytes", src: []byte("09:15"), want: "09:15"},
		{name: "time.Time", src: time.Date(2026, 9, 1, 10, 45, 0, 0, time.UTC), want: "10:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			require.NoError(t, ts.Scan(tt.src))
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("16:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "16:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}

func TestTimeString_JSON(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.UnmarshalJSON([]byte(`"16:30"`)))
	assert.Equal(t, TimeString("16:30"), ts)

	data, err := TimeString("08:00").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"08:00"`, string(data))

	assert.Error(t, ts.UnmarshalJSON([]byte(`"25:00"`)))
}
