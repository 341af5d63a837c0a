package timestamp_test

import (
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/catalogmodel/timestamp"
)

func TestParse_RoundTrip(t *testing.T) {
	for _, in := range []string{
		"2019-01-01T12:00:00Z",
		"2019-01-01T12:00:00.000000Z",
		"2019-01-01T12:00:00.123456Z",
		"2019-01-01T12:00:00.00Z",
		"2019-01-01T12:00:00.5Z",
		"2024-02-29T23:59:59.120Z",
	} {
		ts, err := timestamp.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, ts.String())

		again, err := timestamp.Parse(ts.Format())
		require.NoError(t, err)
		assert.True(t, again.Equal(ts))
	}
}

func TestParse_Value(t *testing.T) {
	ts := timestamp.MustParse("2019-01-01T12:00:00.25Z")
	want := time.Date(2019, 1, 1, 12, 0, 0, 250_000_000, time.UTC)
	assert.True(t, ts.Time().Equal(want))
	assert.Equal(t, 2, ts.Precision())
	assert.Equal(t, time.UTC, ts.Time().Location())
}

func TestParse_InvalidFormat(t *testing.T) {
	for _, in := range []string{
		"2019-01-01",
		"2019-01-01 12:00:00Z",
		"2019-01-01T12:00:00",
		"12:00:00Z",
		"2019-01-01T12:00:00.1234567Z",
		"2019-01-01T12:00:00+00:00",
		"2019-13-01T12:00:00Z",
		"",
	} {
		_, err := timestamp.Parse(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, timestamp.ErrFormat), in)
		var fe *timestamp.FormatError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, in, fe.Input)
	}
}

func TestFromTime(t *testing.T) {
	whole := timestamp.FromTime(time.Date(2020, 5, 6, 7, 8, 9, 0, time.FixedZone("x", 3600)))
	assert.Equal(t, "2020-05-06T06:08:09Z", whole.String())

	frac := timestamp.FromTime(time.Date(2020, 5, 6, 7, 8, 9, 1500, time.UTC))
	assert.Equal(t, "2020-05-06T07:08:09.000001Z", frac.String())
}

func TestJSON(t *testing.T) {
	ts := timestamp.MustParse("2019-01-01T12:00:00Z")
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2019-01-01T12:00:00Z"`, string(b))

	var back timestamp.Timestamp
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(ts))

	assert.Error(t, json.Unmarshal([]byte(`"2019-01-01"`), &back))
}
