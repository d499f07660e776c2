package temporal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/timeguard/pkg/temporal"
)

func TestParseMoment(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("now", func(t *testing.T) {
		for _, s := range []string{"", "now", "NOW"} {
			m, err := temporal.ParseMoment(s)
			require.NoError(t, err)
			assert.True(t, m.IsNow())
			assert.Equal(t, now, m.Resolve(now, time.UTC))
			assert.Equal(t, "now", m.String())
		}
	})

	t.Run("absolute instant ignores location", func(t *testing.T) {
		m, err := temporal.ParseMoment("2024-01-01T00:00:00+02:00")
		require.NoError(t, err)
		assert.False(t, m.IsLocal())
		got := m.Resolve(now, time.UTC)
		assert.True(t, got.Equal(time.Date(2023, time.December, 31, 22, 0, 0, 0, time.UTC)))
	})

	t.Run("local literals are placed in the location", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		m, err := temporal.ParseMoment("2024-01-01T09:00:00")
		require.NoError(t, err)
		assert.True(t, m.IsLocal())
		assert.True(t, m.Resolve(now, tokyo).Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))

		m, err = temporal.ParseMoment("2024-01-01")
		require.NoError(t, err)
		assert.True(t, m.Resolve(now, time.UTC).Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("zero instant is not local", func(t *testing.T) {
		m, err := temporal.ParseMoment("0001-01-01T00:00:00Z")
		require.NoError(t, err)
		assert.False(t, m.IsLocal())
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)
		assert.True(t, m.Resolve(now, tokyo).Equal(time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := temporal.ParseMoment("yesterday")
		assert.ErrorIs(t, err, temporal.ErrInvalidLiteral)
	})
}

func TestParseDuration(t *testing.T) {
	base := time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", base},
		{"PT1H", base.Add(time.Hour)},
		{"-PT30M", base.Add(-30 * time.Minute)},
		{"P1D", time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC)},
		{"P1W", time.Date(2024, time.February, 7, 10, 0, 0, 0, time.UTC)},
		{"P1DT2H", time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)},
		{"-P1Y", time.Date(2023, time.January, 31, 10, 0, 0, 0, time.UTC)},
		{"P1M", time.Date(2024, time.February, 29, 10, 0, 0, 0, time.UTC)},
		{"P1M1D", time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)},
		{"P1Y1M", time.Date(2025, time.February, 28, 10, 0, 0, 0, time.UTC)},
		{"-P2M", time.Date(2023, time.November, 30, 10, 0, 0, 0, time.UTC)},
		{"P13M", time.Date(2025, time.February, 28, 10, 0, 0, 0, time.UTC)},
		{"P0.5D", base.Add(12 * time.Hour)},
		{"90m", base.Add(90 * time.Minute)},
		{"-1h", base.Add(-time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := temporal.ParseDuration(tt.in)
			require.NoError(t, err)
			assert.True(t, d.AddTo(base).Equal(tt.want), "got %s want %s", d.AddTo(base), tt.want)
		})
	}

	zero, err := temporal.ParseDuration("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Equal(t, "PT0S", zero.String())

	for _, bad := range []string{"P", "PT", "1 hour", "PXD", "P1H"} {
		_, err := temporal.ParseDuration(bad)
		assert.ErrorIs(t, err, temporal.ErrInvalidDuration, bad)
	}
}

func TestParseDuration_OutOfRange(t *testing.T) {
	for _, s := range []string{"PT3000000H", "-PT3000000H", "P1000000000000Y", "P20000Y", "P300000M", "P1000000.5Y", "P5000000D"} {
		t.Run(s, func(t *testing.T) {
			_, err := temporal.ParseDuration(s)
			assert.ErrorIs(t, err, temporal.ErrInvalidDuration)
		})
	}

	d, err := temporal.ParseDuration("P10000Y")
	require.NoError(t, err)
	base := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(12024, time.February, 29, 0, 0, 0, 0, time.UTC), d.AddTo(base))
}

func TestDuration_MonthEnd(t *testing.T) {
	d, err := temporal.ParseDuration("-P1M")
	require.NoError(t, err)

	tests := []struct {
		from, want time.Time
	}{
		{time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC), time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)},
		{time.Date(2023, time.March, 31, 12, 0, 0, 0, time.UTC), time.Date(2023, time.February, 28, 12, 0, 0, 0, time.UTC)},
		{time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC), time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.from.Format(time.DateOnly), func(t *testing.T) {
			assert.Equal(t, tt.want, d.AddTo(tt.from))
		})
	}
}
