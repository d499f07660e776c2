package ruleset_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/timeguard/pkg/constraint"
	"github.com/dmitrymomot/timeguard/pkg/i18n"
	"github.com/dmitrymomot/timeguard/pkg/ruleset"
	"github.com/dmitrymomot/timeguard/pkg/validator"
)

// 2024-06-06 12:00 UTC, a Thursday.
var now = time.Date(2024, time.June, 6, 12, 0, 0, 0, time.UTC)

func settings() ruleset.Option {
	return ruleset.WithSettings(
		constraint.WithClock(func() time.Time { return now }),
		constraint.WithSystemZone(time.UTC),
	)
}

func loadShop(t *testing.T) *ruleset.RuleSet {
	t.Helper()
	rs, err := ruleset.Load(filepath.Join("testdata", "shop.yaml"), settings())
	require.NoError(t, err)
	return rs
}

func TestLoad(t *testing.T) {
	rs := loadShop(t)
	assert.Equal(t, []string{"closing", "created_at", "delivery_day", "opens_at", "season"}, rs.Fields())

	t.Run("json", func(t *testing.T) {
		rs, err := ruleset.Load(filepath.Join("testdata", "shop.json"))
		require.NoError(t, err)
		assert.Equal(t, []string{"founded", "opens_at"}, rs.Fields())
	})

	t.Run("configuration errors are collected", func(t *testing.T) {
		_, err := ruleset.Load(filepath.Join("testdata", "broken.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, constraint.ErrInvalidValues)
		assert.ErrorIs(t, err, constraint.ErrPolicyNotSupported)
		assert.ErrorIs(t, err, ruleset.ErrUnknownFieldType)
		assert.Contains(t, err.Error(), `field "birthday"`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ruleset.Load(filepath.Join("testdata", "nope.yaml"))
		assert.ErrorIs(t, err, ruleset.ErrFailedToRead)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := ruleset.Load("rules.toml")
		assert.ErrorIs(t, err, ruleset.ErrUnknownFormat)
	})
}

func TestParse(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("zone: UTC\n"), ruleset.FormatYAML)
		assert.ErrorIs(t, err, ruleset.ErrNoFields)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := ruleset.Parse([]byte(`{"fields": `), ruleset.FormatJSON)
		assert.ErrorIs(t, err, ruleset.ErrFailedToParse)
	})

	t.Run("unknown document zone", func(t *testing.T) {
		_, err := ruleset.Parse([]byte("zone: Mars/Base\nfields:\n  a:\n    type: date\n"), ruleset.FormatYAML)
		assert.ErrorIs(t, err, constraint.ErrUnknownZone)
	})

	t.Run("scalar values", func(t *testing.T) {
		rs, err := ruleset.Parse([]byte(`{"fields": {"m": {"type": "minute_holder", "rules": []}}}`), ruleset.FormatJSON)
		assert.ErrorIs(t, err, ruleset.ErrUnknownFieldType)
		assert.Nil(t, rs)

		rs, err = ruleset.Parse([]byte(`{"fields": {"t": {"type": "time", "rules": [{"name": "minute_equal", "values": 30}]}}}`), ruleset.FormatJSON)
		require.NoError(t, err)
		assert.NoError(t, rs.Validate(context.Background(), map[string]any{"t": "08:30"}))
		assert.Error(t, rs.Validate(context.Background(), map[string]any{"t": "08:31"}))
	})
}

func TestRuleSet_Validate(t *testing.T) {
	rs := loadShop(t)
	ctx := context.Background()

	t.Run("valid record", func(t *testing.T) {
		record, err := ruleset.ReadRecord(filepath.Join("testdata", "record.json"))
		require.NoError(t, err)
		assert.NoError(t, rs.Validate(ctx, record))
	})

	t.Run("missing and null fields are valid", func(t *testing.T) {
		assert.NoError(t, rs.Validate(ctx, map[string]any{"opens_at": nil}))
		assert.NoError(t, rs.Validate(ctx, map[string]any{}))
	})

	t.Run("document zone applies to zoned types", func(t *testing.T) {
		// 08:30 UTC is 10:30 in Berlin.
		assert.NoError(t, rs.Validate(ctx, map[string]any{"opens_at": "2024-06-06T08:30:00Z"}))

		err := rs.Validate(ctx, map[string]any{"opens_at": "2024-06-06T10:30:00Z"})
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "validation.hour_in", errs[0].TranslationKey)
		assert.Equal(t, "Europe/Berlin", errs[0].TranslationValues["zone"])
	})

	t.Run("violations", func(t *testing.T) {
		err := rs.Validate(ctx, map[string]any{
			"opens_at":     "2024-06-08T10:00:00+02:00", // Saturday
			"created_at":   "2024-06-07T00:00:00Z",
			"delivery_day": "2024-06-06",
			"closing":      "21:00",
			"season":       "JANUARY",
		})
		errs := validator.ExtractValidationErrors(err)
		require.NotNil(t, errs)

		assert.Equal(t, []string{"validation.time_not_after"}, keys(errs.GetErrors("closing")))
		assert.Equal(t, []string{"validation.past_or_present"}, keys(errs.GetErrors("created_at")))
		assert.Equal(t, []string{"validation.after", "shop.delivery_weekend"}, keys(errs.GetErrors("delivery_day")))
		assert.Equal(t, []string{"validation.working_day"}, keys(errs.GetErrors("opens_at")))
		assert.Equal(t, []string{"validation.month_in"}, keys(errs.GetErrors("season")))
		assert.Equal(t, []string{"closing: time must not be after 20:00"}, errs.Get("closing"))
	})

	t.Run("undecodable values", func(t *testing.T) {
		err := rs.Validate(ctx, map[string]any{"closing": "late", "season": 13, "opens_at": 5})
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		for _, e := range errs {
			assert.Equal(t, "validation.type", e.TranslationKey)
		}
		assert.Equal(t, []string{"closing must be a valid time value"}, errs.Get("closing"))
	})

	t.Run("language from context", func(t *testing.T) {
		err := rs.Validate(i18n.WithLanguage(ctx, "de"), map[string]any{"closing": "21:00"})
		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"closing: Uhrzeit darf nicht nach 20:00 liegen"}, errs.Get("closing"))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, rs.Validate(cctx, map[string]any{}), context.Canceled)
	})
}

func TestDecodeRecord(t *testing.T) {
	record, err := ruleset.DecodeRecord([]byte("opens_at: 2024-06-06T10:00:00Z\nseason: 7\n"), ruleset.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 7, record["season"])

	_, err = ruleset.DecodeRecord([]byte("x"), "toml")
	assert.ErrorIs(t, err, ruleset.ErrUnknownFormat)
}

func keys(errs []validator.ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.TranslationKey
	}
	return out
}
