package playground_test

import (
	"bytes"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrymomot/timeguard/pkg/constraint"
	"github.com/dmitrymomot/timeguard/pkg/i18n"
	"github.com/dmitrymomot/timeguard/pkg/logger"
	"github.com/dmitrymomot/timeguard/pkg/playground"
	tgvalidator "github.com/dmitrymomot/timeguard/pkg/validator"
)

var now = time.Date(2024, time.June, 6, 12, 0, 0, 0, time.UTC)

type shift struct {
	OpensAt  time.Time              `validate:"hour_in=9 10 11;zone=UTC"`
	Day      civil.Date             `validate:"working_day"`
	Deadline *time.Time             `validate:"before=2030-01-01T00:00:00Z"`
	Stamp    *timestamppb.Timestamp `validate:"past"`
	Month    time.Month             `validate:"month_in=JUNE JULY"`
	Name     string                 `validate:"required"`
}

func newValidate(t *testing.T, opts ...playground.Option) (*validator.Validate, *playground.Registrar) {
	t.Helper()
	v := validator.New()
	opts = append([]playground.Option{playground.WithSettings(
		constraint.WithClock(func() time.Time { return now }),
		constraint.WithSystemZone(time.UTC),
	)}, opts...)
	r, err := playground.Register(v, opts...)
	require.NoError(t, err)
	return v, r
}

func validShift() shift {
	deadline := now.AddDate(1, 0, 0)
	return shift{
		OpensAt:  time.Date(2024, time.June, 6, 10, 0, 0, 0, time.UTC),
		Day:      civil.Date{Year: 2024, Month: time.June, Day: 6},
		Deadline: &deadline,
		Stamp:    timestamppb.New(now.Add(-time.Hour)),
		Month:    time.July,
		Name:     "early",
	}
}

func TestRegister(t *testing.T) {
	v, _ := newValidate(t)

	t.Run("valid struct", func(t *testing.T) {
		s := validShift()
		assert.NoError(t, v.Struct(s))
		assert.NoError(t, v.Struct(&s))
	})

	t.Run("nil pointers are valid", func(t *testing.T) {
		s := validShift()
		s.Deadline = nil
		s.Stamp = nil
		assert.NoError(t, v.Struct(s))
	})

	t.Run("invalid fields", func(t *testing.T) {
		s := validShift()
		s.OpensAt = s.OpensAt.Add(-2 * time.Hour)
		s.Day = civil.Date{Year: 2024, Month: time.June, Day: 8}
		s.Stamp = timestamppb.New(now.Add(time.Hour))
		s.Month = time.May

		err := v.Struct(s)
		require.Error(t, err)

		var fieldErrs validator.ValidationErrors
		require.ErrorAs(t, err, &fieldErrs)
		tags := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			tags = append(tags, fe.Tag())
		}
		assert.ElementsMatch(t, []string{"hour_in", "working_day", "past", "month_in"}, tags)
	})

	t.Run("var on time value", func(t *testing.T) {
		assert.NoError(t, v.Var(now, "future_or_present"))
		assert.Error(t, v.Var(now, "future"))
		assert.NoError(t, v.Var(now, "before=now;duration=PT1S"))
	})

	t.Run("misconfigured tag panics", func(t *testing.T) {
		type bad struct {
			At civil.Time `validate:"hour_in=9;zone=provided"`
		}
		assert.Panics(t, func() { _ = v.Struct(bad{At: civil.Time{Hour: 9}}) })
	})

	t.Run("unsupported type panics", func(t *testing.T) {
		type bad struct {
			At string `validate:"past"`
		}
		assert.Panics(t, func() { _ = v.Struct(bad{At: "yesterday"}) })
	})
}

func TestRegister_Prefix(t *testing.T) {
	v, r := newValidate(t, playground.WithPrefix("tg_"))
	assert.Equal(t, "tg_weekend", r.Tag("weekend"))

	type booking struct {
		Day civil.Date `validate:"tg_weekend"`
	}
	assert.NoError(t, v.Struct(booking{Day: civil.Date{Year: 2024, Month: time.June, Day: 8}}))
	assert.Error(t, v.Struct(booking{Day: civil.Date{Year: 2024, Month: time.June, Day: 7}}))
}

func TestRegistrar_Compile(t *testing.T) {
	_, r := newValidate(t)

	first, err := r.Compile("hour_in", "9 10", reflect.TypeFor[time.Time]())
	require.NoError(t, err)
	second, err := r.Compile("hour_in", "9 10", reflect.TypeFor[time.Time]())
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = r.Compile("hour_in", "9", reflect.TypeFor[civil.Date]())
	assert.ErrorIs(t, err, constraint.ErrFieldNotSupported)

	_, err = r.Compile("hour_in", "zone=UTC;9", reflect.TypeFor[time.Time]())
	assert.ErrorIs(t, err, playground.ErrInvalidParam)
	assert.True(t, constraint.IsConfigError(err))
}

func TestRegistrar_CacheSize(t *testing.T) {
	var logs bytes.Buffer
	r := playground.New(
		playground.WithCacheSize(1),
		playground.WithPrefix("tg_"),
		playground.WithLogger(logger.New(logger.WithOutput(&logs), logger.WithFormat(logger.FormatText), logger.WithLevel(slog.LevelDebug))),
	)
	target := reflect.TypeFor[time.Time]()

	first, err := r.Compile("hour_in", "9", target)
	require.NoError(t, err)
	_, err = r.Compile("hour_in", "10", target)
	require.NoError(t, err)
	assert.Equal(t, 1, r.CacheLen())
	assert.Contains(t, logs.String(), "compiled constraint evicted")
	assert.Contains(t, logs.String(), "tag=tg_hour_in param=9 type=time.Time")

	again, err := r.Compile("hour_in", "9", target)
	require.NoError(t, err)
	assert.NotSame(t, first, again, "evicted entries are compiled again")

	_, err = r.Compile("hour_in", "25", target)
	require.Error(t, err)
	assert.Equal(t, 1, r.CacheLen(), "failed compilations are not cached")
}

func TestErrors(t *testing.T) {
	v, r := newValidate(t)

	s := validShift()
	s.OpensAt = s.OpensAt.Add(-2 * time.Hour)
	s.Stamp = timestamppb.New(now.Add(time.Hour))
	s.Name = ""

	err := v.Struct(s)
	require.Error(t, err)

	t.Run("english", func(t *testing.T) {
		converted := r.Errors(err, nil, "en")
		errs := tgvalidator.ExtractValidationErrors(converted)
		require.Len(t, errs, 3)

		opens := errs.GetErrors("OpensAt")
		require.Len(t, opens, 1)
		assert.Equal(t, "validation.hour_in", opens[0].TranslationKey)
		assert.Equal(t, "OpensAt: hour must be one of 9, 10, 11", opens[0].Message)

		stamp := errs.GetErrors("Stamp")
		require.Len(t, stamp, 1)
		assert.Equal(t, "Stamp must be in the past", stamp[0].Message)

		name := errs.GetErrors("Name")
		require.Len(t, name, 1)
		assert.Equal(t, "validation.required", name[0].TranslationKey)
		assert.Contains(t, name[0].Message, "required")
	})

	t.Run("german", func(t *testing.T) {
		errs := tgvalidator.ExtractValidationErrors(r.Errors(err, i18n.Builtin(), "de-DE"))
		require.NotNil(t, errs)
		assert.Equal(t, []string{"OpensAt: Stunde muss einer der Werte 9, 10, 11 sein"}, errs.Get("OpensAt"))
	})

	t.Run("package level", func(t *testing.T) {
		errs := tgvalidator.ExtractValidationErrors(playground.Errors(err, nil, "en"))
		assert.True(t, errs.Has("OpensAt"))
	})

	t.Run("passthrough", func(t *testing.T) {
		assert.NoError(t, r.Errors(nil, nil, "en"))
		other := assert.AnError
		assert.Equal(t, other, r.Errors(other, nil, "en"))
	})
}
