package playground_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/timeguard/pkg/constraint"
	"github.com/dmitrymomot/timeguard/pkg/playground"
)

func TestParseParam(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		param string
		want  constraint.Constraint
	}{
		{"values", "hour_in", "9 10  11", constraint.Constraint{Name: "hour_in", Values: []string{"9", "10", "11"}}},
		{"values and zone", "hour_in", "9;zone=provided", constraint.Constraint{Name: "hour_in", Values: []string{"9"}, ZoneID: "provided"}},
		{"positional moment", "before", "now;duration=-P1D;zone=UTC", constraint.Constraint{Name: "before", Moment: "now", Duration: "-P1D", ZoneID: "UTC"}},
		{"keyed moment", "after", "moment=2024-01-01T00:00:00+02:00", constraint.Constraint{Name: "after", Moment: "2024-01-01T00:00:00+02:00"}},
		{"duration only", "past", "duration=PT1H", constraint.Constraint{Name: "past", Duration: "PT1H"}},
		{"empty", "weekend", "", constraint.Constraint{Name: "weekend"}},
		{"message", "weekend", "message=booking.weekend", constraint.Constraint{Name: "weekend", Message: "booking.weekend"}},
		{"part literal", "date_time_after", "2024-01-01T10:00:00", constraint.Constraint{Name: "date_time_after", Values: []string{"2024-01-01T10:00:00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := playground.ParseParam(tt.tag, tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("positional segment after keys", func(t *testing.T) {
		_, err := playground.ParseParam("hour_in", "zone=UTC;9")
		assert.ErrorIs(t, err, playground.ErrInvalidParam)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := playground.ParseParam("lunch", "")
		assert.ErrorIs(t, err, constraint.ErrUnknownConstraint)
	})
}
