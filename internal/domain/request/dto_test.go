package request

import (
	"testing"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestValidateOvertime(t *testing.T) {
	t.Run("valid overtime", func(t *testing.T) {
		req := CreateRequestRequest{
			Type:      "overtime",
			Date:      "2025-04-07",
			StartTime: "18:00",
			EndTime:   "20:30",
		}
		require.NoError(t, req.Validate())
		assert.Equal(t, 150, req.ComputedDuration())
	})

	t.Run("end before start fails", func(t *testing.T) {
		req := CreateRequestRequest{
			Type:      "overtime",
			Date:      "2025-04-07",
			StartTime: "18:00",
			EndTime:   "17:00",
		}
		err := req.Validate()
		require.Error(t, err)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "end_time")
	})

	t.Run("end equal to start fails", func(t *testing.T) {
		req := CreateRequestRequest{
			Type:      "overtime",
			Date:      "2025-04-07",
			StartTime: "18:00",
			EndTime:   "18:00",
		}
		assert.Error(t, req.Validate())
	})

	t.Run("missing date fails", func(t *testing.T) {
		req := CreateRequestRequest{Type: "overtime", StartTime: "18:00", EndTime: "20:00"}
		err := req.Validate()
		require.Error(t, err)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "date")
	})

	t.Run("missing times fail", func(t *testing.T) {
		req := CreateRequestRequest{Type: "overtime", Date: "2025-04-07"}
		assert.Error(t, req.Validate())
	})

	t.Run("explicit duration override wins", func(t *testing.T) {
		override := 90
		req := CreateRequestRequest{
			Type:            "overtime",
			Date:            "2025-04-07",
			StartTime:       "18:00",
			EndTime:         "20:30",
			DurationMinutes: &override,
		}
		require.NoError(t, req.Validate())
		assert.Equal(t, 90, req.ComputedDuration())
	})
}

func TestCreateRequestValidateDateRangeTypes(t *testing.T) {
	for _, typ := range []string{TypeLeave, TypeSick, TypeCorrection} {
		t.Run(typ, func(t *testing.T) {
			valid := CreateRequestRequest{Type: typ, From: "2025-04-01", To: "2025-04-03"}
			assert.NoError(t, valid.Validate())

			missing := CreateRequestRequest{Type: typ, From: "2025-04-01"}
			assert.Error(t, missing.Validate())
		})
	}
}

func TestCreateRequestValidateMissingType(t *testing.T) {
	req := CreateRequestRequest{From: "2025-04-01", To: "2025-04-03"}
	err := req.Validate()
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "type")
}

func TestNormalizedType(t *testing.T) {
	cases := map[string]string{
		"Overtime":  "overtime",
		"  LEAVE ":  "leave",
		"sick":      "sick",
		" Koreksi ": "koreksi",
	}
	for in, want := range cases {
		req := CreateRequestRequest{Type: in}
		assert.Equal(t, want, req.NormalizedType())
	}
}

func TestSetStatusValidate(t *testing.T) {
	for _, status := range []string{"approved", "rejected", "pending"} {
		req := SetStatusRequest{Status: status}
		assert.NoError(t, req.Validate(), status)
	}
	for _, status := range []string{"", "done", "APPROVED", "cancelled"} {
		req := SetStatusRequest{Status: status}
		assert.Error(t, req.Validate(), status)
	}
}
