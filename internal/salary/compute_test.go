package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestComputeSingleCampus(t *testing.T) {
	resp := Compute(Request{
		HourlyRate: 50,
		Campuses:   []CampusEntry{{Campus: "A", Hours: 10}},
	})

	require.Len(t, resp.Details, 1)
	assert.Equal(t, CampusBreakdown{
		Campus:        "A",
		WeeklyHours:   10,
		WeeklySalary:  500,
		MonthlyHours:  40,
		MonthlySalary: 2000,
	}, resp.Details[0])
	assert.Equal(t, 500.0, resp.OverallWeeklySalary)
	assert.Equal(t, 2000.0, resp.OverallMonthlySalary)
}

func TestComputeTwoCampusesTotals(t *testing.T) {
	resp := Compute(Request{
		HourlyRate: 30,
		Campuses:   []CampusEntry{{Campus: "A", Hours: 10}, {Campus: "B", Hours: 20}},
	})

	require.Len(t, resp.Details, 2)
	assert.Equal(t, 300.0, resp.Details[0].WeeklySalary)
	assert.Equal(t, 600.0, resp.Details[1].WeeklySalary)
	assert.Equal(t, 900.0, resp.OverallWeeklySalary)
	assert.Equal(t, 3600.0, resp.OverallMonthlySalary)
}

func TestComputeEmptyCampusList(t *testing.T) {
	resp := Compute(Request{HourlyRate: 50, Campuses: []CampusEntry{}})

	require.NotNil(t, resp.Details)
	assert.Empty(t, resp.Details)
	assert.Zero(t, resp.OverallWeeklySalary)
	assert.Zero(t, resp.OverallMonthlySalary)

	resp = Compute(Request{HourlyRate: 50})
	require.NotNil(t, resp.Details, "nil campuses must still encode as []")
}

func TestComputeInvariants(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "fractional hours",
			req: Request{HourlyRate: 42.75, Campuses: []CampusEntry{
				{Campus: "Centro", Hours: 12.5},
				{Campus: "Norte", Hours: 0.1},
				{Campus: "Sul", Hours: 7.3},
			}},
		},
		{
			name: "duplicate campus names",
			req: Request{HourlyRate: 18, Campuses: []CampusEntry{
				{Campus: "Centro", Hours: 4},
				{Campus: "Centro", Hours: 6},
			}},
		},
		{
			name: "small rate",
			req: Request{HourlyRate: 0.01, Campuses: []CampusEntry{
				{Campus: "A", Hours: 40},
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := Compute(tc.req)

			require.Len(t, resp.Details, len(tc.req.Campuses))

			var weekly, monthly float64
			for i, d := range resp.Details {
				in := tc.req.Campuses[i]
				assert.Equal(t, in.Campus, d.Campus, "order must be preserved")
				assert.Equal(t, in.Hours, d.WeeklyHours)
				assert.InDelta(t, tc.req.HourlyRate*d.WeeklyHours, d.WeeklySalary, tolerance)
				assert.InDelta(t, d.WeeklyHours*WeeksPerMonth, d.MonthlyHours, tolerance)
				assert.InDelta(t, tc.req.HourlyRate*d.MonthlyHours, d.MonthlySalary, tolerance)
				assert.InDelta(t, d.WeeklySalary*WeeksPerMonth, d.MonthlySalary, tolerance)

				weekly += d.WeeklySalary
				monthly += d.MonthlySalary
			}

			assert.InDelta(t, weekly, resp.OverallWeeklySalary, tolerance)
			assert.InDelta(t, monthly, resp.OverallMonthlySalary, tolerance)
		})
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	campuses := []CampusEntry{{Campus: "A", Hours: 10}}
	_ = Compute(Request{HourlyRate: 50, Campuses: campuses})

	assert.Equal(t, []CampusEntry{{Campus: "A", Hours: 10}}, campuses)
}

func TestEncodeRejectsOverflow(t *testing.T) {
	resp := Compute(Request{HourlyRate: 1e308, Campuses: []CampusEntry{{Campus: "A", Hours: 10}}})

	_, err := encode(resp)
	assert.Error(t, err)
}

func TestEncodeEmptyDetailsAsArray(t *testing.T) {
	body, err := encode(Compute(Request{HourlyRate: 50}))

	require.NoError(t, err)
	assert.JSONEq(t, `{"details":[],"overall_weekly_salary":0,"overall_monthly_salary":0}`, string(body))
}

func TestToRequestCopiesValues(t *testing.T) {
	rate, hours := 25.0, 8.0
	payload := CalculateRequest{
		HourlyRate: &rate,
		Campuses:   []CampusPayload{{Campus: "Leste", Hours: &hours}},
	}

	assert.Equal(t, Request{
		HourlyRate: 25,
		Campuses:   []CampusEntry{{Campus: "Leste", Hours: 8}},
	}, payload.ToRequest())
}
