package salary

import "math"

// Compute derives the weekly and monthly salary for every campus in req and
// the totals across all of them. Details keep the input order. Compute does
// not validate req; callers reject non-positive rates and hours beforehand.
func Compute(req Request) Response {
	resp := Response{
		Details: make([]CampusBreakdown, 0, len(req.Campuses)),
	}

	for _, entry := range req.Campuses {
		weeklyHours := entry.Hours
		weeklySalary := req.HourlyRate * weeklyHours
		monthlyHours := weeklyHours * WeeksPerMonth
		monthlySalary := req.HourlyRate * monthlyHours

		resp.OverallWeeklySalary += weeklySalary
		resp.OverallMonthlySalary += monthlySalary

		resp.Details = append(resp.Details, CampusBreakdown{
			Campus:        entry.Campus,
			WeeklyHours:   weeklyHours,
			WeeklySalary:  weeklySalary,
			MonthlyHours:  monthlyHours,
			MonthlySalary: monthlySalary,
		})
	}

	return resp
}

// finite reports whether every figure in resp can be encoded as JSON.
func (resp Response) finite() bool {
	if !isFinite(resp.OverallWeeklySalary) || !isFinite(resp.OverallMonthlySalary) {
		return false
	}
	for _, d := range resp.Details {
		if !isFinite(d.WeeklySalary) || !isFinite(d.MonthlySalary) || !isFinite(d.MonthlyHours) {
			return false
		}
	}
	return true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
