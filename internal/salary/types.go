package salary

// WeeksPerMonth converts weekly hours and salaries into monthly figures.
const WeeksPerMonth = 4.0

// CampusEntry is the weekly workload at a single campus.
type CampusEntry struct {
	Campus string
	Hours  float64
}

// Request is the validated input to Compute.
type Request struct {
	HourlyRate float64
	Campuses   []CampusEntry
}

// CampusBreakdown holds the derived figures for one campus.
type CampusBreakdown struct {
	Campus        string  `json:"campus"`
	WeeklyHours   float64 `json:"weekly_hours"`
	WeeklySalary  float64 `json:"weekly_salary"`
	MonthlyHours  float64 `json:"monthly_hours"`
	MonthlySalary float64 `json:"monthly_salary"`
}

// Response is the JSON response for POST /calcular-salario.
type Response struct {
	Details              []CampusBreakdown `json:"details"`
	OverallWeeklySalary  float64           `json:"overall_weekly_salary"`
	OverallMonthlySalary float64           `json:"overall_monthly_salary"`
}

// CampusPayload is one element of CalculateRequest.Campuses.
type CampusPayload struct {
	Campus string   `json:"campus" validate:"required"`
	Hours  *float64 `json:"hours" validate:"required,gt=0"`
}

// CalculateRequest is the JSON body for POST /calcular-salario.
// Numeric fields are pointers so a missing value is reported as required
// rather than as out of range.
type CalculateRequest struct {
	HourlyRate *float64        `json:"hourly_rate" validate:"required,gt=0"`
	Campuses   []CampusPayload `json:"campuses" validate:"required,dive"`
}

// ToRequest converts a validated payload into the calculator input.
func (p CalculateRequest) ToRequest() Request {
	req := Request{
		Campuses: make([]CampusEntry, 0, len(p.Campuses)),
	}
	if p.HourlyRate != nil {
		req.HourlyRate = *p.HourlyRate
	}
	for _, c := range p.Campuses {
		entry := CampusEntry{Campus: c.Campus}
		if c.Hours != nil {
			entry.Hours = *c.Hours
		}
		req.Campuses = append(req.Campuses, entry)
	}
	return req
}
