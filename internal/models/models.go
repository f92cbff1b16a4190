// Package models holds the domain entities and spreadsheet-boundary row
// types for the rostering optimizer. Values here are immutable for the
// lifetime of one optimization run.
package models

// SeatKind distinguishes a seat permanently bound to one employee from one
// the solver is free to assign per date.
type SeatKind string

const (
	SeatFixed    SeatKind = "fixed"
	SeatFlexible SeatKind = "flexible"
)

// Employee is a single roster participant.
type Employee struct {
	ID      string
	Name    string
	SubTeam string // normalized: trimmed, lower-cased
}

// Seat is a physical desk with a weekly availability set.
type Seat struct {
	Code                string
	Kind                SeatKind
	AvailableDays       map[string]bool // canonical 3-letter weekday -> available
	AssignedEmployeeID  string          // present iff Kind == SeatFixed
}

// SubTeamOfficeDays is the union, across input rows, of the designated
// weekdays for a sub-team.
type SubTeamOfficeDays map[string]map[string]bool // sub_team -> canonical weekday -> true

// SpecialDayRule is one row of SpecialSubTeamDays before descriptor
// resolution.
type SpecialDayRule struct {
	Descriptor string
	SubTeam    string
}

// SeatPreference is an unordered (employee, seat) pair.
type SeatPreference struct {
	EmployeeID string
	SeatCode   string
}

// SpecialHistoryEntry is one row of the append-only fairness log.
type SpecialHistoryEntry struct {
	Descriptor string
	EmployeeID string
	MonthYear  string
}

// Assignment is a computed (employee, seat, date) tuple in the result.
type Assignment struct {
	EmployeeID string
	SeatCode   string
	Date       string // YYYY-MM-DD
}

// --- spreadsheet-boundary row types (the "six tables") ---

// EmployeeRow is one row of the EmployeeData table.
type EmployeeRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	SubTeam      string `json:"sub_team"`
}

// SeatRow is one row of the SeatData table.
type SeatRow struct {
	SeatCode           string `json:"seat_code"`
	SeatType           string `json:"seat_type"` // "fixed" | "flexible", case-insensitive
	Days               string `json:"days"`      // comma-separated weekday names
	AssignedEmployeeID string `json:"assigned_employee_id,omitempty"` // only meaningful when SeatType == fixed
}

// HolidayRow is one row of the PublicHolidays table.
type HolidayRow struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// SubTeamOfficeDaysRow is one row of the SubTeamOfficeDays table.
type SubTeamOfficeDaysRow struct {
	SubTeam    string `json:"sub_team"`
	OfficeDays string `json:"office_days"` // comma-separated weekday names
}

// SpecialSubTeamDayRow is one row of the SpecialSubTeamDays table.
type SpecialSubTeamDayRow struct {
	DayDescriptor string `json:"day_descriptor"`
	SubTeam       string `json:"sub_team"`
}

// SeatPreferenceRow is one row of the SeatPreferences table.
type SeatPreferenceRow struct {
	EmployeeID string `json:"employee_id"`
	SeatCode   string `json:"seat_code"`
}

// SpecialHistoryRow is one row of the optional SpecialHistory table.
type SpecialHistoryRow struct {
	Descriptor string `json:"descriptor"`
	EmployeeID string `json:"employee_id"`
	MonthYear  string `json:"month_year"`
}

// Weights carries the objective's overridable coefficients (spec.md §4.4).
type Weights struct {
	FillBonus          int `json:"fill_bonus"`
	PrefBonus          int `json:"pref_bonus"`
	DesignatedBonus    int `json:"designated_bonus"`
	SpecialBonus       int `json:"special_bonus"`
	FairnessCoef       int `json:"fairness_coef"`
	DesignatedMin      int `json:"designated_min"`
	BigPenalty         int `json:"big_penalty"`
	ConsecutivePenalty int `json:"consecutive_penalty"`
}

// DefaultWeights matches spec.md §4.4's stated defaults.
func DefaultWeights() Weights {
	return Weights{
		FillBonus:          1,
		PrefBonus:          10,
		DesignatedBonus:    5,
		SpecialBonus:       20,
		FairnessCoef:       20,
		DesignatedMin:      3,
		BigPenalty:         1000,
		ConsecutivePenalty: 5,
	}
}

// Inputs is the typed, schema-exact boundary the spreadsheet adapter
// delivers (spec.md §6): six tables plus two scalars. The optimizer
// never sees raw cell values, only this struct.
type Inputs struct {
	OfficePercentage float64 `json:"office_percentage"`
	TargetMonthYear  string  `json:"target_month_year"` // "Mmm-YY", e.g. "Mar-25"

	Employees          []EmployeeRow          `json:"employees"`
	Seats              []SeatRow              `json:"seats"`
	Holidays           []HolidayRow           `json:"holidays,omitempty"`
	SubTeamOfficeDays  []SubTeamOfficeDaysRow `json:"sub_team_office_days,omitempty"`
	SpecialSubTeamDays []SpecialSubTeamDayRow `json:"special_sub_team_days,omitempty"`
	SeatPreferences    []SeatPreferenceRow    `json:"seat_preferences,omitempty"`
	SpecialHistory     []SpecialHistoryRow    `json:"special_history,omitempty"` // optional; absent == empty

	Weights *Weights `json:"weights,omitempty"` // nil => DefaultWeights()
}

// EffectiveWeights returns in.Weights if set, else DefaultWeights().
func (in Inputs) EffectiveWeights() Weights {
	if in.Weights != nil {
		return *in.Weights
	}
	return DefaultWeights()
}

// Grid is the rectangular output of the Result Projector (spec.md §4.6).
// DateHeader is "Employee Name" followed by dates; WeekdayHeader is blank
// followed by weekday abbreviations; Rows[i][0] is the employee name.
type Grid struct {
	DateHeader    []string   `json:"date_header"`    // len = 1 + len(dates); [0] == "Employee Name"
	WeekdayHeader []string   `json:"weekday_header"`  // len = 1 + len(dates); [0] == ""
	Rows          [][]string `json:"rows"`
}
