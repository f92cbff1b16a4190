package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricferreira/roster-optimizer/internal/calendar"
	"github.com/ricferreira/roster-optimizer/internal/models"
)

func TestCanonicalWeekday(t *testing.T) {
	for _, in := range []string{"Mon", "monday", " MONDAY ", "mon"} {
		token, ok := CanonicalWeekday(in)
		assert.True(t, ok, in)
		assert.Equal(t, "mon", token, in)
	}
	_, ok := CanonicalWeekday("notaday")
	assert.False(t, ok)
}

func TestParseDayList(t *testing.T) {
	set := ParseDayList("Mon, Wednesday, FRI")
	assert.True(t, set["mon"])
	assert.True(t, set["wed"])
	assert.True(t, set["fri"])
	assert.False(t, set["tue"])
}

func TestRequiredDays(t *testing.T) {
	assert.Equal(t, 3, RequiredDays(5, 0.6))
	assert.Equal(t, 10, RequiredDays(20, 0.5))
}

func TestBuild_FixedSeatIndex(t *testing.T) {
	dates := calendar.WorkingDates(2025, time.March, nil)

	in := models.Inputs{
		Employees: []models.EmployeeRow{{EmployeeID: "E1", EmployeeName: "Alice", SubTeam: "A"}},
		Seats: []models.SeatRow{{
			SeatCode: "S1", SeatType: "fixed", Days: "Mon,Tue,Wed,Thu,Fri", AssignedEmployeeID: "E1",
		}},
	}

	idx, err := Build(in, dates)
	require.NoError(t, err)

	for _, d := range dates {
		key := d.Format("2006-01-02")
		assert.Equal(t, "E1", idx.FixedAt[seatDateKey{"S1", key}])
	}
}

func TestBuild_UnknownFixedAssigneeWarns(t *testing.T) {
	dates := calendar.WorkingDates(2025, time.March, nil)
	in := models.Inputs{
		Seats: []models.SeatRow{{SeatCode: "S1", SeatType: "fixed", Days: "Mon", AssignedEmployeeID: "ghost"}},
	}
	idx, err := Build(in, dates)
	require.NoError(t, err)
	assert.NotEmpty(t, idx.Warnings)
	assert.Empty(t, idx.FixedAt)
}

func TestBuild_SpecialDayFirstRowWins(t *testing.T) {
	dates := calendar.WorkingDates(2025, time.March, nil)
	in := models.Inputs{
		SpecialSubTeamDays: []models.SpecialSubTeamDayRow{
			{DayDescriptor: "1st Tue", SubTeam: "B"},
			{DayDescriptor: "1st Tue", SubTeam: "C"}, // same date, loses tie-break
		},
	}
	idx, err := Build(in, dates)
	require.NoError(t, err)

	resolved, _ := time.Parse("2006-01-02", "2025-03-04")
	rule := idx.SpecialDay[resolved.Format("2006-01-02")]
	assert.Equal(t, "b", rule.SubTeam)
}

func TestBuild_DesignatedDatesUnionAcrossRows(t *testing.T) {
	dates := calendar.WorkingDates(2025, time.March, nil)
	in := models.Inputs{
		Employees: []models.EmployeeRow{{EmployeeID: "E1", EmployeeName: "Alice", SubTeam: "A"}},
		SubTeamOfficeDays: []models.SubTeamOfficeDaysRow{
			{SubTeam: "A", OfficeDays: "Mon"},
			{SubTeam: "A", OfficeDays: "Wed"},
		},
	}
	idx, err := Build(in, dates)
	require.NoError(t, err)

	designated := idx.DesignatedDates["E1"]
	require.NotNil(t, designated)
	for dateStr := range designated {
		d, _ := time.Parse("2006-01-02", dateStr)
		assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday}, d.Weekday())
	}
}
