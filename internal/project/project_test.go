package project

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricferreira/roster-optimizer/internal/builder"
	"github.com/ricferreira/roster-optimizer/internal/calendar"
	"github.com/ricferreira/roster-optimizer/internal/models"
	"github.com/ricferreira/roster-optimizer/internal/normalize"
	"github.com/ricferreira/roster-optimizer/internal/solver"
)

func TestProject_GridShapeAndFixedSeat(t *testing.T) {
	all := calendar.WorkingDates(2025, time.March, nil)
	dates := all[:5]

	in := models.Inputs{
		OfficePercentage: 0.6,
		Employees:        []models.EmployeeRow{{EmployeeID: "E1", EmployeeName: "Alice", SubTeam: "A"}},
		Seats: []models.SeatRow{{
			SeatCode: "S1", SeatType: "fixed", Days: "Mon,Tue,Wed,Thu,Fri", AssignedEmployeeID: "E1",
		}},
	}
	idx, err := normalize.Build(in, dates)
	require.NoError(t, err)

	required := normalize.RequiredDays(len(dates), in.OfficePercentage)
	backend := solver.NewBranchAndBoundBackend()
	m := builder.Build(backend, idx, models.DefaultWeights(), required)

	status, err := solver.NewDriver(backend).Solve(context.Background())
	require.NoError(t, err)
	require.True(t, status.Optimal)

	res := Project(m, dates, "Mar-25")

	require.Len(t, res.Grid.DateHeader, 6)
	assert.Equal(t, "Employee Name", res.Grid.DateHeader[0])
	require.Len(t, res.Grid.Rows, 1)
	assert.Equal(t, "Alice", res.Grid.Rows[0][0])
	for i := 1; i < len(res.Grid.Rows[0]); i++ {
		assert.Equal(t, "S1", res.Grid.Rows[0][i])
	}
	assert.Empty(t, res.HistoryAppends)
	assert.Empty(t, res.ExclusivityFlags)
}

func TestProject_SpecialDayHistoryAppend(t *testing.T) {
	all := calendar.WorkingDates(2025, time.March, nil)
	dates := all[:5] // 2025-03-03 is the first Monday

	in := models.Inputs{
		OfficePercentage: 1.0,
		Employees:        []models.EmployeeRow{{EmployeeID: "E1", EmployeeName: "Alice", SubTeam: "A"}},
		Seats: []models.SeatRow{{
			SeatCode: "S1", SeatType: "fixed", Days: "Mon,Tue,Wed,Thu,Fri", AssignedEmployeeID: "E1",
		}},
		SpecialSubTeamDays: []models.SpecialSubTeamDayRow{{DayDescriptor: "1st Monday", SubTeam: "A"}},
	}
	idx, err := normalize.Build(in, dates)
	require.NoError(t, err)

	required := normalize.RequiredDays(len(dates), in.OfficePercentage)
	backend := solver.NewBranchAndBoundBackend()
	m := builder.Build(backend, idx, models.DefaultWeights(), required)

	status, err := solver.NewDriver(backend).Solve(context.Background())
	require.NoError(t, err)
	require.True(t, status.Optimal)

	res := Project(m, dates, "Mar-25")

	require.Len(t, res.HistoryAppends, 1)
	assert.Equal(t, "1st Monday", res.HistoryAppends[0].Descriptor)
	assert.Equal(t, "E1", res.HistoryAppends[0].EmployeeID)
	assert.Equal(t, "Mar-25", res.HistoryAppends[0].MonthYear)
	assert.Empty(t, res.ExclusivityFlags)
}

func TestProject_ExclusivityFlagOnMismatchedSubTeam(t *testing.T) {
	all := calendar.WorkingDates(2025, time.March, nil)
	dates := all[:1] // 2025-03-03, 1st Monday

	in := models.Inputs{
		OfficePercentage: 1.0,
		Employees:        []models.EmployeeRow{{EmployeeID: "E1", EmployeeName: "Alice", SubTeam: "B"}},
		Seats: []models.SeatRow{{
			SeatCode: "S1", SeatType: "fixed", Days: "Mon", AssignedEmployeeID: "E1",
		}},
		SpecialSubTeamDays: []models.SpecialSubTeamDayRow{{DayDescriptor: "1st Monday", SubTeam: "A"}},
	}
	idx, err := normalize.Build(in, dates)
	require.NoError(t, err)

	backend := solver.NewBranchAndBoundBackend()
	m := builder.Build(backend, idx, models.DefaultWeights(), 1)

	status, err := solver.NewDriver(backend).Solve(context.Background())
	require.NoError(t, err)
	require.True(t, status.Optimal)

	res := Project(m, dates, "Mar-25")

	assert.Empty(t, res.HistoryAppends)
	require.Len(t, res.ExclusivityFlags, 1)
}
