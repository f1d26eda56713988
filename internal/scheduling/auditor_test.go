package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

func TestFindConflicts(t *testing.T) {
	otherDate := testDate.AddDate(0, 0, 1)

	onDate := func(r *domain.Reservation, date time.Time) *domain.Reservation {
		r.Date = date
		return r
	}

	testCases := []struct {
		name         string
		reservations []*domain.Reservation
		wantPairs    [][2]int64
	}{
		{
			name:      "empty set",
			wantPairs: [][2]int64{},
		},
		{
			name: "clean schedule has no conflicts",
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
				makeReservation(2, "T1", "11:30", domain.StatusConfirmed),
				makeReservation(3, "T2", "10:30", domain.StatusConfirmed),
			},
			wantPairs: [][2]int64{},
		},
		{
			name: "same table overlapping windows",
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
				makeReservation(2, "T1", "11:00", domain.StatusConfirmed),
			},
			wantPairs: [][2]int64{{1, 2}},
		},
		{
			name: "pair reported once regardless of input order",
			reservations: []*domain.Reservation{
				makeReservation(2, "T1", "11:00", domain.StatusConfirmed),
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
			},
			wantPairs: [][2]int64{{1, 2}},
		},
		{
			name: "different tables never conflict",
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
				makeReservation(2, "T2", "10:00", domain.StatusConfirmed),
			},
			wantPairs: [][2]int64{},
		},
		{
			name: "different dates never conflict",
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
				onDate(makeReservation(2, "T1", "10:00", domain.StatusConfirmed), otherDate),
			},
			wantPairs: [][2]int64{},
		},
		{
			name: "cancelled reservation is exempt",
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
				makeReservation(2, "T1", "10:30", domain.StatusCancelled),
			},
			wantPairs: [][2]int64{},
		},
		{
			name: "pending without table is exempt",
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
				makeReservation(2, "", "10:00", domain.StatusPending),
			},
			wantPairs: [][2]int64{},
		},
		{
			name: "triple overlap yields all three pairs",
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
				makeReservation(2, "T1", "10:30", domain.StatusConfirmed),
				makeReservation(3, "T1", "11:00", domain.StatusConfirmed),
			},
			wantPairs: [][2]int64{{1, 2}, {1, 3}, {2, 3}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindConflicts(tc.reservations, 90)

			pairs := make([][2]int64, 0, len(got))
			for _, c := range got {
				assert.Less(t, c.First.ID, c.Second.ID)
				pairs = append(pairs, [2]int64{c.First.ID, c.Second.ID})
			}

			assert.ElementsMatch(t, tc.wantPairs, pairs)
		})
	}
}

// Брони, назначенные через фильтр и эвристику, никогда не конфликтуют:
// после любой последовательности запросов аудит возвращает пустой отчёт.
func TestFindConflicts_FilterAndHeuristicKeepScheduleClean(t *testing.T) {
	floor := []*domain.Table{
		makeTable("T1", 2),
		makeTable("T2", 2),
		makeTable("T3", 4),
		makeTable("T4", 4),
		makeTable("T5", 6),
	}

	requests := []struct {
		start     types.TimeString
		partySize int
	}{
		{"10:00", 2},
		{"10:00", 2},
		{"10:30", 4},
		{"11:00", 2},
		{"11:00", 6},
		{"11:30", 2},
		{"12:00", 4},
		{"12:00", 2},
		{"12:30", 2},
		{"13:00", 5},
	}

	var schedule []*domain.Reservation
	nextID := int64(1)
	confirmed := 0

	for _, req := range requests {
		available, err := AvailableTables(floor, schedule, req.start, 90, req.partySize)
		require.NoError(t, err)

		chosen := SelectTable(available, req.partySize)
		if chosen == nil {
			continue
		}

		schedule = append(schedule, makeReservation(nextID, chosen.ID, req.start, domain.StatusConfirmed))
		nextID++
		confirmed++
	}

	require.Greater(t, confirmed, 5, "the scenario should confirm most requests")
	assert.Empty(t, FindConflicts(schedule, 90))
}
