package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

var testDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func makeTable(id string, capacity int) *domain.Table {
	return &domain.Table{ID: id, Name: "Table " + id, Capacity: capacity}
}

func makeReservation(id int64, tableID string, start types.TimeString, status domain.ReservationStatus) *domain.Reservation {
	r := &domain.Reservation{
		ID:           id,
		CustomerName: "Guest",
		Contact:      "guest@example.com",
		Date:         testDate,
		StartTime:    start,
		PartySize:    2,
		Status:       status,
	}
	if tableID != "" {
		r.TableID = &tableID
	}
	return r
}

func tableIDs(tables []*domain.Table) []string {
	ids := make([]string, 0, len(tables))
	for _, table := range tables {
		ids = append(ids, table.ID)
	}
	return ids
}

func TestAvailableTables(t *testing.T) {
	floor := []*domain.Table{
		makeTable("T1", 2),
		makeTable("T2", 2),
		makeTable("T3", 4),
	}

	testCases := []struct {
		name         string
		tables       []*domain.Table
		reservations []*domain.Reservation
		start        types.TimeString
		partySize    int
		wantIDs      []string
	}{
		{
			name:      "party of two fits every table with no reservations",
			tables:    floor,
			start:     "10:00",
			partySize: 2,
			wantIDs:   []string{"T1", "T2", "T3"},
		},
		{
			name:      "capacity filter drops small tables",
			tables:    floor,
			start:     "10:00",
			partySize: 3,
			wantIDs:   []string{"T3"},
		},
		{
			name:   "conflicting reservation excludes its table",
			tables: floor,
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
			},
			start:     "10:00",
			partySize: 2,
			wantIDs:   []string{"T2", "T3"},
		},
		{
			name:   "later window misses earlier booking",
			tables: floor,
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
			},
			start:     "12:00",
			partySize: 2,
			wantIDs:   []string{"T1", "T2", "T3"},
		},
		{
			name:   "boundary touch is not a conflict",
			tables: floor,
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
			},
			start:     "11:30",
			partySize: 2,
			wantIDs:   []string{"T1", "T2", "T3"},
		},
		{
			name:   "overlap from the left excludes the table",
			tables: floor,
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
			},
			start:     "11:00",
			partySize: 2,
			wantIDs:   []string{"T2", "T3"},
		},
		{
			name:   "cancelled reservation frees its table",
			tables: floor,
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusCancelled),
			},
			start:     "10:00",
			partySize: 2,
			wantIDs:   []string{"T1", "T2", "T3"},
		},
		{
			name:   "pending reservation without table holds nothing",
			tables: floor,
			reservations: []*domain.Reservation{
				makeReservation(1, "", "10:00", domain.StatusPending),
			},
			start:     "10:00",
			partySize: 2,
			wantIDs:   []string{"T1", "T2", "T3"},
		},
		{
			name:      "party larger than every table yields empty set",
			tables:    floor,
			start:     "10:00",
			partySize: 8,
			wantIDs:   []string{},
		},
		{
			name:   "all tables taken yields empty set",
			tables: floor,
			reservations: []*domain.Reservation{
				makeReservation(1, "T1", "10:00", domain.StatusConfirmed),
				makeReservation(2, "T2", "10:30", domain.StatusConfirmed),
				makeReservation(3, "T3", "11:00", domain.StatusConfirmed),
			},
			start:     "10:00",
			partySize: 2,
			wantIDs:   []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AvailableTables(tc.tables, tc.reservations, tc.start, 90, tc.partySize)

			require.NoError(t, err)
			assert.Equal(t, tc.wantIDs, tableIDs(got))
		})
	}
}

func TestAvailableTables_WindowOutOfDay(t *testing.T) {
	_, err := AvailableTables([]*domain.Table{makeTable("T1", 2)}, nil, "23:30", 90, 2)
	assert.ErrorIs(t, err, ErrWindowOutOfDay)
}

func TestAvailableTables_InputOrderIndependent(t *testing.T) {
	forward := []*domain.Table{makeTable("T1", 2), makeTable("T2", 2), makeTable("T3", 4)}
	backward := []*domain.Table{makeTable("T3", 4), makeTable("T2", 2), makeTable("T1", 2)}

	reservations := []*domain.Reservation{
		makeReservation(2, "T2", "10:30", domain.StatusConfirmed),
		makeReservation(1, "T1", "12:30", domain.StatusConfirmed),
	}
	reversed := []*domain.Reservation{reservations[1], reservations[0]}

	got1, err := AvailableTables(forward, reservations, "10:00", 90, 2)
	require.NoError(t, err)

	got2, err := AvailableTables(backward, reversed, "10:00", 90, 2)
	require.NoError(t, err)

	assert.Equal(t, tableIDs(got1), tableIDs(got2))
	assert.Equal(t, []string{"T1", "T3"}, tableIDs(got1))
}
