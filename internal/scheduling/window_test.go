package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTRS-ReservationService/pkg/types"
)

func TestNewWindow(t *testing.T) {
	testCases := []struct {
		name     string
		start    types.TimeString
		duration int
		wantEnd  types.TimeString
		wantErr  error
	}{
		{name: "standard slot", start: "10:00", duration: 90, wantEnd: "11:30"},
		{name: "evening slot", start: "19:15", duration: 90, wantEnd: "20:45"},
		{name: "short slot", start: "23:00", duration: 45, wantEnd: "23:45"},
		{name: "touches midnight", start: "22:30", duration: 90, wantErr: ErrWindowOutOfDay},
		{name: "crosses midnight", start: "23:00", duration: 90, wantErr: ErrWindowOutOfDay},
		{name: "invalid start", start: "25:99", duration: 90, wantErr: ErrWindowOutOfDay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := NewWindow(tc.start, tc.duration)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.start, w.Start)
			assert.Equal(t, tc.wantEnd, w.End)
		})
	}
}

func TestWindow_Overlaps(t *testing.T) {
	mustWindow := func(start types.TimeString, duration int) Window {
		w, err := NewWindow(start, duration)
		require.NoError(t, err)
		return w
	}

	testCases := []struct {
		name string
		a    Window
		b    Window
		want bool
	}{
		{
			name: "partial overlap",
			a:    mustWindow("10:00", 90),
			b:    mustWindow("11:00", 90),
			want: true,
		},
		{
			name: "identical windows",
			a:    mustWindow("10:00", 90),
			b:    mustWindow("10:00", 90),
			want: true,
		},
		{
			name: "contained window",
			a:    mustWindow("10:00", 90),
			b:    mustWindow("10:30", 30),
			want: true,
		},
		{
			name: "boundary touch after",
			a:    mustWindow("10:00", 90),
			b:    mustWindow("11:30", 90),
			want: false,
		},
		{
			name: "boundary touch before",
			a:    mustWindow("11:30", 90),
			b:    mustWindow("10:00", 90),
			want: false,
		},
		{
			name: "fully disjoint",
			a:    mustWindow("09:00", 90),
			b:    mustWindow("14:00", 90),
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Пересечение симметрично
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}
