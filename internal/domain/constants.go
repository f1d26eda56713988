package domain

// Default configuration values
const (
	// DefaultReservationDurationMinutes длительность окна брони,
	// одинаковая для всех броней независимо от размера компании
	DefaultReservationDurationMinutes = 90
)

// Business validation constants
const (
	MinPartySize = 1
	MaxPartySize = 100

	MinReservationDurationMinutes = 15
	MaxReservationDurationMinutes = 480 // 8 hours

	MaxCustomerNameLength = 200
	MaxContactLength      = 200
	MaxTableIDLength      = 32
	MaxTableNameLength    = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, исключаемых из проверок доступности и конфликтов
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих (или претендующих на) слот
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
