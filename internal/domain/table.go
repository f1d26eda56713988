package domain

import "time"

// Table represents a seating table on the café floor
type Table struct {
	ID        string // Короткий стабильный идентификатор, например "T1"
	Name      string
	Capacity  int
	CreatedAt time.Time
}

// Fits returns true if the table can seat the given party
func (t *Table) Fits(partySize int) bool {
	return t.Capacity >= partySize
}

// Waste returns the number of seats the given party would leave unused
func (t *Table) Waste(partySize int) int {
	return t.Capacity - partySize
}
