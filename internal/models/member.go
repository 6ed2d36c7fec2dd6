package models

// Member is one entry in the group's roster: the ordered list of people
// offered as payers and participants when recording an expense.
type Member struct {
	// Name is the display name and the identifier used in expenses.
	Name string

	// Position is the zero-based index of the member in the roster.
	Position int
}
