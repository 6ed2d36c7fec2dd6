package models

// Expense is one shared expense: a payer fronted Amount for the benefit of Participants.
//
// The JSON form ({id, name, amount, payer, participants}) is the persistence
// format of the expense collection; CreatedAt is storage metadata only.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	// Used for list identity only, never in balance computation.
	ID string `json:"id"`

	// Name is a free-text label (e.g., "Lunch", "Taxi Ride").
	Name string `json:"name"`

	// Amount is the total cost. Must be positive.
	Amount float64 `json:"amount"`

	// Payer is the participant who fronted the money.
	Payer string `json:"payer"`

	// Participants are the people who benefit from the expense, in entry order.
	// Duplicates are kept: a name listed twice is charged two shares.
	Participants []string `json:"participants"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"-"`
}

// People returns the participants and payers of expenses in order of first
// appearance, without duplicates or empty names.
func People(expenses ...Expense) []string {
	seen := make(map[string]bool)
	var people []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			people = append(people, name)
		}
	}
	for _, e := range expenses {
		for _, p := range e.Participants {
			add(p)
		}
		add(e.Payer)
	}
	return people
}
