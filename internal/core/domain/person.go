package domain

// Person is an addressable individual managed through the people API.
// The ID is assigned once by the persistence layer and never changes.
type Person struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Gender    string `json:"gender"`
	Enabled   bool   `json:"enabled"`
}
