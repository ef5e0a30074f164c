package domain

import "time"

// Book is a catalogued title. LaunchDate is optional and kept as a
// pointer so "never launched" survives round-trips untouched.
type Book struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Author     string     `json:"author"`
	LaunchDate *time.Time `json:"launchDate,omitempty"`
	Price      float64    `json:"price"`
}
