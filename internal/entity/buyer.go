package entity

// Buyer represents the customer table, the profile of a user placing orders.
type Buyer struct {
	ID        string `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstname"`
	LastName  string `db:"last_name" json:"lastname"`
	Email     string `db:"email" json:"email"`
}
