package models

// Supplier represents a company that supplies books to the store.
type Supplier struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhoneNum string `json:"phone_num,omitempty"`
}
