package models

// Product is a catalog record. The catalog is read-only for the lifetime
// of the process; consumers get copies, never the backing slice.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"inStock"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// User is the sanitized user record: no credential field, safe to persist
// and to return from handlers.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"isAdmin"`
}
