package models

// PageData is the view model shared by every rendered page.
type PageData struct {
	Title       string
	Description string
	Environment string

	Users []User
	Items []Item
}
