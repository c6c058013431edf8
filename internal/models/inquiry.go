package models

import "github.com/samber/mo"

// Inquiry is the order form input. It lives for one request and is never stored.
type Inquiry struct {
	Name        string
	Business    mo.Option[string]
	Budget      string
	Description string
}
