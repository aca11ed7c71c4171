package domain

import "errors"

// Card carries the raw values the caller supplies; the expiry stays a
// string because only the gateway adapter knows what the backend
// expects of it.
type Card struct {
	Number string
	Expiry string // MM/YY
	CVV    string
}

func (c Card) Validate() error {
	if c.Number == "" {
		return errors.New("card number is empty")
	}

	if c.Expiry == "" {
		return errors.New("card expiry is empty")
	}

	if c.CVV == "" {
		return errors.New("card cvv is empty")
	}

	return nil
}
