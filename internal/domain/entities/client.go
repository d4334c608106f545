package entities

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrClientNameRequired    = errors.New("client name is required")
	ErrClientEmailInvalid    = errors.New("invalid client email address")
	ErrClientPhoneRequired   = errors.New("client phone number is required")
	ErrClientAddressRequired = errors.New("client address is required")
)

// Client is a customer that estimates are issued to.
//
// Storage model (record store):
//   - key "clients" holds a JSON array of Client, insertion ordered
//   - ID is assigned once at creation and never changes
//
// Estimates embed a full copy of the Client at the time they are saved; edits
// to the Client do not reach those copies.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	GSTNumber string    `json:"gstNumber,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewClient builds a Client from form values. ID and CreatedAt are left for
// the caller to assign.
func NewClient(name, email, phone, address, gstNumber string) (Client, error) {
	c := Client{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		Address:   strings.TrimSpace(address),
		GSTNumber: strings.TrimSpace(gstNumber),
	}
	if err := c.Validate(); err != nil {
		return Client{}, err
	}
	return c, nil
}

// Validate checks the fields the client form requires.
func (c Client) Validate() error {
	if c.Name == "" {
		return ErrClientNameRequired
	}
	if !isEmail(c.Email) {
		return ErrClientEmailInvalid
	}
	if c.Phone == "" {
		return ErrClientPhoneRequired
	}
	if c.Address == "" {
		return ErrClientAddressRequired
	}
	return nil
}

func isEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// ParseAddress accepts "Name <a@b>", the form only takes the bare address.
	return addr.Address == s
}
