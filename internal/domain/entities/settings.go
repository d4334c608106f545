package entities

import (
	"errors"
	"strings"
)

const (
	DefaultTermsAndConditions = "Payment due within 7 days of receipt."
	DefaultNotes              = "Thank you for your business!"
)

var (
	ErrCompanyNameRequired    = errors.New("company name is required")
	ErrCompanyEmailInvalid    = errors.New("invalid company email address")
	ErrCompanyPhoneRequired   = errors.New("company phone number is required")
	ErrCompanyAddressRequired = errors.New("company address is required")
	ErrDefaultTermsRequired   = errors.New("default terms are required")
)

// Settings is stored wholesale under the "settings" key.
type Settings struct {
	CompanyProfile CompanyProfile `json:"companyProfile"`
	DefaultTerms   DefaultTerms   `json:"defaultTerms"`
}

type CompanyProfile struct {
	CompanyName   string `json:"companyName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Website       string `json:"website,omitempty"`
	TaxIdentifier string `json:"taxIdentifier,omitempty"`
	Logo          string `json:"logo,omitempty"`
}

type DefaultTerms struct {
	TermsAndConditions string `json:"termsAndConditions"`
	Notes              string `json:"notes"`
}

// DefaultSettings is what a fresh installation reads.
func DefaultSettings() Settings {
	return Settings{
		DefaultTerms: DefaultTerms{
			TermsAndConditions: DefaultTermsAndConditions,
			Notes:              DefaultNotes,
		},
	}
}

func (p CompanyProfile) Validate() error {
	if strings.TrimSpace(p.CompanyName) == "" {
		return ErrCompanyNameRequired
	}
	if !isEmail(strings.TrimSpace(p.Email)) {
		return ErrCompanyEmailInvalid
	}
	if strings.TrimSpace(p.Phone) == "" {
		return ErrCompanyPhoneRequired
	}
	if strings.TrimSpace(p.Address) == "" {
		return ErrCompanyAddressRequired
	}
	return nil
}

func (t DefaultTerms) Validate() error {
	if strings.TrimSpace(t.TermsAndConditions) == "" {
		return ErrDefaultTermsRequired
	}
	return nil
}
