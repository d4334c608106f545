package response

import "estimate_app/internal/domain/entities"

type CompanyProfileResponse struct {
	CompanyName   string `json:"company_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Website       string `json:"website,omitempty"`
	TaxIdentifier string `json:"tax_identifier,omitempty"`
	Logo          string `json:"logo,omitempty"`
}

type DefaultTermsResponse struct {
	TermsAndConditions string `json:"terms_and_conditions"`
	Notes              string `json:"notes"`
}

type SettingsResponse struct {
	CompanyProfile CompanyProfileResponse `json:"company_profile"`
	DefaultTerms   DefaultTermsResponse   `json:"default_terms"`
}

func FromSettings(s entities.Settings) SettingsResponse {
	p := s.CompanyProfile
	return SettingsResponse{
		CompanyProfile: CompanyProfileResponse{
			CompanyName:   p.CompanyName,
			Email:         p.Email,
			Phone:         p.Phone,
			Address:       p.Address,
			Website:       p.Website,
			TaxIdentifier: p.TaxIdentifier,
			Logo:          p.Logo,
		},
		DefaultTerms: DefaultTermsResponse{
			TermsAndConditions: s.DefaultTerms.TermsAndConditions,
			Notes:              s.DefaultTerms.Notes,
		},
	}
}

// MessageResponse is the plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
