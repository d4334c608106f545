package request

import "estimate_app/internal/domain/entities"

type CompanyProfileRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Website       string `json:"website"`
	TaxIdentifier string `json:"tax_identifier"`
	Logo          string `json:"logo"`
}

func (r CompanyProfileRequest) ToEntity() entities.CompanyProfile {
	return entities.CompanyProfile{
		CompanyName:   r.CompanyName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Website:       r.Website,
		TaxIdentifier: r.TaxIdentifier,
		Logo:          r.Logo,
	}
}

type DefaultTermsRequest struct {
	TermsAndConditions string `json:"terms_and_conditions" binding:"required"`
	Notes              string `json:"notes"`
}

func (r DefaultTermsRequest) ToEntity() entities.DefaultTerms {
	return entities.DefaultTerms{TermsAndConditions: r.TermsAndConditions, Notes: r.Notes}
}
