package donor

import (
	"strconv"
	"time"
)

// EnterpriseResponse serializa a empresa com o ID como string. Quando o doador
// não possui empresa a resposta ainda carrega o objeto, vazio.
type EnterpriseResponse struct {
	ID               string `json:"id,omitempty"`
	ResponsibleName  string `json:"responsible_name,omitempty"`
	EnterpriseName   string `json:"enterprise_name,omitempty"`
	Cnpj             string `json:"cnpj,omitempty"`
	Cep              string `json:"cep,omitempty"`
	City             string `json:"city,omitempty"`
	Street           string `json:"street,omitempty"`
	EnterpriseNumber string `json:"enterprise_number,omitempty"`
	Neighborhood     string `json:"neighborhood,omitempty"`
}

type Response struct {
	ID             string             `json:"id"`
	IDEnterprise   string             `json:"id_enterprise,omitempty"`
	Email          string             `json:"email"`
	DonationPeriod string             `json:"donation_period"`
	DonorType      string             `json:"donor_type"`
	Name           string             `json:"name"`
	Phone          string             `json:"phone"`
	SocialNetwork  *string            `json:"social_network"`
	BirthDate      *time.Time         `json:"birth_date"`
	Enterprise     EnterpriseResponse `json:"donor_enterprise"`
}

func (d Donor) ToResponse() Response {
	resp := Response{
		ID:             strconv.FormatInt(d.ID, 10),
		Email:          d.Email,
		DonationPeriod: d.DonationPeriod,
		DonorType:      d.DonorType,
		Name:           d.Name,
		Phone:          d.Phone,
		SocialNetwork:  d.SocialNetwork,
		BirthDate:      d.BirthDate,
	}
	if d.IDEnterprise != nil {
		resp.IDEnterprise = strconv.FormatInt(*d.IDEnterprise, 10)
	}
	if d.Enterprise != nil {
		resp.Enterprise = EnterpriseResponse{
			ID:               strconv.FormatInt(d.Enterprise.ID, 10),
			ResponsibleName:  d.Enterprise.ResponsibleName,
			EnterpriseName:   d.Enterprise.EnterpriseName,
			Cnpj:             d.Enterprise.Cnpj,
			Cep:              d.Enterprise.Cep,
			City:             d.Enterprise.City,
			Street:           d.Enterprise.Street,
			EnterpriseNumber: d.Enterprise.EnterpriseNumber,
			Neighborhood:     d.Enterprise.Neighborhood,
		}
	}
	return resp
}

func ToResponses(donors []Donor) []Response {
	responses := make([]Response, 0, len(donors))
	for _, d := range donors {
		responses = append(responses, d.ToResponse())
	}
	return responses
}
