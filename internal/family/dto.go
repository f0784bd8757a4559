package family

import "strconv"

// Response é a família com o ID serializado como string.
type Response struct {
	ID                    string  `json:"id"`
	FamilyName            string  `json:"family_name"`
	FamilyResponsibleName string  `json:"family_responsible_name"`
	NumberMembers         *int    `json:"number_members"`
	WithdrawDonations     bool    `json:"withdraw_donations"`
	Cep                   *string `json:"cep"`
	City                  *string `json:"city"`
	Street                *string `json:"street"`
	HouseNumber           *string `json:"house_number"`
	Neighborhood          *string `json:"neighborhood"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
}

func (f Family) ToResponse() Response {
	return Response{
		ID:                    strconv.FormatInt(f.ID, 10),
		FamilyName:            f.FamilyName,
		FamilyResponsibleName: f.FamilyResponsibleName,
		NumberMembers:         f.NumberMembers,
		WithdrawDonations:     f.WithdrawDonations,
		Cep:                   f.Cep,
		City:                  f.City,
		Street:                f.Street,
		HouseNumber:           f.HouseNumber,
		Neighborhood:          f.Neighborhood,
		Email:                 f.Email,
		Phone:                 f.Phone,
	}
}

func ToResponses(families []Family) []Response {
	responses := make([]Response, 0, len(families))
	for _, f := range families {
		responses = append(responses, f.ToResponse())
	}
	return responses
}
