package family

// request DTOs

type familyData struct {
	FamilyName            string  `json:"family_name"`
	FamilyResponsibleName string  `json:"family_responsible_name"`
	NumberMembers         *int    `json:"number_members"`
	WithdrawDonations     *bool   `json:"withdraw_donations"`
	Cep                   string  `json:"cep"`
	City                  string  `json:"city"`
	Street                string  `json:"street"`
	HouseNumber           string  `json:"house_number"`
	Neighborhood          string  `json:"neighborhood"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
}

type createFamilyRequest struct {
	NewFamilyData familyData `json:"newFamilyData"`
}

type updateFamilyRequest struct {
	NewFamilyData familyData `json:"newFamilyData"`
}

type bulkDeleteFamiliesRequest struct {
	IDs []string `json:"ids"`
}
