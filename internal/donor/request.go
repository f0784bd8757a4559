package donor

// request DTOs

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type donorData struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	DonationPeriod string `json:"donation_period"`
	DonorType      string `json:"donor_type"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	SocialNetwork  string `json:"social_network"`
	BirthDate      string `json:"birth_date"`
}

type enterpriseData struct {
	ResponsibleName  string `json:"responsible_name"`
	EnterpriseName   string `json:"enterprise_name"`
	Cnpj             string `json:"cnpj"`
	Cep              string `json:"cep"`
	City             string `json:"city"`
	Street           string `json:"street"`
	EnterpriseNumber string `json:"enterprise_number"`
	Neighborhood     string `json:"neighborhood"`
}

func (e enterpriseData) isEmpty() bool {
	return e.ResponsibleName == "" && e.EnterpriseName == "" && e.Cnpj == "" &&
		e.Cep == "" && e.City == "" && e.Street == "" &&
		e.EnterpriseNumber == "" && e.Neighborhood == ""
}

type createDonorRequest struct {
	NewDonorData           donorData       `json:"newDonorData"`
	NewDonorEnterpriseData *enterpriseData `json:"newDonorEnterpriseData"`
}

type updateDonorRequest struct {
	NewDonorData           donorData       `json:"newDonorData"`
	NewDonorEnterpriseData *enterpriseData `json:"newDonorEnterpriseData"`
}

type bulkDeleteDonorsRequest struct {
	IDs []string `json:"ids"`
}
