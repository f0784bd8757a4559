package pixdonation

type pixDonationData struct {
	PixKey string `json:"pix_key"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Cep    string `json:"cep"`
}

type createPixDonationRequest struct {
	NewPixDonationData pixDonationData `json:"newPixDonationData"`
}

type updatePixDonationRequest struct {
	NewPixDonationData pixDonationData `json:"newPixDonationData"`
}
