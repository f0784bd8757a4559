package donation

// donationData aceita os IDs como string e usa ponteiros onde a ausência importa
type donationData struct {
	IDDonor          string   `json:"id_donor"`
	DonationType     string   `json:"donation_type"`
	DonationDate     string   `json:"donation_date"`
	ScheduledDate    string   `json:"scheduled_date"`
	DonationValue    *float64 `json:"donation_value"`
	DonationReceived *bool    `json:"donation_received"`
}

type createDonationRequest struct {
	NewDonationData donationData `json:"newDonationData"`
}

type updateDonationRequest struct {
	NewDonationData donationData `json:"newDonationData"`
}

type bulkDeleteDonationsRequest struct {
	IDs []string `json:"ids"`
}
