package itemdonation

type itemDonationData struct {
	IDDonation string   `json:"id_donation"`
	IDProduct  string   `json:"id_product"`
	Amount     *float64 `json:"amount"`
}

type createItemDonationRequest struct {
	NewItemDonationData itemDonationData `json:"newItemDonationData"`
}

type updateItemDonationRequest struct {
	NewItemDonationData itemDonationData `json:"newItemDonationData"`
}

type itemDonationKey struct {
	IDDonation string `json:"id_donation"`
	IDProduct  string `json:"id_product"`
}

type bulkDeleteItemsDonationsRequest struct {
	IDs []itemDonationKey `json:"ids"`
}
