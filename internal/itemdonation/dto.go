package itemdonation

import "strconv"

// Response espelha ItemDonation com os IDs convertidos para string
type Response struct {
	IDDonation string  `json:"id_donation"`
	IDProduct  string  `json:"id_product"`
	Amount     float64 `json:"amount"`
}

func (i ItemDonation) ToResponse() Response {
	return Response{
		IDDonation: strconv.FormatInt(i.IDDonation, 10),
		IDProduct:  strconv.FormatInt(i.IDProduct, 10),
		Amount:     i.Amount,
	}
}

func ToResponses(items []ItemDonation) []Response {
	responses := make([]Response, 0, len(items))
	for _, i := range items {
		responses = append(responses, i.ToResponse())
	}
	return responses
}
