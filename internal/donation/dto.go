package donation

import (
	"strconv"
	"time"
)

// Response espelha Donation com os IDs convertidos para string
type Response struct {
	ID               string     `json:"id"`
	IDDonor          string     `json:"id_donor"`
	DonationType     string     `json:"donation_type"`
	DonationDate     *time.Time `json:"donation_date"`
	ScheduledDate    *time.Time `json:"scheduled_date"`
	DonationValue    *float64   `json:"donation_value"`
	DonationReceived bool       `json:"donation_received"`
}

func (d Donation) ToResponse() Response {
	return Response{
		ID:               strconv.FormatInt(d.ID, 10),
		IDDonor:          strconv.FormatInt(d.IDDonor, 10),
		DonationType:     d.DonationType,
		DonationDate:     d.DonationDate,
		ScheduledDate:    d.ScheduledDate,
		DonationValue:    d.DonationValue,
		DonationReceived: d.DonationReceived,
	}
}

func ToResponses(donations []Donation) []Response {
	responses := make([]Response, 0, len(donations))
	for _, d := range donations {
		responses = append(responses, d.ToResponse())
	}
	return responses
}
