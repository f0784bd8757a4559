package donation

import "time"

// Donation representa uma doação monetária ou de itens feita por um doador
type Donation struct {
	ID               int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	IDDonor          int64      `json:"id_donor" gorm:"column:id_donor;not null;index"`
	DonationType     string     `json:"donation_type" gorm:"size:1;not null"`
	DonationDate     *time.Time `json:"donation_date"`
	ScheduledDate    *time.Time `json:"scheduled_date"`
	DonationValue    *float64   `json:"donation_value"`
	DonationReceived bool       `json:"donation_received" gorm:"not null"`
}
