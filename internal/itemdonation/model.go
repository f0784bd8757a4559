package itemdonation

// ItemDonation liga uma doação a um produto doado; a chave primária é o par
type ItemDonation struct {
	IDDonation int64   `json:"id_donation" gorm:"column:id_donation;primaryKey;autoIncrement:false"`
	IDProduct  int64   `json:"id_product" gorm:"column:id_product;primaryKey;autoIncrement:false"`
	Amount     float64 `json:"amount" gorm:"not null"`
}
