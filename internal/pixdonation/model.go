package pixdonation

// PixDonation guarda a única chave PIX divulgada para receber doações,
// no máximo um registro existe na tabela
type PixDonation struct {
	PixKey string `json:"pix_key" gorm:"column:pix_key;primaryKey;size:32"`
	Name   string `json:"name" gorm:"size:32;not null"`
	City   string `json:"city" gorm:"size:32;not null"`
	Cep    string `json:"cep" gorm:"size:8;not null"`
}
