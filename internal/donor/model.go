package donor

import "time"

type DonorEnterprise struct {
	ID               int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ResponsibleName  string `json:"responsible_name" gorm:"size:100;not null"`
	EnterpriseName   string `json:"enterprise_name" gorm:"size:100;not null"`
	Cnpj             string `json:"cnpj" gorm:"size:14;uniqueIndex;not null"`
	Cep              string `json:"cep" gorm:"size:8;not null"`
	City             string `json:"city" gorm:"size:60;not null"`
	Street           string `json:"street" gorm:"size:60;not null"`
	EnterpriseNumber string `json:"enterprise_number" gorm:"size:6;not null"`
	Neighborhood     string `json:"neighborhood" gorm:"size:100;not null"`
}

type Donor struct {
	ID             int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	IDEnterprise   *int64           `json:"id_enterprise" gorm:"column:id_enterprise"`
	Email          string           `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password       string           `json:"-" gorm:"size:255;not null"`
	DonationPeriod string           `json:"donation_period" gorm:"size:20;not null"`
	DonorType      string           `json:"donor_type" gorm:"size:1;not null"`
	Name           string           `json:"name" gorm:"size:100;not null"`
	Phone          string           `json:"phone" gorm:"size:20;uniqueIndex;not null"`
	SocialNetwork  *string          `json:"social_network" gorm:"size:50"`
	BirthDate      *time.Time       `json:"birth_date"`
	Enterprise     *DonorEnterprise `json:"donor_enterprise" gorm:"foreignKey:IDEnterprise;references:ID"`
}
