package family

type Family struct {
	ID                    int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	FamilyName            string  `json:"family_name" gorm:"size:50;not null"`
	FamilyResponsibleName string  `json:"family_responsible_name" gorm:"size:50;not null"`
	NumberMembers         *int    `json:"number_members"`
	WithdrawDonations     bool    `json:"withdraw_donations" gorm:"not null"`
	Cep                   *string `json:"cep" gorm:"size:8"`
	City                  *string `json:"city" gorm:"size:60"`
	Street                *string `json:"street" gorm:"size:60"`
	HouseNumber           *string `json:"house_number" gorm:"size:6"`
	Neighborhood          *string `json:"neighborhood" gorm:"size:60"`
	Email                 string  `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone                 string  `json:"phone" gorm:"size:20;uniqueIndex;not null"`
}
