package product

// Product é cadastrado por outro sistema; aqui só consultamos e semeamos
type Product struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"size:100;not null"`
	Description *string `json:"description" gorm:"size:255"`
}
