package product

import "gorm.io/gorm"

// Repository define o acesso a dados para produtos
type Repository interface {
	ListAll(db *gorm.DB) ([]Product, error)
	FindByID(db *gorm.DB, id int64) (*Product, error)
	CountByID(db *gorm.DB, id int64) (int64, error)
	Create(db *gorm.DB, p *Product) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Product, error) {
	var products []Product
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id int64) (*Product, error) {
	var p Product
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) CountByID(db *gorm.DB, id int64) (int64, error) {
	var count int64
	err := db.Model(&Product{}).Where("id = ?", id).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) Create(db *gorm.DB, p *Product) error {
	return db.Create(p).Error
}
