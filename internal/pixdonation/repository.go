package pixdonation

import "gorm.io/gorm"

// Repository define o acesso a dados para o registro PIX
type Repository interface {
	Count(db *gorm.DB) (int64, error)
	CountByKey(db *gorm.DB, pixKey string) (int64, error)
	First(db *gorm.DB) (*PixDonation, error)
	Create(db *gorm.DB, p *PixDonation) error
	UpdateByKey(db *gorm.DB, pixKey string, changes map[string]interface{}) error
	DeleteAll(db *gorm.DB) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&PixDonation{}).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) CountByKey(db *gorm.DB, pixKey string) (int64, error) {
	var count int64
	err := db.Model(&PixDonation{}).Where("pix_key = ?", pixKey).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) First(db *gorm.DB) (*PixDonation, error) {
	var p PixDonation
	if err := db.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) UpdateByKey(db *gorm.DB, pixKey string, changes map[string]interface{}) error {
	return db.Model(&PixDonation{}).Where("pix_key = ?", pixKey).Updates(changes).Error
}

func (r *repositoryImpl) Create(db *gorm.DB, p *PixDonation) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) DeleteAll(db *gorm.DB) error {
	return db.Where("1 = 1").Delete(&PixDonation{}).Error
}
