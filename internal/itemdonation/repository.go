package itemdonation

import "gorm.io/gorm"

// Repository define o acesso a dados para itens de doação
type Repository interface {
	ListAll(db *gorm.DB) ([]ItemDonation, error)
	ListByDonation(db *gorm.DB, idDonation int64) ([]ItemDonation, error)
	FindByKey(db *gorm.DB, idDonation, idProduct int64) (*ItemDonation, error)
	CountByKey(db *gorm.DB, idDonation, idProduct int64) (int64, error)
	Create(db *gorm.DB, i *ItemDonation) error
	UpdateByKey(db *gorm.DB, idDonation, idProduct int64, changes map[string]interface{}) error
	DeleteByKey(db *gorm.DB, idDonation, idProduct int64) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]ItemDonation, error) {
	var items []ItemDonation
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repositoryImpl) ListByDonation(db *gorm.DB, idDonation int64) ([]ItemDonation, error) {
	var items []ItemDonation
	if err := db.Where("id_donation = ?", idDonation).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repositoryImpl) FindByKey(db *gorm.DB, idDonation, idProduct int64) (*ItemDonation, error) {
	var i ItemDonation
	err := db.Where("id_donation = ? AND id_product = ?", idDonation, idProduct).First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repositoryImpl) CountByKey(db *gorm.DB, idDonation, idProduct int64) (int64, error) {
	var count int64
	err := db.Model(&ItemDonation{}).
		Where("id_donation = ? AND id_product = ?", idDonation, idProduct).
		Count(&count).Error
	return count, err
}

func (r *repositoryImpl) Create(db *gorm.DB, i *ItemDonation) error {
	return db.Create(i).Error
}

func (r *repositoryImpl) UpdateByKey(db *gorm.DB, idDonation, idProduct int64, changes map[string]interface{}) error {
	return db.Model(&ItemDonation{}).
		Where("id_donation = ? AND id_product = ?", idDonation, idProduct).
		Updates(changes).Error
}

func (r *repositoryImpl) DeleteByKey(db *gorm.DB, idDonation, idProduct int64) error {
	return db.Where("id_donation = ? AND id_product = ?", idDonation, idProduct).
		Delete(&ItemDonation{}).Error
}
