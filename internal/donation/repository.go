package donation

import "gorm.io/gorm"

// Repository define o acesso a dados para doações
type Repository interface {
	ListAll(db *gorm.DB) ([]Donation, error)
	ListToReceive(db *gorm.DB) ([]Donation, error)
	FindByID(db *gorm.DB, id int64) (*Donation, error)
	CountByID(db *gorm.DB, id int64) (int64, error)
	CountByIDs(db *gorm.DB, ids []int64) (int64, error)
	Create(db *gorm.DB, d *Donation) error
	Save(db *gorm.DB, d *Donation) error
	DeleteByIDs(db *gorm.DB, ids []int64) (int64, error)
	DeleteByID(db *gorm.DB, id int64) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Donation, error) {
	var donations []Donation
	if err := db.Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *repositoryImpl) ListToReceive(db *gorm.DB) ([]Donation, error) {
	var donations []Donation
	if err := db.Where("donation_received = ?", false).Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id int64) (*Donation, error) {
	var d Donation
	if err := db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repositoryImpl) CountByID(db *gorm.DB, id int64) (int64, error) {
	var count int64
	err := db.Model(&Donation{}).Where("id = ?", id).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) CountByIDs(db *gorm.DB, ids []int64) (int64, error) {
	var count int64
	err := db.Model(&Donation{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) Create(db *gorm.DB, d *Donation) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) Save(db *gorm.DB, d *Donation) error {
	return db.Save(d).Error
}

func (r *repositoryImpl) DeleteByIDs(db *gorm.DB, ids []int64) (int64, error) {
	result := db.Where("id IN ?", ids).Delete(&Donation{})
	return result.RowsAffected, result.Error
}

func (r *repositoryImpl) DeleteByID(db *gorm.DB, id int64) error {
	return db.Delete(&Donation{}, id).Error
}
