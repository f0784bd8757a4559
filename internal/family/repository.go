package family

import "gorm.io/gorm"

type Repository interface {
	ListAll(db *gorm.DB) ([]Family, error)
	FindByID(db *gorm.DB, id int64) (*Family, error)
	CountByID(db *gorm.DB, id int64) (int64, error)
	CountByIDs(db *gorm.DB, ids []int64) (int64, error)
	CountByEmail(db *gorm.DB, email string) (int64, error)
	CountByPhone(db *gorm.DB, phone string) (int64, error)
	Create(db *gorm.DB, f *Family) error
	Save(db *gorm.DB, f *Family) error
	DeleteByIDs(db *gorm.DB, ids []int64) (int64, error)
	DeleteByID(db *gorm.DB, id int64) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Family, error) {
	var families []Family
	err := db.Find(&families).Error
	return families, err
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id int64) (*Family, error) {
	var f Family
	if err := db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) CountByID(db *gorm.DB, id int64) (int64, error) {
	var count int64
	err := db.Model(&Family{}).Where("id = ?", id).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) CountByIDs(db *gorm.DB, ids []int64) (int64, error) {
	var count int64
	err := db.Model(&Family{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) CountByEmail(db *gorm.DB, email string) (int64, error) {
	var count int64
	err := db.Model(&Family{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) CountByPhone(db *gorm.DB, phone string) (int64, error) {
	var count int64
	err := db.Model(&Family{}).Where("phone = ?", phone).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) Create(db *gorm.DB, f *Family) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) Save(db *gorm.DB, f *Family) error {
	return db.Save(f).Error
}

func (r *repositoryImpl) DeleteByIDs(db *gorm.DB, ids []int64) (int64, error) {
	result := db.Delete(&Family{}, ids)
	return result.RowsAffected, result.Error
}

func (r *repositoryImpl) DeleteByID(db *gorm.DB, id int64) error {
	return db.Delete(&Family{}, id).Error
}
