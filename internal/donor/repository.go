package donor

import "gorm.io/gorm"

type Repository interface {
	ListAll(db *gorm.DB) ([]Donor, error)
	FindByID(db *gorm.DB, id int64) (*Donor, error)
	FindByEmail(db *gorm.DB, email string) (*Donor, error)
	CountByID(db *gorm.DB, id int64) (int64, error)
	CountByIDs(db *gorm.DB, ids []int64) (int64, error)
	CountByEmail(db *gorm.DB, email string) (int64, error)
	CountByPhone(db *gorm.DB, phone string) (int64, error)
	CountEnterpriseByCnpj(db *gorm.DB, cnpj string) (int64, error)
	Create(db *gorm.DB, d *Donor) error
	CreateEnterprise(db *gorm.DB, e *DonorEnterprise) error
	Save(db *gorm.DB, d *Donor) error
	SaveEnterprise(db *gorm.DB, e *DonorEnterprise) error
	DeleteByIDs(db *gorm.DB, ids []int64) (int64, error)
	DeleteByID(db *gorm.DB, id int64) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Donor, error) {
	var donors []Donor
	err := db.Preload("Enterprise").Find(&donors).Error
	return donors, err
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id int64) (*Donor, error) {
	var d Donor
	if err := db.Preload("Enterprise").First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*Donor, error) {
	var d Donor
	if err := db.Where("email = ?", email).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repositoryImpl) CountByID(db *gorm.DB, id int64) (int64, error) {
	var count int64
	err := db.Model(&Donor{}).Where("id = ?", id).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) CountByIDs(db *gorm.DB, ids []int64) (int64, error) {
	var count int64
	err := db.Model(&Donor{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) CountByEmail(db *gorm.DB, email string) (int64, error) {
	var count int64
	err := db.Model(&Donor{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) CountByPhone(db *gorm.DB, phone string) (int64, error) {
	var count int64
	err := db.Model(&Donor{}).Where("phone = ?", phone).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) CountEnterpriseByCnpj(db *gorm.DB, cnpj string) (int64, error) {
	var count int64
	err := db.Model(&DonorEnterprise{}).Where("cnpj = ?", cnpj).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) Create(db *gorm.DB, d *Donor) error {
	// a empresa é criada à parte; Omit evita o upsert da associação
	return db.Omit("Enterprise").Create(d).Error
}

func (r *repositoryImpl) CreateEnterprise(db *gorm.DB, e *DonorEnterprise) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) Save(db *gorm.DB, d *Donor) error {
	return db.Omit("Enterprise").Save(d).Error
}

func (r *repositoryImpl) SaveEnterprise(db *gorm.DB, e *DonorEnterprise) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) DeleteByIDs(db *gorm.DB, ids []int64) (int64, error) {
	result := db.Delete(&Donor{}, ids)
	return result.RowsAffected, result.Error
}

func (r *repositoryImpl) DeleteByID(db *gorm.DB, id int64) error {
	return db.Delete(&Donor{}, id).Error
}
