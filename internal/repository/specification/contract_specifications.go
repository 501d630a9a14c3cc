package specification

import (
	"time"

	"contractdesk-be/internal/constant"

	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contracts.status = ?", s.Status)
}

type ByStatuses struct {
	Statuses []string
}

func (s ByStatuses) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contracts.status IN ?", s.Statuses)
}

type ByDepartment struct {
	Department string
}

func (s ByDepartment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contracts.department = ?", s.Department)
}

type ByVendorID struct {
	VendorId uint
}

func (s ByVendorID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contracts.vendor_id = ?", s.VendorId)
}

type ByOwner struct {
	OwnerId uint
}

func (s ByOwner) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contracts.contract_owner_id = ? OR contracts.contract_owner_backup_id = ?", s.OwnerId, s.OwnerId)
}

type EndDateBefore struct {
	Cutoff time.Time
}

func (s EndDateBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contracts.end_date < ?", s.Cutoff)
}

type EndDateAtOrBefore struct {
	Cutoff time.Time
}

func (s EndDateAtOrBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contracts.end_date <= ?", s.Cutoff)
}

type EndDateBetween struct {
	From time.Time
	To   time.Time
}

func (s EndDateBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contracts.end_date >= ? AND contracts.end_date <= ?", s.From, s.To)
}

// SearchContracts matches contract id, description or vendor name.
type SearchContracts struct {
	Term string
}

func (s SearchContracts) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.
		Joins("JOIN vendors ON vendors.id = contracts.vendor_id").
		Where("contracts.contract_id ILIKE ? OR contracts.contract_description ILIKE ? OR vendors.vendor_name ILIKE ?",
			pattern, pattern, pattern)
}

// WithoutDocuments keeps contracts with zero contract_documents rows.
type WithoutDocuments struct{}

func (s WithoutDocuments) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("NOT EXISTS (SELECT 1 FROM contract_documents cd WHERE cd.contract_id = contracts.id)")
}

// WithoutNonDraftUpdate keeps contracts nobody has acted upon yet.
type WithoutNonDraftUpdate struct{}

func (s WithoutNonDraftUpdate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("NOT EXISTS (SELECT 1 FROM contract_updates cu WHERE cu.contract_id = contracts.id AND cu.status <> ?)", constant.UpdateStatusDraft)
}
