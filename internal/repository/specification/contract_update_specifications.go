package specification

import "gorm.io/gorm"

type UpdatesByContractID struct {
	ContractId uint
}

func (s UpdatesByContractID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contract_updates.contract_id = ?", s.ContractId)
}

type UpdatesByStatus struct {
	Status string
}

func (s UpdatesByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contract_updates.status = ?", s.Status)
}

// NeverReturned keeps first-time submissions only.
type NeverReturned struct{}

func (s NeverReturned) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contract_updates.returned_date IS NULL")
}
