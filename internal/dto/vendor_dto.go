package dto

import "time"

type CreateVendorRequest struct {
	VendorName                             string     `json:"vendor_name" validate:"required,max=255"`
	VendorContactPerson                    string     `json:"vendor_contact_person" validate:"required,max=255"`
	VendorCountry                          string     `json:"vendor_country" validate:"required,max=100"`
	MaterialOutsourcingArrangement         string     `json:"material_outsourcing_arrangement" validate:"required,oneof=Yes No"`
	BankCustomer                           string     `json:"bank_customer" validate:"required"`
	CIF                                    *string    `json:"cif" validate:"omitempty,len=6,numeric"`
	DueDiligenceRequired                   string     `json:"due_diligence_required" validate:"required,oneof=Yes No"`
	LastDueDiligenceDate                   *time.Time `json:"last_due_diligence_date"`
	NextRequiredDueDiligenceDate           *time.Time `json:"next_required_due_diligence_date"`
	NextRequiredDueDiligenceAlertFrequency *string    `json:"next_required_due_diligence_alert_frequency"`
}

type VendorResponse struct {
	Id                             uint      `json:"id"`
	VendorID                       string    `json:"vendor_id"`
	VendorName                     string    `json:"vendor_name"`
	VendorContactPerson            string    `json:"vendor_contact_person"`
	VendorCountry                  string    `json:"vendor_country"`
	MaterialOutsourcingArrangement string    `json:"material_outsourcing_arrangement"`
	BankCustomer                   string    `json:"bank_customer"`
	CIF                            *string   `json:"cif"`
	DueDiligenceRequired           string    `json:"due_diligence_required"`
	Status                         string    `json:"status"`
	CreatedAt                      time.Time `json:"created_at"`
}
