package dto

import "github.com/shopspring/decimal"

type ManagerDashboardResponse struct {
	OwnedTotal     int64               `json:"owned_total"`
	ExpiringSoon   int64               `json:"expiring_soon"`
	Expired        int64               `json:"expired"`
	OwnedContracts []*ContractResponse `json:"owned_contracts"`
	ExpiringList   []*ContractResponse `json:"expiring_list"`
}

type AdminDashboardResponse struct {
	ByStatus        map[string]int64           `json:"by_status"`
	ByDepartment    map[string]int64           `json:"by_department"`
	ValueByCurrency map[string]decimal.Decimal `json:"value_by_currency"`
	Expiring30      int64                      `json:"expiring_30"`
	Expiring60      int64                      `json:"expiring_60"`
	Expiring90      int64                      `json:"expiring_90"`
	TotalContracts  int64                      `json:"total_contracts"`
	RecentContracts []*ContractResponse        `json:"recent_contracts"`
}

type ContractSummaryResponse struct {
	Contract             *ContractResponse              `json:"contract"`
	Vendor               *VendorResponse                `json:"vendor"`
	Documents            []*ContractDocumentResponse    `json:"documents"`
	TerminationDocuments []*TerminationDocumentResponse `json:"termination_documents"`
	Updates              []*ContractUpdateResponse      `json:"updates"`
	WorkflowStage        string                         `json:"workflow_stage"`
}
