package constant

// Display labels are user-facing and stored verbatim in the database; the
// Termination Pending label deliberately contains an en dash.
const (
	ContractStatusActive             = "Active"
	ContractStatusExpired            = "Expired"
	ContractStatusTerminationPending = "Termination Pending – Documents Required"
	ContractStatusTerminated         = "Terminated"
)

const (
	TerminationYes = "Yes"
	TerminationNo  = "No"
)

const (
	AutomaticRenewalYes = "Yes"
	AutomaticRenewalNo  = "No"
)

const (
	DecisionExtend    = "Extend"
	DecisionRenew     = "Renew"
	DecisionTerminate = "Terminate"
)

// Review statuses for ContractUpdate rows.
const (
	UpdateStatusDraft         = "draft"
	UpdateStatusPendingReview = "pending_review"
	UpdateStatusReturned      = "returned"
	UpdateStatusUpdated       = "updated"
	UpdateStatusCompleted     = "completed"
)

const (
	RoleContractAdmin         = "Contract Admin"
	RoleContractManager       = "Contract Manager"
	RoleContractManagerBackup = "Contract Manager Backup"
	RoleContractManagerOwner  = "Contract Manager Owner"
)

// Sequence names for human-readable id generation.
const (
	SequenceContract    = "contract"
	SequenceUser        = "user"
	SequenceVendorAruba = "vendor_aruba"
	SequenceVendorOrco  = "vendor_orco"
)

const (
	ContractIDPrefix    = "CT"
	UserIDPrefix        = "U"
	VendorArubaIDPrefix = "AB"
	VendorOrcoIDPrefix  = "OB"
)

// SystemActor stamps audit fields for changes no user initiated (expiry sweep).
const SystemActor = "SYSTEM"

// Event types published on the contract events topic.
const (
	EventContractCreated    = "CONTRACT_CREATED"
	EventContractExtended   = "CONTRACT_EXTENDED"
	EventContractTerminated = "CONTRACT_TERMINATED"
	EventContractExpired    = "CONTRACT_EXPIRED"
	EventReviewReturned     = "REVIEW_RETURNED"
)

// Review horizons in days; overridable through config.
const (
	DefaultReviewHorizonDays    = 90
	DefaultAttentionHorizonDays = 30
)

var ContractTypes = []string{
	"Service Agreement",
	"Maintenance Contract",
	"Software License",
	"Consulting Agreement",
	"Support Contract",
	"Lease Agreement",
	"Purchase Agreement",
	"Non-Disclosure Agreement",
	"Partnership Agreement",
	"Outsourcing Agreement",
}

var Departments = []string{
	"Human Resources",
	"Finance",
	"IT",
	"Operations",
	"Legal",
	"Marketing",
	"Sales",
	"Customer Service",
	"Risk Management",
	"Compliance",
	"Audit",
	"Treasury",
	"Credit",
	"Retail Banking",
	"Corporate Banking",
}

var Currencies = []string{"AWG", "XCG", "USD", "EUR"}

var PaymentMethods = []string{"Invoice", "Standing Order"}

var RenewalPeriods = []string{"1 Year", "2 Years", "3 Years"}

var NoticePeriods = []string{
	"15 days",
	"30 days",
	"60 days",
	"90 days",
	"120 days",
	"365 days (1 year)",
}

const (
	BankCustomerAruba = "Aruba Bank"
	BankCustomerOrco  = "Orco Bank"
	BankCustomerNone  = "None"
)

var BankCustomers = []string{BankCustomerAruba, BankCustomerOrco, BankCustomerNone}
