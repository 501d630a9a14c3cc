package constant

const (
	// PDFContentType is the only content type accepted for uploads.
	PDFContentType = "application/pdf"

	// ContractUploadsDir is the root of the per-contract document namespace.
	ContractUploadsDir = "uploads/contracts"

	DocumentKindContract    = "contract"
	DocumentKindTermination = "termination"

	TerminationLetterName = "Termination Letter"
	FinalInvoiceName      = "Final Invoice"
)

// DocumentNamePattern is the allowed character set for user-supplied display
// names, applied after trimming.
const DocumentNamePattern = `^[a-zA-Z0-9\-|&\s]+$`
