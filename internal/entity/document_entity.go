package entity

import "time"

// ContractDocument is a file attached to a contract during its normal
// lifecycle. The display name and signed date are user supplied; file
// metadata comes from the upload.
type ContractDocument struct {
	Id                 uint
	ContractId         uint
	FileName           string
	CustomDocumentName string
	DocumentSignedDate time.Time
	FilePath           string
	FileSize           int64
	ContentType        string
	CreatedAt          time.Time
}

// TerminationDocument is a file attached while the contract waits in the
// termination pipeline. Rows are independent of ContractDocument even when
// created by cloning one.
type TerminationDocument struct {
	Id           uint
	ContractId   uint
	FileName     string
	DocumentName string
	DocumentDate time.Time
	FilePath     string
	FileSize     int64
	ContentType  string
	CreatedAt    time.Time
}
