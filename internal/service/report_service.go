package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/entity"
	contractrepo "contractdesk-be/internal/repository/contract"
	"contractdesk-be/internal/repository/unitofwork"

	"github.com/xuri/excelize/v2"
)

// IReportService renders admin-only Excel exports.
type IReportService interface {
	ContractRegister(ctx context.Context) (*bytes.Buffer, error)
	MonetaryValueReport(ctx context.Context) (*bytes.Buffer, error)
	MOAReport(ctx context.Context) (*bytes.Buffer, error)
	DueDiligenceReport(ctx context.Context) (*bytes.Buffer, error)
}

type reportService struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewReportService(uowFactory unitofwork.RepositoryFactory, now func() time.Time) IReportService {
	if now == nil {
		now = time.Now
	}
	return &reportService{
		uowFactory: uowFactory,
		now:        now,
	}
}

var registerHeaders = []string{
	"Contract ID", "Vendor ID", "Description", "Type", "Start Date", "End Date",
	"Automatic Renewal", "Renewal Period", "Department", "Amount", "Currency",
	"Payment Method", "Termination Notice", "Expiration Notice", "Status",
	"Termination Date", "Last Modified By",
}

// ContractRegister renders every contract on a single sheet, one row
// per contract.
func (s *reportService) ContractRegister(ctx context.Context) (*bytes.Buffer, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contracts, _, err := uow.ContractRepository().FindAll(ctx, contractrepo.ContractFilter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Contract Register"
	f.SetSheetName(f.GetSheetName(0), sheet)
	for i, h := range registerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, c := range contracts {
		renewalPeriod := ""
		if c.RenewalPeriod != nil {
			renewalPeriod = *c.RenewalPeriod
		}
		terminationDate := ""
		if c.TerminationDate != nil {
			terminationDate = c.TerminationDate.Format("2006-01-02")
		}
		modifiedBy := ""
		if c.LastModifiedBy != nil {
			modifiedBy = *c.LastModifiedBy
		}
		values := []interface{}{
			c.ContractID, c.VendorId, c.Description, c.Type,
			c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02"),
			c.AutomaticRenewal, renewalPeriod, c.Department,
			c.Amount.String(), c.Currency, c.PaymentMethod,
			c.TerminationNoticePeriod, c.ExpirationNoticeFrequency,
			string(c.Status), terminationDate, modifiedBy,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f.WriteToBuffer()
}

// MonetaryValueReport breaks the active contract value down by currency
// and by department on two sheets.
func (s *reportService) MonetaryValueReport(ctx context.Context) (*bytes.Buffer, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	byCurrency, err := uow.ContractRepository().SumAmountByCurrency(ctx, true)
	if err != nil {
		return nil, err
	}
	byDepartment, err := uow.ContractRepository().CountByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	currencySheet := "Value by Currency"
	f.SetSheetName(f.GetSheetName(0), currencySheet)
	f.SetCellValue(currencySheet, "A1", "Currency")
	f.SetCellValue(currencySheet, "B1", "Active Contract Value")
	row := 2
	for currency, total := range byCurrency {
		f.SetCellValue(currencySheet, fmt.Sprintf("A%d", row), currency)
		f.SetCellValue(currencySheet, fmt.Sprintf("B%d", row), total.String())
		row++
	}

	departmentSheet := "Contracts by Department"
	if _, err := f.NewSheet(departmentSheet); err != nil {
		return nil, err
	}
	f.SetCellValue(departmentSheet, "A1", "Department")
	f.SetCellValue(departmentSheet, "B1", "Contracts")
	row = 2
	for department, count := range byDepartment {
		f.SetCellValue(departmentSheet, fmt.Sprintf("A%d", row), department)
		f.SetCellValue(departmentSheet, fmt.Sprintf("B%d", row), count)
		row++
	}

	return f.WriteToBuffer()
}

var moaHeaders = []string{
	"Contract ID", "Contract Type", "Description", "Vendor", "Start Date",
	"End Date", "Department", "Contract Manager", "Contract Backups",
}

// MOAReport lists active contracts whose vendor carries a material
// outsourcing arrangement.
func (s *reportService) MOAReport(ctx context.Context) (*bytes.Buffer, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	active := constant.ContractStatusActive
	contracts, _, err := uow.ContractRepository().FindAll(ctx, contractrepo.ContractFilter{Status: &active})
	if err != nil {
		return nil, err
	}
	vendors, err := uow.VendorRepository().ListAll(ctx, false)
	if err != nil {
		return nil, err
	}
	vendorById := make(map[uint]*entity.Vendor, len(vendors))
	for _, v := range vendors {
		vendorById[v.Id] = v
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "MOA Contracts"
	f.SetSheetName(f.GetSheetName(0), sheet)
	for i, h := range moaHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	names := make(map[uint]string)
	row := 2
	for _, c := range contracts {
		v := vendorById[c.VendorId]
		if v == nil || v.MaterialOutsourcingArrangement != "Yes" {
			continue
		}
		values := []interface{}{
			c.ContractID, c.Type, c.Description, v.VendorName,
			c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02"),
			c.Department,
			s.userName(ctx, uow, names, c.OwnerId),
			s.userName(ctx, uow, names, c.BackupId),
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, val)
		}
		row++
	}

	return f.WriteToBuffer()
}

var dueDiligenceHeaders = []string{
	"Vendor", "Vendor ID", "Last Due Diligence Date",
	"Next Required Due Diligence Date", "Days Past Due",
	"Contract Manager", "Contract Backups",
}

// DueDiligenceReport lists every active vendor with its due diligence
// dates and the managers of its active contracts. Days past due counts
// whole days between the next required date and the current date.
func (s *reportService) DueDiligenceReport(ctx context.Context) (*bytes.Buffer, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	vendors, err := uow.VendorRepository().ListAll(ctx, true)
	if err != nil {
		return nil, err
	}
	active := constant.ContractStatusActive
	contracts, _, err := uow.ContractRepository().FindAll(ctx, contractrepo.ContractFilter{Status: &active})
	if err != nil {
		return nil, err
	}
	byVendor := make(map[uint][]*entity.Contract)
	for _, c := range contracts {
		byVendor[c.VendorId] = append(byVendor[c.VendorId], c)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Due Diligence Report"
	f.SetSheetName(f.GetSheetName(0), sheet)
	for i, h := range dueDiligenceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	today := dateOnly(s.now().UTC())
	names := make(map[uint]string)
	for row, v := range vendors {
		lastDD := "N/A"
		if v.LastDueDiligenceDate != nil {
			lastDD = v.LastDueDiligenceDate.Format("2006-01-02")
		}
		nextDD := "N/A"
		daysPastDue := 0
		if v.NextRequiredDueDiligenceDate != nil {
			next := dateOnly(*v.NextRequiredDueDiligenceDate)
			nextDD = next.Format("2006-01-02")
			if next.Before(today) {
				daysPastDue = int(today.Sub(next).Hours() / 24)
			}
		}

		managers := make(map[string]bool)
		backups := make(map[string]bool)
		for _, c := range byVendor[v.Id] {
			if name := s.userName(ctx, uow, names, c.OwnerId); name != "" {
				managers[name] = true
			}
			if name := s.userName(ctx, uow, names, c.BackupId); name != "" {
				backups[name] = true
			}
		}

		values := []interface{}{
			v.VendorName, v.VendorID, lastDD, nextDD, daysPastDue,
			joinNames(managers), joinNames(backups),
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, val)
		}
	}

	return f.WriteToBuffer()
}

func (s *reportService) userName(ctx context.Context, uow unitofwork.UnitOfWork, cache map[uint]string, id uint) string {
	if name, ok := cache[id]; ok {
		return name
	}
	u, err := uow.UserRepository().FindById(ctx, id)
	if err != nil || u == nil {
		cache[id] = ""
		return ""
	}
	cache[id] = u.FullName()
	return cache[id]
}

func joinNames(set map[string]bool) string {
	if len(set) == 0 {
		return "N/A"
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
