package service

import (
	"bytes"
	"context"
	"testing"

	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openSheet(t *testing.T, buf *bytes.Buffer, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func (f *fixture) seedVendor(t *testing.T, mutate func(*entity.Vendor)) *entity.Vendor {
	t.Helper()

	v := &entity.Vendor{
		VendorID:                       "OB99",
		VendorName:                     "Caribbean Data Services",
		MaterialOutsourcingArrangement: "No",
		BankCustomer:                   "None",
		DueDiligenceRequired:           "No",
		Status:                         "Active",
		CreatedAt:                      testDate,
	}
	if mutate != nil {
		mutate(v)
	}

	ctx := context.Background()
	require.NoError(t, f.factory.NewUnitOfWork(ctx).VendorRepository().Create(ctx, v))
	return v
}

func TestContractRegisterReport(t *testing.T) {
	f := newFixture(t)
	c := f.seedContract(t, nil)
	svc := NewReportService(f.factory, fixedClock)

	buf, err := svc.ContractRegister(context.Background())
	require.NoError(t, err)

	rows := openSheet(t, buf, "Contract Register")
	require.Len(t, rows, 2)
	assert.Equal(t, "Contract ID", rows[0][0])
	assert.Equal(t, c.ContractID, rows[1][0])
}

func TestMOAReport(t *testing.T) {
	f := newFixture(t)
	svc := NewReportService(f.factory, fixedClock)

	moaVendor := f.seedVendor(t, func(v *entity.Vendor) {
		v.VendorID = "AB7"
		v.VendorName = "Island Outsourcing NV"
		v.MaterialOutsourcingArrangement = "Yes"
	})

	// Active contract with a non-MOA vendor stays out of the report.
	f.seedContract(t, nil)
	included := f.seedContract(t, func(c *entity.Contract) {
		c.VendorId = moaVendor.Id
	})
	// Expired MOA contract stays out: the report covers active ones only.
	f.seedContract(t, func(c *entity.Contract) {
		c.VendorId = moaVendor.Id
		c.Status = lifecycle.StatusExpired
		c.EndDate = testDate.AddDate(0, -1, 0)
	})

	buf, err := svc.MOAReport(context.Background())
	require.NoError(t, err)

	rows := openSheet(t, buf, "MOA Contracts")
	require.Len(t, rows, 2)
	assert.Equal(t, "Contract ID", rows[0][0])
	assert.Equal(t, included.ContractID, rows[1][0])
	assert.Equal(t, "Island Outsourcing NV", rows[1][3])
	assert.Equal(t, "Alice Croes", rows[1][7])
	assert.Equal(t, "Bruno Kelly", rows[1][8])
}

func TestDueDiligenceReport(t *testing.T) {
	f := newFixture(t)
	svc := NewReportService(f.factory, fixedClock)

	last := testDate.AddDate(-1, 0, 0)
	next := testDate.AddDate(0, 0, -10)
	dueVendor := f.seedVendor(t, func(v *entity.Vendor) {
		v.VendorID = "AB8"
		v.VendorName = "Due Diligence Partners"
		v.DueDiligenceRequired = "Yes"
		v.LastDueDiligenceDate = &last
		v.NextRequiredDueDiligenceDate = &next
	})
	f.seedVendor(t, func(v *entity.Vendor) {
		v.VendorID = "AB9"
		v.VendorName = "Former Supplier"
		v.Status = "Inactive"
	})
	f.seedContract(t, func(c *entity.Contract) {
		c.VendorId = dueVendor.Id
	})

	buf, err := svc.DueDiligenceReport(context.Background())
	require.NoError(t, err)

	rows := openSheet(t, buf, "Due Diligence Report")
	// Header, the fixture vendor and the due-diligence vendor; the
	// inactive vendor is excluded.
	require.Len(t, rows, 3)
	assert.Equal(t, "Vendor", rows[0][0])

	var due, fixtureRow []string
	for _, row := range rows[1:] {
		switch row[1] {
		case "AB8":
			due = row
		case f.vendor.VendorID:
			fixtureRow = row
		}
	}
	require.NotNil(t, due)
	require.NotNil(t, fixtureRow)

	assert.Equal(t, last.Format("2006-01-02"), due[2])
	assert.Equal(t, next.Format("2006-01-02"), due[3])
	assert.Equal(t, "10", due[4])
	assert.Equal(t, "Alice Croes", due[5])
	assert.Equal(t, "Bruno Kelly", due[6])

	// Vendors without due diligence dates or active contracts render N/A.
	assert.Equal(t, "N/A", fixtureRow[2])
	assert.Equal(t, "N/A", fixtureRow[3])
}

func TestDueDiligenceNotYetDue(t *testing.T) {
	f := newFixture(t)
	svc := NewReportService(f.factory, fixedClock)

	next := testDate.AddDate(0, 1, 0)
	f.seedVendor(t, func(v *entity.Vendor) {
		v.VendorID = "AB10"
		v.DueDiligenceRequired = "Yes"
		v.NextRequiredDueDiligenceDate = &next
	})

	buf, err := svc.DueDiligenceReport(context.Background())
	require.NoError(t, err)

	rows := openSheet(t, buf, "Due Diligence Report")
	for _, row := range rows[1:] {
		if row[1] == "AB10" {
			assert.Equal(t, "0", row[4])
			return
		}
	}
	t.Fatal("expected vendor AB10 in the report")
}
