package service

import (
	"context"
	"testing"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/lifecycle"
	"contractdesk-be/internal/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewDashboardService(f.factory, fixedClock)

	owned := f.seedContract(t, nil)
	expiring := f.seedContract(t, func(c *entity.Contract) {
		c.EndDate = dateOnly(testDate).AddDate(0, 0, 14)
	})
	expired := f.seedContract(t, func(c *entity.Contract) {
		c.Status = lifecycle.StatusExpired
		c.EndDate = testDate.AddDate(0, 0, -10)
	})
	// Backup assignments count as owned too.
	backedUp := f.seedContract(t, func(c *entity.Contract) {
		c.OwnerId = f.manager.Id
		c.BackupId = f.owner.Id
	})
	// Someone else's contract stays out of the owner's view.
	f.seedContract(t, func(c *entity.Contract) {
		c.OwnerId = f.manager.Id
		c.BackupId = f.backup.Id
	})

	res, err := svc.ManagerDashboard(ctx, f.owner.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 4, res.OwnedTotal)
	assert.EqualValues(t, 1, res.ExpiringSoon)
	assert.EqualValues(t, 1, res.Expired)
	require.Len(t, res.ExpiringList, 1)
	assert.Equal(t, expiring.ContractID, res.ExpiringList[0].ContractID)

	ids := make([]string, 0, len(res.OwnedContracts))
	for _, c := range res.OwnedContracts {
		ids = append(ids, c.ContractID)
	}
	assert.ElementsMatch(t, []string{owned.ContractID, expiring.ContractID, expired.ContractID, backedUp.ContractID}, ids)

	// The response is cached, so a contract added afterwards does not
	// show up until the entry expires.
	f.seedContract(t, nil)
	cached, err := svc.ManagerDashboard(ctx, f.owner.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 4, cached.OwnedTotal)
}

func TestAdminDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewDashboardService(f.factory, fixedClock)

	f.seedContract(t, func(c *entity.Contract) {
		c.EndDate = dateOnly(testDate).AddDate(0, 0, 20)
		c.Amount = decimal.NewFromInt(1000)
		c.Currency = "AWG"
	})
	f.seedContract(t, func(c *entity.Contract) {
		c.EndDate = dateOnly(testDate).AddDate(0, 0, 75)
		c.Amount = decimal.NewFromInt(2500)
		c.Currency = "USD"
		c.Department = "IT"
	})
	f.seedContract(t, func(c *entity.Contract) {
		c.Status = lifecycle.StatusTerminated
		c.Amount = decimal.NewFromInt(9999)
		c.Currency = "USD"
	})

	res, err := svc.AdminDashboard(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.TotalContracts)
	assert.EqualValues(t, 2, res.ByStatus[constant.ContractStatusActive])
	assert.EqualValues(t, 1, res.ByStatus[constant.ContractStatusTerminated])
	assert.EqualValues(t, 1, res.ByDepartment["IT"])
	assert.EqualValues(t, 1, res.Expiring30)
	assert.EqualValues(t, 2, res.Expiring90)

	// Terminated amounts stay out of the active value breakdown.
	assert.True(t, res.ValueByCurrency["AWG"].Equal(decimal.NewFromInt(1000)))
	assert.True(t, res.ValueByCurrency["USD"].Equal(decimal.NewFromInt(2500)))

	require.NotEmpty(t, res.RecentContracts)
}

func TestContractSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewDashboardService(f.factory, fixedClock)
	reviews := newReviewService(t, f)

	c := f.seedContract(t, nil)
	_, err := reviews.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionExtend})
	require.NoError(t, err)

	res, err := svc.ContractSummary(ctx, c.Id)
	require.NoError(t, err)
	require.NotNil(t, res.Contract)
	assert.Equal(t, c.ContractID, res.Contract.ContractID)
	require.NotNil(t, res.Vendor)
	assert.Equal(t, f.vendor.VendorName, res.Vendor.VendorName)
	require.Len(t, res.Updates, 1)
	assert.Equal(t, string(lifecycle.StagePendingAdminReview), res.WorkflowStage)

	_, err = svc.ContractSummary(ctx, 404)
	assert.True(t, apperr.IsNotFound(err))
}
