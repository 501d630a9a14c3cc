package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/lifecycle"
	"contractdesk-be/internal/pkg/logger"
	"contractdesk-be/internal/repository/memory"
	"contractdesk-be/internal/repository/unitofwork"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testDate is the frozen clock for all service tests. Keeping the hour
// off midnight exercises the date-only normalization paths.
var testDate = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testDate }

func testLogger(t *testing.T) logger.ILogger {
	t.Helper()
	return logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
}

// fixture wires the in-memory store with one vendor and the three users
// every contract needs (owner, backup, manager) plus an admin.
type fixture struct {
	store   *memory.Store
	factory unitofwork.RepositoryFactory

	vendor  *entity.Vendor
	owner   *entity.User
	backup  *entity.User
	manager *entity.User
	admin   *entity.User

	contractSeq int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	factory := memory.NewFactory(store)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	f := &fixture{store: store, factory: factory}

	f.vendor = &entity.Vendor{
		VendorID:     "OB1",
		VendorName:   "Island Facilities NV",
		BankCustomer: constant.BankCustomerNone,
		Status:       "Active",
		CreatedAt:    testDate,
	}
	require.NoError(t, uow.VendorRepository().Create(ctx, f.vendor))

	seedUser := func(userID, first, last, email, role string) *entity.User {
		u := &entity.User{
			UserID:    userID,
			FirstName: first,
			LastName:  last,
			Email:     email,
			Role:      role,
			IsActive:  true,
			CreatedAt: testDate,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, u))
		return u
	}
	f.owner = seedUser("U1", "Alice", "Croes", "alice@bank.aw", constant.RoleContractManager)
	f.backup = seedUser("U2", "Bruno", "Kelly", "bruno@bank.aw", constant.RoleContractManagerBackup)
	f.manager = seedUser("U3", "Carla", "Tromp", "carla@bank.aw", constant.RoleContractManager)
	f.admin = seedUser("U4", "Diego", "Maduro", "diego@bank.aw", constant.RoleContractAdmin)

	return f
}

// seedContract inserts an Active contract expiring well past the frozen
// clock. mutate can adjust the row before it is stored.
func (f *fixture) seedContract(t *testing.T, mutate func(*entity.Contract)) *entity.Contract {
	t.Helper()

	f.contractSeq++
	c := &entity.Contract{
		// Offset past anything the identifier sequence will hand out,
		// so seeded rows never collide with service-created ones.
		ContractID:                fmt.Sprintf("CT%d", 100+f.contractSeq),
		VendorId:                  f.vendor.Id,
		Description:               "Facility maintenance services",
		Type:                      "Service Agreement",
		StartDate:                 testDate.AddDate(-1, 0, 0),
		EndDate:                   testDate.AddDate(1, 0, 0),
		AutomaticRenewal:          constant.AutomaticRenewalNo,
		Department:                "Operations",
		Amount:                    decimal.NewFromInt(12000),
		Currency:                  "AWG",
		PaymentMethod:             "Monthly",
		TerminationNoticePeriod:   "60 days",
		ExpirationNoticeFrequency: "Monthly",
		OwnerId:                   f.owner.Id,
		BackupId:                  f.backup.Id,
		ManagerId:                 f.manager.Id,
		Status:                    lifecycle.StatusActive,
		CreatedAt:                 testDate,
	}
	if mutate != nil {
		mutate(c)
	}

	ctx := context.Background()
	uow := f.factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.ContractRepository().Create(ctx, c))
	return c
}

func (f *fixture) findContract(t *testing.T, id uint) *entity.Contract {
	t.Helper()

	ctx := context.Background()
	c, err := f.factory.NewUnitOfWork(ctx).ContractRepository().FindById(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func strPtr(s string) *string { return &s }
