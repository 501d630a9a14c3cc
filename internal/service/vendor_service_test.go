package service

import (
	"context"
	"testing"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/pkg/apperr"
	"contractdesk-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVendorService() IVendorService {
	factory := memory.NewFactory(memory.NewStore())
	return NewVendorService(factory, NewIdentifierService(), fixedClock)
}

func createVendorRequest(name, bankCustomer string, cif *string) *dto.CreateVendorRequest {
	return &dto.CreateVendorRequest{
		VendorName:                     name,
		VendorContactPerson:            "R. Figaroa",
		VendorCountry:                  "Aruba",
		MaterialOutsourcingArrangement: "No",
		BankCustomer:                   bankCustomer,
		CIF:                            cif,
		DueDiligenceRequired:           "No",
	}
}

func TestVendorCreate(t *testing.T) {
	ctx := context.Background()
	svc := newVendorService()

	t.Run("aruba bank customers get the AB prefix", func(t *testing.T) {
		res, err := svc.Create(ctx, "Diego Maduro", createVendorRequest("Caribbean Cleaning", constant.BankCustomerAruba, strPtr("123456")))
		require.NoError(t, err)
		assert.Equal(t, "AB1", res.VendorID)
		assert.Equal(t, "Active", res.Status)
	})

	t.Run("other vendors get the OB prefix", func(t *testing.T) {
		res, err := svc.Create(ctx, "Diego Maduro", createVendorRequest("Orco Catering", constant.BankCustomerOrco, strPtr("654321")))
		require.NoError(t, err)
		assert.Equal(t, "OB1", res.VendorID)

		res, err = svc.Create(ctx, "Diego Maduro", createVendorRequest("Island Print Shop", constant.BankCustomerNone, nil))
		require.NoError(t, err)
		assert.Equal(t, "OB2", res.VendorID)
	})

	t.Run("cif must match the bank customer flag", func(t *testing.T) {
		_, err := svc.Create(ctx, "Diego Maduro", createVendorRequest("No CIF Bank", constant.BankCustomerAruba, nil))
		assert.True(t, apperr.IsValidation(err))

		_, err = svc.Create(ctx, "Diego Maduro", createVendorRequest("Stray CIF", constant.BankCustomerNone, strPtr("111111")))
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("vendor names are unique", func(t *testing.T) {
		_, err := svc.Create(ctx, "Diego Maduro", createVendorRequest("Caribbean Cleaning", constant.BankCustomerNone, nil))
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestVendorShowAndList(t *testing.T) {
	ctx := context.Background()
	svc := newVendorService()

	created, err := svc.Create(ctx, "Diego Maduro", createVendorRequest("Caribbean Cleaning", constant.BankCustomerNone, nil))
	require.NoError(t, err)

	got, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.VendorName, got.VendorName)

	_, err = svc.Show(ctx, 99)
	assert.True(t, apperr.IsNotFound(err))

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.VendorID, all[0].VendorID)
}
