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

func newUserService() IUserService {
	factory := memory.NewFactory(memory.NewStore())
	return NewUserService(factory, NewIdentifierService(), fixedClock)
}

func createUserRequest(email string) *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		FirstName:  "Nadia",
		LastName:   "Wever",
		Email:      email,
		Department: "Legal",
		Position:   "Counsel",
		Role:       constant.RoleContractManager,
		Password:   strPtr("correct horse battery"),
	}
}

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	res, err := svc.Create(ctx, createUserRequest("nadia@bank.aw"))
	require.NoError(t, err)
	assert.Equal(t, "U1", res.UserID)
	assert.Equal(t, "Nadia Wever", res.FullName)
	assert.True(t, res.IsActive)

	second, err := svc.Create(ctx, createUserRequest("other@bank.aw"))
	require.NoError(t, err)
	assert.Equal(t, "U2", second.UserID)

	_, err = svc.Create(ctx, createUserRequest("nadia@bank.aw"))
	assert.True(t, apperr.IsValidation(err), "duplicate email must be rejected")
}

func TestUserShowAndList(t *testing.T) {
	ctx := context.Background()
	svc := newUserService()

	created, err := svc.Create(ctx, createUserRequest("nadia@bank.aw"))
	require.NoError(t, err)

	got, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	_, err = svc.Show(ctx, 99)
	assert.True(t, apperr.IsNotFound(err))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, created.UserID, active[0].UserID)
}
