package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"contractdesk-be/internal/bootstrap"
	"contractdesk-be/internal/config"
	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/model"
	"contractdesk-be/internal/pkg/serverutils"
	"contractdesk-be/internal/server"
	"contractdesk-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestContractLifecycleAPI exercises the create/extend/terminate flow
// over the real HTTP surface against a live database. It is skipped
// when DB_CONNECTION_STRING is not configured.
func TestContractLifecycleAPI(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration_secret")
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set; skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	require.NoError(t, err, "failed to connect to DB")
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Vendor{}, &model.Contract{},
		&model.ContractDocument{}, &model.TerminationDocument{},
		&model.ContractUpdate{}, &model.ContractEvent{}, &model.Sequence{},
	))

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// Seed an admin directly so the API login works.
	adminPass := "admin123!"
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashStr := string(hash)
	suffix := uuid.New().String()[:8]
	admin := &model.User{
		UserID:       "ITU-" + suffix,
		FirstName:    "Ivy",
		LastName:     "Admin",
		Email:        fmt.Sprintf("it-admin-%s@example.com", suffix),
		Department:   "Operations",
		Position:     "Administrator",
		Role:         "Contract Admin",
		IsActive:     true,
		PasswordHash: &hashStr,
	}
	require.NoError(t, db.Create(admin).Error)
	defer db.Delete(&model.User{}, admin.Id)

	token := login(t, app, admin.Email, adminPass)

	// Two more users so the contract can name distinct owner, backup
	// and manager.
	owner := createUser(t, app, token, fmt.Sprintf("it-owner-%s@example.com", suffix))
	defer db.Delete(&model.User{}, owner.Id)
	backup := createUser(t, app, token, fmt.Sprintf("it-backup-%s@example.com", suffix))
	defer db.Delete(&model.User{}, backup.Id)

	vendor := createVendor(t, app, token, "IT Vendor "+suffix)
	defer db.Delete(&model.Vendor{}, vendor.Id)

	// Create
	start := time.Now().UTC().Truncate(24 * time.Hour)
	createReq := dto.CreateContractRequest{
		VendorId:                  vendor.Id,
		ContractDescription:       "Integration test agreement " + suffix,
		ContractType:              "Service Agreement",
		StartDate:                 start,
		EndDate:                   start.AddDate(1, 0, 0),
		AutomaticRenewal:          "No",
		Department:                "Operations",
		ContractAmount:            decimal.NewFromInt(2500),
		ContractCurrency:          "AWG",
		PaymentMethod:             "Monthly",
		TerminationNoticePeriod:   "60 days",
		ExpirationNoticeFrequency: "Monthly",
		ContractOwnerId:           owner.Id,
		ContractOwnerBackupId:     backup.Id,
		ContractOwnerManagerId:    admin.Id,
	}
	var created serverutils.Response[dto.ContractResponse]
	doJSON(t, app, "POST", "/api/contract/v1", token, createReq, http.StatusOK, &created)
	require.True(t, created.Success)
	assert.True(t, strings.HasPrefix(created.Data.ContractID, "CT"))
	assert.Equal(t, "Active", created.Data.Status)
	assert.EqualValues(t, 1, created.Data.Version)
	defer db.Delete(&model.Contract{}, created.Data.Id)
	defer db.Where("contract_id = ?", created.Data.ContractID).Delete(&model.ContractEvent{})

	// Show by human id
	var shown serverutils.Response[dto.ContractResponse]
	doJSON(t, app, "GET", "/api/contract/v1/number/"+created.Data.ContractID, token, nil, http.StatusOK, &shown)
	assert.Equal(t, created.Data.Id, shown.Data.Id)

	// Extend
	extendReq := dto.ExtendContractRequest{NewEndDate: start.AddDate(2, 0, 0)}
	var extended serverutils.Response[dto.ContractResponse]
	doJSON(t, app, "POST", fmt.Sprintf("/api/contract/v1/%d/extend", created.Data.Id), token, extendReq, http.StatusOK, &extended)
	assert.Equal(t, "Active", extended.Data.Status)
	assert.True(t, extended.Data.EndDate.After(created.Data.EndDate))

	// An extension that does not move the date forward is a conflict.
	doJSON(t, app, "POST", fmt.Sprintf("/api/contract/v1/%d/extend", created.Data.Id), token, extendReq, http.StatusConflict, nil)

	// Park a termination, then cancel it.
	termReq := dto.SavePendingTerminationRequest{TerminationDate: start.AddDate(0, 1, 0)}
	var parked serverutils.Response[dto.ContractResponse]
	doJSON(t, app, "POST", fmt.Sprintf("/api/contract/v1/%d/termination", created.Data.Id), token, termReq, http.StatusOK, &parked)
	assert.Equal(t, constant.ContractStatusTerminationPending, parked.Data.Status)

	// Finalizing without the gating documents must be refused.
	doJSON(t, app, "POST", fmt.Sprintf("/api/contract/v1/%d/terminate", created.Data.Id), token, dto.TerminateContractRequest{}, http.StatusConflict, nil)

	var reinstated serverutils.Response[dto.ContractResponse]
	doJSON(t, app, "POST", fmt.Sprintf("/api/contract/v1/%d/cancel-termination", created.Data.Id), token, nil, http.StatusOK, &reinstated)
	assert.Equal(t, "Active", reinstated.Data.Status)
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	var res serverutils.Response[dto.LoginResponse]
	doJSON(t, app, "POST", "/api/auth/v1/login", "", dto.LoginRequest{Email: email, Password: password}, http.StatusOK, &res)
	require.NotEmpty(t, res.Data.Token, "login must return a token")
	return res.Data.Token
}

func createUser(t *testing.T, app *fiber.App, token, email string) *dto.UserResponse {
	t.Helper()

	pass := "manager123!"
	req := dto.CreateUserRequest{
		FirstName:  "Test",
		LastName:   "Manager",
		Email:      email,
		Department: "Operations",
		Position:   "Manager",
		Role:       "Contract Manager",
		Password:   &pass,
	}
	var res serverutils.Response[dto.UserResponse]
	doJSON(t, app, "POST", "/api/user/v1", token, req, http.StatusOK, &res)
	return &res.Data
}

func createVendor(t *testing.T, app *fiber.App, token, name string) *dto.VendorResponse {
	t.Helper()

	req := dto.CreateVendorRequest{
		VendorName:                     name,
		VendorContactPerson:            "Integration Bot",
		VendorCountry:                  "Aruba",
		MaterialOutsourcingArrangement: "No",
		BankCustomer:                   "None",
		DueDiligenceRequired:           "No",
	}
	var res serverutils.Response[dto.VendorResponse]
	doJSON(t, app, "POST", "/api/vendor/v1", token, req, http.StatusOK, &res)
	return &res.Data
}

// doJSON fires a request against the in-process app and decodes the
// envelope into out when the expected status arrives.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}, wantStatus int, out interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(payload))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, string(raw))
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out))
	}
}
