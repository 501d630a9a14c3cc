package service

import (
	"context"
	"encoding/json"
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

func newContractService(t *testing.T, f *fixture) IContractService {
	t.Helper()
	return NewContractService(f.factory, NewIdentifierService(), nil, testLogger(t), fixedClock)
}

func validCreateRequest(f *fixture) *dto.CreateContractRequest {
	return &dto.CreateContractRequest{
		VendorId:                  f.vendor.Id,
		ContractDescription:       "Core banking platform license",
		ContractType:              "Software License",
		StartDate:                 testDate,
		EndDate:                   testDate.AddDate(1, 0, 0),
		AutomaticRenewal:          constant.AutomaticRenewalNo,
		Department:                "IT",
		ContractAmount:            decimal.NewFromInt(50000),
		ContractCurrency:          "USD",
		PaymentMethod:             "Annually",
		TerminationNoticePeriod:   "90 days",
		ExpirationNoticeFrequency: "Monthly",
		ContractOwnerId:           f.owner.Id,
		ContractOwnerBackupId:     f.backup.Id,
		ContractOwnerManagerId:    f.manager.Id,
	}
}

func TestContractCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential ids and starts active", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)

		first, err := svc.Create(ctx, "Alice Croes", validCreateRequest(f))
		require.NoError(t, err)
		assert.Equal(t, "CT1", first.ContractID)
		assert.Equal(t, constant.ContractStatusActive, first.Status)
		assert.EqualValues(t, 1, first.Version)
		require.NotNil(t, first.LastModifiedBy)
		assert.Equal(t, "Alice Croes", *first.LastModifiedBy)

		second, err := svc.Create(ctx, "Alice Croes", validCreateRequest(f))
		require.NoError(t, err)
		assert.Equal(t, "CT2", second.ContractID)
	})

	t.Run("field validation", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)

		tests := []struct {
			name   string
			mutate func(*dto.CreateContractRequest)
		}{
			{"blank description", func(r *dto.CreateContractRequest) { r.ContractDescription = "   " }},
			{"description with illegal characters", func(r *dto.CreateContractRequest) { r.ContractDescription = "License <script>" }},
			{"end date equals start date", func(r *dto.CreateContractRequest) { r.EndDate = r.StartDate }},
			{"end date before start date", func(r *dto.CreateContractRequest) { r.EndDate = r.StartDate.AddDate(0, -1, 0) }},
			{"renewal Yes without period", func(r *dto.CreateContractRequest) { r.AutomaticRenewal = constant.AutomaticRenewalYes; r.RenewalPeriod = nil }},
			{"renewal No with period", func(r *dto.CreateContractRequest) { r.RenewalPeriod = strPtr("1 year") }},
			{"zero amount", func(r *dto.CreateContractRequest) { r.ContractAmount = decimal.Zero }},
			{"negative amount", func(r *dto.CreateContractRequest) { r.ContractAmount = decimal.NewFromInt(-5) }},
			{"backup equals owner", func(r *dto.CreateContractRequest) { r.ContractOwnerBackupId = r.ContractOwnerId }},
			{"manager equals owner", func(r *dto.CreateContractRequest) { r.ContractOwnerManagerId = r.ContractOwnerId }},
			{"manager equals backup", func(r *dto.CreateContractRequest) { r.ContractOwnerManagerId = r.ContractOwnerBackupId }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validCreateRequest(f)
				tt.mutate(req)
				_, err := svc.Create(ctx, "Alice Croes", req)
				assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
			})
		}
	})

	t.Run("description allows the documented special characters", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)

		req := validCreateRequest(f)
		req.ContractDescription = "Cleaning (building A) - 50% share / wing B & C: #2"
		_, err := svc.Create(ctx, "Alice Croes", req)
		assert.NoError(t, err)
	})

	t.Run("unknown vendor and users", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)

		req := validCreateRequest(f)
		req.VendorId = 99
		_, err := svc.Create(ctx, "Alice Croes", req)
		assert.True(t, apperr.IsNotFound(err))

		req = validCreateRequest(f)
		req.ContractOwnerId = 42
		_, err = svc.Create(ctx, "Alice Croes", req)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("renewal Yes requires a period and accepts one", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)

		req := validCreateRequest(f)
		req.AutomaticRenewal = constant.AutomaticRenewalYes
		req.RenewalPeriod = strPtr("1 year")
		res, err := svc.Create(ctx, "Alice Croes", req)
		require.NoError(t, err)
		require.NotNil(t, res.RenewalPeriod)
		assert.Equal(t, "1 year", *res.RenewalPeriod)
	})
}

func TestContractShowAndList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := newContractService(t, f)

	c := f.seedContract(t, nil)
	f.seedContract(t, func(c *entity.Contract) {
		c.Department = "IT"
		c.Description = "Network monitoring"
	})

	t.Run("show by numeric id", func(t *testing.T) {
		got, err := svc.Show(ctx, c.Id)
		require.NoError(t, err)
		assert.Equal(t, c.ContractID, got.ContractID)

		_, err = svc.Show(ctx, 99)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("show by contract id", func(t *testing.T) {
		got, err := svc.ShowByContractID(ctx, c.ContractID)
		require.NoError(t, err)
		assert.Equal(t, c.Id, got.Id)

		_, err = svc.ShowByContractID(ctx, "CT404")
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("list filters by department", func(t *testing.T) {
		dept := "IT"
		res, err := svc.List(ctx, &dto.ContractFilterRequest{Department: &dept})
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.Total)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Network monitoring", res.Items[0].ContractDescription)
	})

	t.Run("list searches description", func(t *testing.T) {
		term := "monitoring"
		res, err := svc.List(ctx, &dto.ContractFilterRequest{Search: &term})
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.Total)
	})
}

func TestContractSweepExpired(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := newContractService(t, f)

	past := f.seedContract(t, func(c *entity.Contract) {
		c.EndDate = testDate.AddDate(0, 0, -1)
	})
	// Ends today, sweep must leave it alone until tomorrow.
	today := f.seedContract(t, func(c *entity.Contract) {
		c.EndDate = dateOnly(testDate)
	})
	future := f.seedContract(t, nil)
	terminated := f.seedContract(t, func(c *entity.Contract) {
		c.EndDate = testDate.AddDate(0, 0, -30)
		c.Status = lifecycle.StatusTerminated
	})

	res, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Transitioned)
	assert.Equal(t, []string{past.ContractID}, res.ContractIDs)

	swept := f.findContract(t, past.Id)
	assert.Equal(t, lifecycle.StatusExpired, swept.Status)
	require.NotNil(t, swept.LastModifiedBy)
	assert.Equal(t, constant.SystemActor, *swept.LastModifiedBy)

	assert.Equal(t, lifecycle.StatusActive, f.findContract(t, today.Id).Status)
	assert.Equal(t, lifecycle.StatusActive, f.findContract(t, future.Id).Status)
	assert.Equal(t, lifecycle.StatusTerminated, f.findContract(t, terminated.Id).Status)

	// A second run with the same clock finds nothing.
	res, err = svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Transitioned)
	assert.Empty(t, res.ContractIDs)
}

func TestContractExtend(t *testing.T) {
	ctx := context.Background()

	t.Run("pushes the end date forward", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		c := f.seedContract(t, nil)

		newEnd := c.EndDate.AddDate(1, 0, 0)
		res, err := svc.Extend(ctx, "Diego Maduro", &dto.ExtendContractRequest{Id: c.Id, NewEndDate: newEnd})
		require.NoError(t, err)
		assert.Equal(t, constant.ContractStatusActive, res.Status)
		assert.True(t, res.EndDate.Equal(dateOnly(newEnd)))
	})

	t.Run("rejects a date at or before the current end", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		c := f.seedContract(t, nil)

		_, err := svc.Extend(ctx, "Diego Maduro", &dto.ExtendContractRequest{Id: c.Id, NewEndDate: c.EndDate})
		assert.True(t, apperr.IsStateConflict(err))

		_, err = svc.Extend(ctx, "Diego Maduro", &dto.ExtendContractRequest{Id: c.Id, NewEndDate: c.EndDate.AddDate(0, 0, -5)})
		assert.True(t, apperr.IsStateConflict(err))
	})

	t.Run("reinstates an expired contract", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		c := f.seedContract(t, func(c *entity.Contract) {
			c.Status = lifecycle.StatusExpired
			c.EndDate = testDate.AddDate(0, 0, -10)
		})

		res, err := svc.Extend(ctx, "Diego Maduro", &dto.ExtendContractRequest{Id: c.Id, NewEndDate: testDate.AddDate(1, 0, 0)})
		require.NoError(t, err)
		assert.Equal(t, constant.ContractStatusActive, res.Status)
	})

	t.Run("completes the open review", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		c := f.seedContract(t, nil)

		uow := f.factory.NewUnitOfWork(ctx)
		decision := constant.DecisionExtend
		update := &entity.ContractUpdate{
			ContractId: c.Id,
			Status:     constant.UpdateStatusPendingReview,
			Decision:   &decision,
			CreatedAt:  testDate,
		}
		require.NoError(t, uow.ContractUpdateRepository().Create(ctx, update))

		_, err := svc.Extend(ctx, "Diego Maduro", &dto.ExtendContractRequest{Id: c.Id, NewEndDate: c.EndDate.AddDate(0, 6, 0)})
		require.NoError(t, err)

		stored, err := uow.ContractUpdateRepository().FindById(ctx, update.Id)
		require.NoError(t, err)
		assert.Equal(t, constant.UpdateStatusCompleted, stored.Status)
	})

	t.Run("terminated contracts cannot be extended", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		c := f.seedContract(t, func(c *entity.Contract) {
			c.Status = lifecycle.StatusTerminated
		})

		_, err := svc.Extend(ctx, "Diego Maduro", &dto.ExtendContractRequest{Id: c.Id, NewEndDate: c.EndDate.AddDate(1, 0, 0)})
		assert.True(t, apperr.IsStateConflict(err))
	})
}

func seedTerminationDoc(t *testing.T, f *fixture, contractId uint, name, contentType string) {
	t.Helper()

	ctx := context.Background()
	uow := f.factory.NewUnitOfWork(ctx)
	doc := &entity.TerminationDocument{
		ContractId:   contractId,
		FileName:     name + ".pdf",
		DocumentName: name,
		DocumentDate: dateOnly(testDate),
		FilePath:     "uploads/test/" + name + ".pdf",
		ContentType:  contentType,
		CreatedAt:    testDate,
	}
	require.NoError(t, uow.TerminationDocumentRepository().Create(ctx, doc))
}

func TestContractTermination(t *testing.T) {
	ctx := context.Background()

	t.Run("save pending parks the contract", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		c := f.seedContract(t, nil)

		termDate := testDate.AddDate(0, 1, 0)
		res, err := svc.SavePendingTermination(ctx, "Diego Maduro", &dto.SavePendingTerminationRequest{Id: c.Id, TerminationDate: termDate})
		require.NoError(t, err)
		assert.Equal(t, constant.ContractStatusTerminationPending, res.Status)
		require.NotNil(t, res.Termination)
		assert.Equal(t, constant.TerminationYes, *res.Termination)
		require.NotNil(t, res.TerminationDate)
		assert.True(t, res.TerminationDate.Equal(dateOnly(termDate)))
	})

	t.Run("terminate requires both gating documents", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		c := f.seedContract(t, func(c *entity.Contract) {
			c.Status = lifecycle.StatusTerminationPending
		})

		_, err := svc.Terminate(ctx, "Diego Maduro", &dto.TerminateContractRequest{Id: c.Id})
		assert.True(t, apperr.IsStateConflict(err))

		seedTerminationDoc(t, f, c.Id, constant.TerminationLetterName, constant.PDFContentType)
		_, err = svc.Terminate(ctx, "Diego Maduro", &dto.TerminateContractRequest{Id: c.Id})
		assert.True(t, apperr.IsStateConflict(err), "letter alone must not satisfy the gate")

		seedTerminationDoc(t, f, c.Id, constant.FinalInvoiceName, constant.PDFContentType)
		res, err := svc.Terminate(ctx, "Diego Maduro", &dto.TerminateContractRequest{Id: c.Id})
		require.NoError(t, err)
		assert.Equal(t, constant.ContractStatusTerminated, res.Status)
	})

	t.Run("non pdf gating documents do not count", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		c := f.seedContract(t, func(c *entity.Contract) {
			c.Status = lifecycle.StatusTerminationPending
		})

		seedTerminationDoc(t, f, c.Id, constant.TerminationLetterName, "image/png")
		seedTerminationDoc(t, f, c.Id, constant.FinalInvoiceName, constant.PDFContentType)

		_, err := svc.Terminate(ctx, "Diego Maduro", &dto.TerminateContractRequest{Id: c.Id})
		assert.True(t, apperr.IsStateConflict(err))
	})

	t.Run("terminate keeps the parked termination date", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		parked := dateOnly(testDate.AddDate(0, 2, 0))
		c := f.seedContract(t, func(c *entity.Contract) {
			c.Status = lifecycle.StatusTerminationPending
			c.TerminationDate = &parked
		})
		seedTerminationDoc(t, f, c.Id, constant.TerminationLetterName, constant.PDFContentType)
		seedTerminationDoc(t, f, c.Id, constant.FinalInvoiceName, constant.PDFContentType)

		res, err := svc.Terminate(ctx, "Diego Maduro", &dto.TerminateContractRequest{Id: c.Id})
		require.NoError(t, err)
		require.NotNil(t, res.TerminationDate)
		assert.True(t, res.TerminationDate.Equal(parked))
	})

	t.Run("cancel returns the contract to active", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		parked := dateOnly(testDate.AddDate(0, 1, 0))
		termination := constant.TerminationYes
		c := f.seedContract(t, func(c *entity.Contract) {
			c.Status = lifecycle.StatusTerminationPending
			c.Termination = &termination
			c.TerminationDate = &parked
		})

		res, err := svc.CancelTermination(ctx, "Diego Maduro", c.Id)
		require.NoError(t, err)
		assert.Equal(t, constant.ContractStatusActive, res.Status)
		require.NotNil(t, res.Termination)
		assert.Equal(t, constant.TerminationNo, *res.Termination)
		assert.Nil(t, res.TerminationDate)
	})

	t.Run("cancel needs a pending termination", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		c := f.seedContract(t, nil)

		_, err := svc.CancelTermination(ctx, "Diego Maduro", c.Id)
		assert.True(t, apperr.IsStateConflict(err))
	})

	t.Run("terminated is final", func(t *testing.T) {
		f := newFixture(t)
		svc := newContractService(t, f)
		c := f.seedContract(t, func(c *entity.Contract) {
			c.Status = lifecycle.StatusTerminated
		})
		seedTerminationDoc(t, f, c.Id, constant.TerminationLetterName, constant.PDFContentType)
		seedTerminationDoc(t, f, c.Id, constant.FinalInvoiceName, constant.PDFContentType)

		_, err := svc.Terminate(ctx, "Diego Maduro", &dto.TerminateContractRequest{Id: c.Id})
		assert.True(t, apperr.IsStateConflict(err))
		_, err = svc.SavePendingTermination(ctx, "Diego Maduro", &dto.SavePendingTerminationRequest{Id: c.Id, TerminationDate: testDate})
		assert.True(t, apperr.IsStateConflict(err))
	})
}

func TestContractUpdateFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := newContractService(t, f)
	c := f.seedContract(t, nil)

	req := &dto.UpdateContractRequest{
		Id:                        c.Id,
		ContractDescription:       "Facility maintenance services - wing B",
		ContractType:              c.Type,
		StartDate:                 c.StartDate,
		EndDate:                   c.EndDate,
		AutomaticRenewal:          c.AutomaticRenewal,
		Department:                "Facilities",
		ContractAmount:            decimal.NewFromInt(15000),
		ContractCurrency:          c.Currency,
		PaymentMethod:             c.PaymentMethod,
		TerminationNoticePeriod:   c.TerminationNoticePeriod,
		ExpirationNoticeFrequency: c.ExpirationNoticeFrequency,
		ContractOwnerId:           c.OwnerId,
		ContractOwnerBackupId:     c.BackupId,
		ContractOwnerManagerId:    c.ManagerId,
	}
	res, err := svc.Update(ctx, "Diego Maduro", req)
	require.NoError(t, err)
	assert.Equal(t, "Facility maintenance services - wing B", res.ContractDescription)
	assert.Equal(t, "Facilities", res.Department)
	assert.EqualValues(t, 2, res.Version)
	require.NotNil(t, res.LastModifiedBy)
	assert.Equal(t, "Diego Maduro", *res.LastModifiedBy)

	req.Id = 404
	_, err = svc.Update(ctx, "Diego Maduro", req)
	assert.True(t, apperr.IsNotFound(err))
}

func TestContractEventPublishing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pub := &capturingPublisher{}
	svc := NewContractService(f.factory, NewIdentifierService(), pub, testLogger(t), fixedClock)

	res, err := svc.Create(ctx, "Alice Croes", validCreateRequest(f))
	require.NoError(t, err)

	require.Len(t, pub.published, 1)
	assert.Equal(t, constant.EventContractCreated, pub.published[0].Type)
	assert.Equal(t, res.ContractID, pub.published[0].ContractID)

	expired := f.seedContract(t, func(c *entity.Contract) {
		c.EndDate = testDate.AddDate(0, 0, -3)
	})
	sweep, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, sweep.Transitioned)

	require.Len(t, pub.published, 2)
	assert.Equal(t, constant.EventContractExpired, pub.published[1].Type)
	assert.Equal(t, expired.ContractID, pub.published[1].ContractID)
}

// capturingPublisher records the decoded event messages instead of
// pushing them onto the bus.
type capturingPublisher struct {
	published []dto.ContractEventMessage
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	var msg dto.ContractEventMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	p.published = append(p.published, msg)
	return nil
}

