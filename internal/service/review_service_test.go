package service

import (
	"context"
	"testing"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/lifecycle"
	"contractdesk-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(t *testing.T, f *fixture) IReviewService {
	t.Helper()
	return NewReviewService(f.factory, nil, testLogger(t), fixedClock, 0, 0)
}

func TestReviewSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("owner backup and manager may submit", func(t *testing.T) {
		f := newFixture(t)
		svc := newReviewService(t, f)

		for _, userId := range []uint{f.owner.Id, f.backup.Id, f.manager.Id} {
			c := f.seedContract(t, nil)
			res, err := svc.Submit(ctx, userId, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionExtend})
			require.NoError(t, err)
			assert.Equal(t, constant.UpdateStatusPendingReview, res.Status)
			require.NotNil(t, res.ResponseProvidedByUserId)
			assert.Equal(t, userId, *res.ResponseProvidedByUserId)
			require.NotNil(t, res.Decision)
			assert.Equal(t, constant.DecisionExtend, *res.Decision)
		}
	})

	t.Run("strangers may not submit", func(t *testing.T) {
		f := newFixture(t)
		svc := newReviewService(t, f)
		c := f.seedContract(t, nil)

		_, err := svc.Submit(ctx, f.admin.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionExtend})
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("only one review can be open", func(t *testing.T) {
		f := newFixture(t)
		svc := newReviewService(t, f)
		c := f.seedContract(t, nil)

		_, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionRenew})
		require.NoError(t, err)

		_, err = svc.Submit(ctx, f.backup.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionExtend})
		assert.True(t, apperr.IsStateConflict(err))
	})

	t.Run("closed contracts reject submissions", func(t *testing.T) {
		f := newFixture(t)
		svc := newReviewService(t, f)

		for _, status := range []lifecycle.Status{lifecycle.StatusTerminationPending, lifecycle.StatusTerminated} {
			c := f.seedContract(t, func(c *entity.Contract) { c.Status = status })
			_, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionTerminate})
			assert.True(t, apperr.IsStateConflict(err), "status %s", status)
		}
	})

	t.Run("expired contracts stay open for decisions", func(t *testing.T) {
		f := newFixture(t)
		svc := newReviewService(t, f)
		c := f.seedContract(t, func(c *entity.Contract) {
			c.Status = lifecycle.StatusExpired
			c.EndDate = testDate.AddDate(0, 0, -5)
		})

		_, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionRenew})
		assert.NoError(t, err)
	})
}

func TestReviewReturnAndResubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("return snapshots the contract fields", func(t *testing.T) {
		f := newFixture(t)
		svc := newReviewService(t, f)
		c := f.seedContract(t, nil)

		sub, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionExtend})
		require.NoError(t, err)

		res, err := svc.Return(ctx, &dto.ReturnUpdateRequest{
			UpdateId:       sub.Id,
			ReturnedReason: "End date does not match the signed amendment",
			AdminComments:  strPtr("See the Q2 addendum"),
		})
		require.NoError(t, err)
		assert.Equal(t, constant.UpdateStatusReturned, res.Status)
		require.NotNil(t, res.ReturnedDate)
		require.NotNil(t, res.ReturnedReason)
		assert.Equal(t, "End date does not match the signed amendment", *res.ReturnedReason)

		uow := f.factory.NewUnitOfWork(ctx)
		stored, err := uow.ContractUpdateRepository().FindById(ctx, sub.Id)
		require.NoError(t, err)
		require.NotNil(t, stored.InitialVendorName)
		assert.Equal(t, f.vendor.VendorName, *stored.InitialVendorName)
		require.NotNil(t, stored.InitialDescription)
		assert.Equal(t, c.Description, *stored.InitialDescription)
		require.NotNil(t, stored.InitialExpirationDate)
		assert.True(t, stored.InitialExpirationDate.Equal(c.EndDate))
	})

	t.Run("only pending submissions can be returned", func(t *testing.T) {
		f := newFixture(t)
		svc := newReviewService(t, f)
		c := f.seedContract(t, nil)

		sub, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionExtend})
		require.NoError(t, err)
		_, err = svc.Complete(ctx, sub.Id)
		require.NoError(t, err)

		_, err = svc.Return(ctx, &dto.ReturnUpdateRequest{UpdateId: sub.Id, ReturnedReason: "too late"})
		assert.True(t, apperr.IsStateConflict(err))
	})

	t.Run("resubmit closes the returned row and links the new one", func(t *testing.T) {
		f := newFixture(t)
		svc := newReviewService(t, f)
		c := f.seedContract(t, nil)

		sub, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionExtend})
		require.NoError(t, err)
		_, err = svc.Return(ctx, &dto.ReturnUpdateRequest{UpdateId: sub.Id, ReturnedReason: "wrong decision"})
		require.NoError(t, err)

		res, err := svc.Resubmit(ctx, f.owner.Id, &dto.ResubmitUpdateRequest{UpdateId: sub.Id, Decision: constant.DecisionRenew})
		require.NoError(t, err)
		assert.Equal(t, constant.UpdateStatusPendingReview, res.Status)
		require.NotNil(t, res.PreviousUpdateId)
		assert.Equal(t, sub.Id, *res.PreviousUpdateId)
		require.NotNil(t, res.CorrectionDate)

		uow := f.factory.NewUnitOfWork(ctx)
		old, err := uow.ContractUpdateRepository().FindById(ctx, sub.Id)
		require.NoError(t, err)
		assert.Equal(t, constant.UpdateStatusUpdated, old.Status)
	})

	t.Run("only returned submissions can be resubmitted", func(t *testing.T) {
		f := newFixture(t)
		svc := newReviewService(t, f)
		c := f.seedContract(t, nil)

		sub, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionExtend})
		require.NoError(t, err)

		_, err = svc.Resubmit(ctx, f.owner.Id, &dto.ResubmitUpdateRequest{UpdateId: sub.Id, Decision: constant.DecisionRenew})
		assert.True(t, apperr.IsStateConflict(err))
	})

	t.Run("a terminate resubmission needs a termination document", func(t *testing.T) {
		f := newFixture(t)
		svc := newReviewService(t, f)
		c := f.seedContract(t, nil)

		sub, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionTerminate})
		require.NoError(t, err)
		_, err = svc.Return(ctx, &dto.ReturnUpdateRequest{UpdateId: sub.Id, ReturnedReason: "missing paperwork"})
		require.NoError(t, err)

		_, err = svc.Resubmit(ctx, f.owner.Id, &dto.ResubmitUpdateRequest{UpdateId: sub.Id, Decision: constant.DecisionTerminate})
		assert.True(t, apperr.IsStateConflict(err))

		seedTerminationDoc(t, f, c.Id, constant.TerminationLetterName, constant.PDFContentType)
		res, err := svc.Resubmit(ctx, f.owner.Id, &dto.ResubmitUpdateRequest{UpdateId: sub.Id, Decision: constant.DecisionTerminate})
		require.NoError(t, err)
		assert.True(t, res.HasDocument)
	})

	t.Run("return publishes an event to the submitter pipeline", func(t *testing.T) {
		f := newFixture(t)
		pub := &capturingPublisher{}
		svc := NewReviewService(f.factory, pub, testLogger(t), fixedClock, 0, 0)
		c := f.seedContract(t, nil)

		sub, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionExtend})
		require.NoError(t, err)
		_, err = svc.Return(ctx, &dto.ReturnUpdateRequest{UpdateId: sub.Id, ReturnedReason: "fix dates"})
		require.NoError(t, err)

		require.Len(t, pub.published, 1)
		assert.Equal(t, constant.EventReviewReturned, pub.published[0].Type)
		assert.Equal(t, c.ContractID, pub.published[0].ContractID)
	})
}

func TestReviewHistoryAndStage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := newReviewService(t, f)
	c := f.seedContract(t, nil)

	sub, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionExtend})
	require.NoError(t, err)

	stage, err := svc.Stage(ctx, c.Id)
	require.NoError(t, err)
	assert.Equal(t, string(lifecycle.StagePendingAdminReview), stage.Stage)

	_, err = svc.Return(ctx, &dto.ReturnUpdateRequest{UpdateId: sub.Id, ReturnedReason: "check amounts"})
	require.NoError(t, err)
	resub, err := svc.Resubmit(ctx, f.owner.Id, &dto.ResubmitUpdateRequest{UpdateId: sub.Id, Decision: constant.DecisionExtend})
	require.NoError(t, err)

	history, err := svc.History(ctx, c.Id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Newest first.
	assert.Equal(t, resub.Id, history[0].Id)
	assert.Equal(t, sub.Id, history[1].Id)

	_, err = svc.Stage(ctx, 404)
	assert.True(t, apperr.IsNotFound(err))
}

func TestReviewQueues(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := newReviewService(t, f)

	// Active with no documents at all.
	bare := f.seedContract(t, nil)
	// Active with a contract document on file.
	documented := f.seedContract(t, nil)
	uow := f.factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.ContractDocumentRepository().Create(ctx, &entity.ContractDocument{
		ContractId:         documented.Id,
		FileName:           "signed.pdf",
		CustomDocumentName: "Signed Agreement",
		DocumentSignedDate: dateOnly(testDate),
		FilePath:           "uploads/test/signed.pdf",
		ContentType:        constant.PDFContentType,
		CreatedAt:          testDate,
	}))

	t.Run("no documents", func(t *testing.T) {
		res, err := svc.QueueNoDocuments(ctx, 0, 50)
		require.NoError(t, err)
		ids := contractIDs(res)
		assert.Contains(t, ids, bare.ContractID)
		assert.NotContains(t, ids, documented.ContractID)
	})

	t.Run("needing review respects the horizon", func(t *testing.T) {
		inside := f.seedContract(t, func(c *entity.Contract) {
			c.EndDate = dateOnly(testDate).AddDate(0, 0, 45)
		})
		outside := f.seedContract(t, func(c *entity.Contract) {
			c.EndDate = dateOnly(testDate).AddDate(0, 0, constant.DefaultReviewHorizonDays+1)
		})

		res, err := svc.QueueNeedingReview(ctx, 0, 50)
		require.NoError(t, err)
		ids := contractIDs(res)
		assert.Contains(t, ids, inside.ContractID)
		assert.NotContains(t, ids, outside.ContractID)
	})

	t.Run("requiring attention excludes contracts with a non draft review", func(t *testing.T) {
		urgent := f.seedContract(t, func(c *entity.Contract) {
			c.EndDate = dateOnly(testDate).AddDate(0, 0, 10)
		})
		handled := f.seedContract(t, func(c *entity.Contract) {
			c.EndDate = dateOnly(testDate).AddDate(0, 0, 10)
		})
		_, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: handled.Id, Decision: constant.DecisionExtend})
		require.NoError(t, err)

		res, err := svc.QueueRequiringAttention(ctx, 0, 50)
		require.NoError(t, err)
		ids := contractIDs(res)
		assert.Contains(t, ids, urgent.ContractID)
		assert.NotContains(t, ids, handled.ContractID)
	})

	t.Run("pending admin and awaiting document are disjoint", func(t *testing.T) {
		extendPending := f.seedContract(t, nil)
		_, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: extendPending.Id, Decision: constant.DecisionExtend})
		require.NoError(t, err)

		terminateNoDoc := f.seedContract(t, nil)
		_, err = svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: terminateNoDoc.Id, Decision: constant.DecisionTerminate})
		require.NoError(t, err)

		admin, err := svc.QueuePendingAdminReview(ctx, 0, 50)
		require.NoError(t, err)
		awaiting, err := svc.QueueAwaitingTerminationDocument(ctx, 0, 50)
		require.NoError(t, err)

		adminIDs := contractIDs(admin)
		awaitingIDs := contractIDs(awaiting)
		assert.Contains(t, adminIDs, extendPending.ContractID)
		assert.NotContains(t, adminIDs, terminateNoDoc.ContractID)
		assert.Contains(t, awaitingIDs, terminateNoDoc.ContractID)
		assert.NotContains(t, awaitingIDs, extendPending.ContractID)
		for _, id := range adminIDs {
			assert.NotContains(t, awaitingIDs, id)
		}
	})

	t.Run("a document moves the terminate submission to the admin queue", func(t *testing.T) {
		c := f.seedContract(t, nil)
		sub, err := svc.Submit(ctx, f.owner.Id, &dto.SubmitUpdateRequest{ContractId: c.Id, Decision: constant.DecisionTerminate})
		require.NoError(t, err)

		stored, err := uow.ContractUpdateRepository().FindById(ctx, sub.Id)
		require.NoError(t, err)
		stored.HasDocument = true
		require.NoError(t, uow.ContractUpdateRepository().Update(ctx, stored))

		admin, err := svc.QueuePendingAdminReview(ctx, 0, 50)
		require.NoError(t, err)
		awaiting, err := svc.QueueAwaitingTerminationDocument(ctx, 0, 50)
		require.NoError(t, err)
		assert.Contains(t, contractIDs(admin), c.ContractID)
		assert.NotContains(t, contractIDs(awaiting), c.ContractID)
	})

	t.Run("terminated queue", func(t *testing.T) {
		ended := f.seedContract(t, func(c *entity.Contract) {
			c.Status = lifecycle.StatusTerminated
		})
		res, err := svc.QueueTerminated(ctx, 0, 50)
		require.NoError(t, err)
		assert.Equal(t, []string{ended.ContractID}, contractIDs(res))
	})
}

func contractIDs(res *dto.ContractListResponse) []string {
	out := make([]string, 0, len(res.Items))
	for _, item := range res.Items {
		out = append(out, item.ContractID)
	}
	return out
}
