package service

import (
	"context"
	"fmt"
	"time"

	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/lifecycle"
	"contractdesk-be/internal/pkg/apperr"
	"contractdesk-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

type IDashboardService interface {
	ManagerDashboard(ctx context.Context, userId uint) (*dto.ManagerDashboardResponse, error)
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
	ContractSummary(ctx context.Context, contractId uint) (*dto.ContractSummaryResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
	now        func() time.Time
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, now func() time.Time) IDashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		uowFactory: uowFactory,
		cache:      cache.New(1*time.Minute, 5*time.Minute),
		now:        now,
	}
}

func (s *dashboardService) ManagerDashboard(ctx context.Context, userId uint) (*dto.ManagerDashboardResponse, error) {
	cacheKey := fmt.Sprintf("manager_dashboard_%d", userId)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*dto.ManagerDashboardResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	owned, err := uow.ContractRepository().ListByOwner(ctx, userId)
	if err != nil {
		return nil, err
	}

	today := dateOnly(s.now())
	soon := today.AddDate(0, 0, 30)
	res := &dto.ManagerDashboardResponse{
		OwnedTotal:     int64(len(owned)),
		OwnedContracts: toContractResponses(owned),
	}
	for _, c := range owned {
		switch {
		case c.Status == lifecycle.StatusExpired:
			res.Expired++
		case c.Status == lifecycle.StatusActive && !c.EndDate.Before(today) && !c.EndDate.After(soon):
			res.ExpiringSoon++
			res.ExpiringList = append(res.ExpiringList, toContractResponse(c))
		}
	}

	s.cache.Set(cacheKey, res, cache.DefaultExpiration)
	return res, nil
}

func (s *dashboardService) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	if cached, found := s.cache.Get("admin_dashboard"); found {
		return cached.(*dto.AdminDashboardResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	byStatus, err := uow.ContractRepository().CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byDepartment, err := uow.ContractRepository().CountByDepartment(ctx)
	if err != nil {
		return nil, err
	}
	valueByCurrency, err := uow.ContractRepository().SumAmountByCurrency(ctx, true)
	if err != nil {
		return nil, err
	}

	today := dateOnly(s.now())
	res := &dto.AdminDashboardResponse{
		ByStatus:        byStatus,
		ByDepartment:    byDepartment,
		ValueByCurrency: valueByCurrency,
	}
	for _, count := range byStatus {
		res.TotalContracts += count
	}
	for _, days := range []int{30, 60, 90} {
		expiring, err := uow.ContractRepository().ListExpiringBetween(ctx, today, today.AddDate(0, 0, days))
		if err != nil {
			return nil, err
		}
		switch days {
		case 30:
			res.Expiring30 = int64(len(expiring))
		case 60:
			res.Expiring60 = int64(len(expiring))
		case 90:
			res.Expiring90 = int64(len(expiring))
		}
	}

	recent, err := uow.ContractRepository().ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}
	res.RecentContracts = toContractResponses(recent)

	s.cache.Set("admin_dashboard", res, cache.DefaultExpiration)
	return res, nil
}

func (s *dashboardService) ContractSummary(ctx context.Context, contractId uint) (*dto.ContractSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := uow.ContractRepository().FindById(ctx, contractId)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", contractId)
	}

	vendor, err := uow.VendorRepository().FindById(ctx, c.VendorId)
	if err != nil {
		return nil, err
	}
	docs, err := uow.ContractDocumentRepository().ListByContractId(ctx, c.Id)
	if err != nil {
		return nil, err
	}
	termDocs, err := uow.TerminationDocumentRepository().ListByContractId(ctx, c.Id)
	if err != nil {
		return nil, err
	}
	updates, err := uow.ContractUpdateRepository().ListByContractId(ctx, c.Id)
	if err != nil {
		return nil, err
	}

	var review *lifecycle.ReviewState
	if len(updates) > 0 {
		latest := updates[0]
		decision := ""
		if latest.Decision != nil {
			decision = *latest.Decision
		}
		review = &lifecycle.ReviewState{
			Status:      latest.Status,
			Decision:    decision,
			HasDocument: latest.HasDocument,
			Returned:    latest.ReturnedDate != nil,
		}
	}

	res := &dto.ContractSummaryResponse{
		Contract:      toContractResponse(c),
		WorkflowStage: string(lifecycle.Classify(c.Status, review)),
	}
	if vendor != nil {
		res.Vendor = toVendorResponse(vendor)
	}
	for _, d := range docs {
		res.Documents = append(res.Documents, toContractDocResponse(d))
	}
	for _, d := range termDocs {
		res.TerminationDocuments = append(res.TerminationDocuments, toTerminationDocResponse(d))
	}
	for _, u := range updates {
		res.Updates = append(res.Updates, toUpdateResponse(u))
	}
	return res, nil
}
