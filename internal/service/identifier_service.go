package service

import (
	"context"
	"fmt"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/repository/unitofwork"
)

// IIdentifierService formats the human-readable ids over the atomic
// counter table. Methods take the caller's unit of work so the counter
// row lock lives inside the same transaction as the insert that uses
// the id.
type IIdentifierService interface {
	NextContractID(ctx context.Context, uow unitofwork.UnitOfWork) (string, error)
	NextUserID(ctx context.Context, uow unitofwork.UnitOfWork) (string, error)
	NextVendorID(ctx context.Context, uow unitofwork.UnitOfWork, bankCustomer string) (string, error)
}

type identifierService struct{}

func NewIdentifierService() IIdentifierService {
	return &identifierService{}
}

func (s *identifierService) NextContractID(ctx context.Context, uow unitofwork.UnitOfWork) (string, error) {
	n, err := uow.SequenceRepository().Next(ctx, constant.SequenceContract)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", constant.ContractIDPrefix, n), nil
}

func (s *identifierService) NextUserID(ctx context.Context, uow unitofwork.UnitOfWork) (string, error) {
	n, err := uow.SequenceRepository().Next(ctx, constant.SequenceUser)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", constant.UserIDPrefix, n), nil
}

// NextVendorID picks the prefix from the vendor's bank: AB for Aruba
// Bank customers, OB otherwise. Each prefix has its own counter.
func (s *identifierService) NextVendorID(ctx context.Context, uow unitofwork.UnitOfWork, bankCustomer string) (string, error) {
	prefix := constant.VendorOrcoIDPrefix
	seqName := constant.SequenceVendorOrco
	if bankCustomer == constant.BankCustomerAruba {
		prefix = constant.VendorArubaIDPrefix
		seqName = constant.SequenceVendorAruba
	}
	n, err := uow.SequenceRepository().Next(ctx, seqName)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", prefix, n), nil
}
