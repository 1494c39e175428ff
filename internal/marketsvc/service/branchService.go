package service

import (
	"context"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"
	"github.com/mtgtrade/market-services/internal/marketsvc/store"
)

type BranchService struct {
	branchStore *store.BranchStore
}

func NewBranchService(store *store.BranchStore) *BranchService {
	return &BranchService{branchStore: store}
}

func (s *BranchService) CreateBranch(ctx context.Context, branch models.Branch) (int64, error) {
	return s.branchStore.CreateBranch(ctx, branch)
}

func (s *BranchService) ListBranches(ctx context.Context) ([]models.Branch, error) {
	return s.branchStore.ListBranches(ctx)
}
