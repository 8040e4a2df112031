// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"log/slog"

	"stock_history/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for symbol (instrument) data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	BulkInsert(ctx context.Context, symbols []entity.Symbol) error
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols from the repository.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// ActiveCodesOrDefault returns the active symbol codes, seeding the default
// instrument list first when the table is empty. This lets a fresh database
// start ingesting without manual setup.
func (u *SymbolUsecase) ActiveCodesOrDefault(ctx context.Context) ([]string, error) {
	codes, err := u.repo.ListActiveCodes(ctx)
	if err != nil {
		return nil, err
	}
	if len(codes) > 0 {
		return codes, nil
	}

	slog.Info("symbol table is empty; seeding default instrument list", "count", len(defaultCodes))
	seed := make([]entity.Symbol, 0, len(defaultCodes))
	for i, code := range defaultCodes {
		seed = append(seed, entity.Symbol{
			Code:     code,
			Name:     code,
			Market:   "US",
			IsActive: true,
			SortKey:  i,
		})
	}
	if err := u.repo.BulkInsert(ctx, seed); err != nil {
		return nil, err
	}
	return u.repo.ListActiveCodes(ctx)
}
