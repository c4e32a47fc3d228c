package usecases

import (
	"context"

	"scholaris/internal/domain/account"
)

type ListActivityQuery struct {
	AccountID uint
	Limit     int
}

const defaultActivityLimit = 50

// ListActivityUseCase reads the append-only audit trail, either for one
// account or across the whole system.
type ListActivityUseCase struct {
	activityRepo account.ActivityRepository
}

func NewListActivityUseCase(activityRepo account.ActivityRepository) *ListActivityUseCase {
	return &ListActivityUseCase{activityRepo: activityRepo}
}

func (uc *ListActivityUseCase) Execute(ctx context.Context, query ListActivityQuery) ([]*account.ActivityEntry, error) {
	limit := query.Limit
	if limit <= 0 || limit > 500 {
		limit = defaultActivityLimit
	}

	if query.AccountID != 0 {
		return uc.activityRepo.ListByAccountID(query.AccountID, limit)
	}
	return uc.activityRepo.ListRecent(limit)
}
