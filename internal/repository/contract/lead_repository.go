package contract

import (
	"context"

	"github.com/google/uuid"

	"pest-assess-be/internal/entity"
	"pest-assess-be/internal/repository/specification"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
