package contract

import (
	"context"

	"hireup-be/internal/entity"
	"hireup-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, companyId uuid.UUID) (int64, error)
	MarkAllRead(ctx context.Context, companyId uuid.UUID) error
}
