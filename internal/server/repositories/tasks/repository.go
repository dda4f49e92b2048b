package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository is the owner-scoped persistence contract for tasks. Every read
// and write takes the owner id; a task belonging to another owner is
// indistinguishable from a missing one.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Task, error)
	Get(ctx context.Context, id, ownerID int64) (*models.Task, error)
	Update(ctx context.Context, id, ownerID int64, upd models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
