package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

// TaskService implements owner-scoped task operations. The owner id always
// comes from the resolved identity of the caller, never from client input.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create persists a new task for ownerID. Title is required; a zero deadline
// defaults to the creation time.
func (s *TaskService) Create(ctx context.Context, ownerID int64, title, description string, deadline time.Time, completed bool) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if deadline.IsZero() {
		deadline = time.Now()
	}

	task := &models.Task{
		Title:       title,
		Description: description,
		Deadline:    deadline,
		Completed:   completed,
		OwnerID:     ownerID,
	}

	repo := s.repomanager.Tasks(s.db)
	created, err := repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return created, nil
}

// List returns all tasks of ownerID ordered by ascending deadline.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.ListByOwner(ctx, ownerID)
}

// Get returns the owner's task or common.ErrorNotFound. A task owned by
// another user is reported exactly like a missing one.
func (s *TaskService) Get(ctx context.Context, id, ownerID int64) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.Get(ctx, id, ownerID)
}

// Update applies a partial update to the owner's task. A title set to an
// empty string is rejected; absent fields stay untouched.
func (s *TaskService) Update(ctx context.Context, id, ownerID int64, upd models.TaskUpdate) (*models.Task, error) {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}

	repo := s.repomanager.Tasks(s.db)
	return repo.Update(ctx, id, ownerID, upd)
}

// Delete removes the owner's task or returns common.ErrorNotFound.
func (s *TaskService) Delete(ctx context.Context, id, ownerID int64) error {
	repo := s.repomanager.Tasks(s.db)
	return repo.Delete(ctx, id, ownerID)
}
