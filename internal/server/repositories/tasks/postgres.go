// Package tasks provides a PostgreSQL-backed repository for task records.
// All queries are scoped by owner id.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new task and returns it with the generated id.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (title, description, deadline, completed, owner_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Deadline, task.Completed, task.OwnerID).Scan(&task.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// ListByOwner returns all tasks owned by ownerID ordered by ascending
// deadline. The result is empty (not nil-checked by callers) when the owner
// has no tasks.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Task, error) {
	query :=
		`SELECT id, title, description, deadline, completed, owner_id FROM tasks
		 WHERE owner_id = $1
		 ORDER BY deadline
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID, &task.Title, &task.Description, &task.Deadline, &task.Completed, &task.OwnerID,
		); err != nil {
			return nil, err
		}
		result = append(result, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the task only when both id and owner match.
// If not found (or owned by someone else), it returns common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, id, ownerID int64) (*models.Task, error) {
	query :=
		`SELECT id, title, description, deadline, completed, owner_id FROM tasks
		 WHERE id = $1 AND owner_id = $2
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&task.ID, &task.Title, &task.Description, &task.Deadline, &task.Completed, &task.OwnerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Update applies only the fields present in upd and returns the updated row.
// Absent (nil) fields are left untouched. An empty update degenerates to Get.
// If no row matches id+owner, it returns common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, id, ownerID int64, upd models.TaskUpdate) (*models.Task, error) {
	if upd.IsEmpty() {
		return r.Get(ctx, id, ownerID)
	}

	set := make([]string, 0, 4)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Deadline != nil {
		add("deadline", *upd.Deadline)
	}
	if upd.Completed != nil {
		add("completed", *upd.Completed)
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(
		`UPDATE tasks SET %s
		 WHERE id = $%d AND owner_id = $%d
		 RETURNING id, title, description, deadline, completed, owner_id
		 `, strings.Join(set, ", "), len(args)-1, len(args))

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&task.ID, &task.Title, &task.Description, &task.Deadline, &task.Completed, &task.OwnerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// Delete removes the task matching id+owner.
// Returns common.ErrorNotFound when no row was deleted.
func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID int64) error {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND owner_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
