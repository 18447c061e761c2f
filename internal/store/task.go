package store

import (
	"context"
	"fmt"

	"timeclock/internal/database"
	"timeclock/internal/model"

	"github.com/jackc/pgx/v5"
)

// ListTasks 回傳所有 tasks；projectID 非 nil 時僅回傳該 project 底下的
func ListTasks(ctx context.Context, db database.DB, projectID *string) ([]model.Task, error) {
	query := `SELECT id, name, description, project_id, status, created_at
		 FROM tasks`
	args := []any{}
	if projectID != nil {
		query += ` WHERE project_id = $1`
		args = append(args, *projectID)
	}
	query += ` ORDER BY created_at`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListTasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Description,
			&t.ProjectID,
			&t.Status,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListTasks: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTasks: %w", err)
	}
	return tasks, nil
}

func GetTaskByID(ctx context.Context, db database.DB, taskID string) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, description, project_id, status, created_at
		 FROM tasks WHERE id = $1`,
		taskID,
	)
	t := &model.Task{}
	if err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.ProjectID,
		&t.Status,
		&t.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetTaskByID: %w", err)
	}
	return t, nil
}

func CreateTask(ctx context.Context, db database.DB, t *model.Task) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO tasks (id, name, description, project_id, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		t.ID,
		t.Name,
		t.Description,
		t.ProjectID,
		t.Status,
	)
	if err := row.Scan(&t.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateTask: %w", err)
	}
	return t, nil
}

func UpdateTask(ctx context.Context, db database.DB, t *model.Task) error {
	tag, err := db.Exec(ctx,
		`UPDATE tasks SET name = $1, description = $2, project_id = $3, status = $4
		 WHERE id = $5`,
		t.Name,
		t.Description,
		t.ProjectID,
		t.Status,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateTask: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateTask: %w", pgx.ErrNoRows)
	}
	return nil
}

func DeleteTask(ctx context.Context, db database.DB, taskID string) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1`,
		taskID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTask: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTask: %w", pgx.ErrNoRows)
	}
	return nil
}
