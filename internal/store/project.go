package store

import (
	"context"
	"fmt"

	"timeclock/internal/database"
	"timeclock/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListProjects(ctx context.Context, db database.DB) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, description, status, created_by, created_at
		 FROM projects ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Status,
			&p.CreatedBy,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListProjects: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	return projects, nil
}

func GetProjectByID(ctx context.Context, db database.DB, projectID string) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, description, status, created_by, created_at
		 FROM projects WHERE id = $1`,
		projectID,
	)
	p := &model.Project{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Status,
		&p.CreatedBy,
		&p.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetProjectByID: %w", err)
	}
	return p, nil
}

func CreateProject(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO projects (id, name, description, status, created_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		p.ID,
		p.Name,
		p.Description,
		p.Status,
		p.CreatedBy,
	)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProject: %w", err)
	}
	return p, nil
}

func UpdateProject(ctx context.Context, db database.DB, p *model.Project) error {
	tag, err := db.Exec(ctx,
		`UPDATE projects SET name = $1, description = $2, status = $3
		 WHERE id = $4`,
		p.Name,
		p.Description,
		p.Status,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateProject: %w", pgx.ErrNoRows)
	}
	return nil
}

// DeleteProject 刪除 project；其 tasks 由 schema 級聯刪除，
// 引用它的 time_entries 外鍵則被設為 NULL
func DeleteProject(ctx context.Context, db database.DB, projectID string) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1`,
		projectID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProject: %w", pgx.ErrNoRows)
	}
	return nil
}
