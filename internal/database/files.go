package database

import (
	"context"
	"time"

	"magazyn-plikow/internal/models"
)

type InsertFileParams struct {
	Name      string
	CreatedAt time.Time
	Path      string
	Size      int64
	Username  string
}

func (q *Queries) InsertFile(ctx context.Context, arg InsertFileParams) (*models.File, error) {
	query := `
		INSERT INTO files (name, created_at, path, size, username)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, created_at, path, size, username
	`
	var file models.File
	err := q.db.QueryRow(ctx, query, arg.Name, arg.CreatedAt, arg.Path, arg.Size, arg.Username).Scan(
		&file.ID,
		&file.Name,
		&file.CreatedAt,
		&file.Path,
		&file.Size,
		&file.Username,
	)
	if err != nil {
		return nil, err
	}
	file.IsDownloadable = true

	return &file, nil
}

func (q *Queries) ListFilesForUser(ctx context.Context, username string) ([]models.File, error) {
	query := `
		SELECT id, name, created_at, path, size, username
		FROM files
		WHERE username = $1
		ORDER BY id
	`
	rows, err := q.db.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		var file models.File
		err := rows.Scan(
			&file.ID,
			&file.Name,
			&file.CreatedAt,
			&file.Path,
			&file.Size,
			&file.Username,
		)
		if err != nil {
			return nil, err
		}
		file.IsDownloadable = true
		files = append(files, file)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if files == nil {
		return []models.File{}, nil
	}

	return files, nil
}
