package database

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/akyairhashvil/sessionplan/internal/config"
	"github.com/akyairhashvil/sessionplan/internal/models"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Slugify lower-cases name and replaces runs of other characters with '-'.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func scanProject(row interface{ Scan(...interface{}) error }) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.CreatedAt)
	return p, err
}

func (d *Database) GetProjects(ctx context.Context) ([]models.Project, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Project, error) {
		rows, err := d.DB.QueryContext(ctx, "SELECT id, name, slug, created_at FROM projects ORDER BY created_at ASC, slug ASC")
		if err != nil {
			return nil, wrapErr(EntityProject, "list", "", err)
		}
		defer rows.Close()

		var projects []models.Project
		for rows.Next() {
			p, err := scanProject(rows)
			if err != nil {
				return nil, wrapErr(EntityProject, "list", "", err)
			}
			projects = append(projects, p)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityProject, "list", "", err)
		}
		return projects, nil
	})
}

func (d *Database) CreateProject(ctx context.Context, name, slug string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", wrapErr(EntityProject, "create", "", invalid("project name is required"))
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if !slugRegex.MatchString(slug) {
		return "", wrapErr(EntityProject, "create", "", invalid("bad slug %q", slug))
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) (string, error) {
		id := d.newID()
		_, err := d.DB.ExecContext(ctx, "INSERT INTO projects (id, name, slug, created_at) VALUES (?, ?, ?, ?)", id, name, slug, d.now())
		if err != nil {
			return "", wrapErr(EntityProject, "create", "", err)
		}
		return id, nil
	})
}

// GetProjectBySlug reports ok=false when no project has the slug.
func (d *Database) GetProjectBySlug(ctx context.Context, slug string) (models.Project, bool, error) {
	type slugResult struct {
		project models.Project
		ok      bool
	}
	result, err := withDBContextResult(d, ctx, func(ctx context.Context) (slugResult, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT id, name, slug, created_at FROM projects WHERE slug = ?", slug)
		p, err := scanProject(row)
		if errors.Is(err, sql.ErrNoRows) {
			return slugResult{}, nil
		}
		if err != nil {
			return slugResult{}, wrapErr(EntityProject, "get by slug", "", err)
		}
		return slugResult{project: p, ok: true}, nil
	})
	if err != nil {
		return models.Project{}, false, err
	}
	return result.project, result.ok, nil
}

// EnsureProject returns the project with the given slug, creating it when
// missing.
func (d *Database) EnsureProject(ctx context.Context, slug string) (models.Project, error) {
	slug = Slugify(slug)
	if slug == "" {
		slug = config.DefaultProject
	}
	p, ok, err := d.GetProjectBySlug(ctx, slug)
	if err != nil {
		return models.Project{}, err
	}
	if ok {
		return p, nil
	}
	name := strings.ToUpper(slug[:1]) + strings.ReplaceAll(slug[1:], "-", " ")
	if _, err := d.CreateProject(ctx, name, slug); err != nil {
		return models.Project{}, err
	}
	p, ok, err = d.GetProjectBySlug(ctx, slug)
	if err != nil {
		return models.Project{}, err
	}
	if !ok {
		return models.Project{}, wrapErr(EntityProject, "ensure", "", ErrNotFound)
	}
	return p, nil
}

func (d *Database) EnsureDefaultProject(ctx context.Context) (models.Project, error) {
	return d.EnsureProject(ctx, config.DefaultProject)
}
