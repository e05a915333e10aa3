package database

import (
	"fmt"
	"strings"
)

const taskColumns = `id, project_id, parent_id, title, priority, estimated_hours, status, created_at, completed_at`

type TaskQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewTaskQuery() *TaskQuery {
	return &TaskQuery{columns: taskColumns, orderBy: "created_at ASC, id ASC"}
}

func (q *TaskQuery) Where(filter string, args ...interface{}) *TaskQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *TaskQuery) WhereProject(projectID string) *TaskQuery {
	return q.Where("project_id = ?", projectID)
}

func (q *TaskQuery) WhereOpen() *TaskQuery {
	return q.Where("status != 'completed'")
}

func (q *TaskQuery) WhereParent(parentID string) *TaskQuery {
	return q.Where("parent_id = ?", parentID)
}

func (q *TaskQuery) WhereID(id string) *TaskQuery {
	return q.Where("id = ?", id)
}

func (q *TaskQuery) OrderBy(orderBy string) *TaskQuery {
	q.orderBy = orderBy
	return q
}

func (q *TaskQuery) Limit(limit int) *TaskQuery {
	q.limit = limit
	return q
}

func (q *TaskQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM tasks", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
