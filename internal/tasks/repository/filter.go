package repository

import (
	"fmt"
	"strings"

	"github.com/tasktrack/tracker-backend/internal/tasks/domain"
)

const selectTasks = "SELECT id, project_id, title, description, due_date, status, user_name FROM tasks"

// predicate is one AND-ed equality condition.
type predicate struct {
	column string
	value  any
}

// predicates returns the present filters in their fixed order: user_name,
// then project_id.
func predicates(f domain.Filter) []predicate {
	var out []predicate
	if f.UserName != "" {
		out = append(out, predicate{column: "user_name", value: f.UserName})
	}
	if f.ProjectID != nil {
		out = append(out, predicate{column: "project_id", value: *f.ProjectID})
	}
	return out
}

// BuildListQuery renders the task listing for f. Placeholder $n always binds
// args[n-1], and the result is ordered newest first whether or not any
// filter applies.
func BuildListQuery(f domain.Filter) (string, []any) {
	preds := predicates(f)

	var sb strings.Builder
	sb.WriteString(selectTasks)

	args := make([]any, 0, len(preds))
	for i, p := range preds {
		args = append(args, p.value)
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		fmt.Fprintf(&sb, "%s = $%d", p.column, len(args))
	}

	sb.WriteString(" ORDER BY id DESC")
	return sb.String(), args
}
