package domain

// DefaultStatus is applied on create when the caller leaves status empty.
// Updates never apply it.
const DefaultStatus = "not started"

// Task is a unit of work owned by UserName. ProjectID is a weak reference:
// nothing checks that the project exists.
type Task struct {
	ID          int64   `json:"id"`
	ProjectID   *int64  `json:"project_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *Date   `json:"due_date"`
	Status      string  `json:"status"`
	UserName    string  `json:"user_name"`
}

// TaskInput is the body accepted by create and update. Pointer fields
// distinguish an absent key from an empty one.
type TaskInput struct {
	ProjectID   NullableID `json:"project_id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *string    `json:"due_date"`
	Status      *string    `json:"status"`
	UserName    *string    `json:"user_name"`
}

// TaskWrite holds the normalized column values for one insert or update.
// A nil pointer is written as NULL.
type TaskWrite struct {
	ProjectID   *int64
	Title       *string
	Description *string
	DueDate     *Date
	Status      *string
	UserName    *string
}

// Filter narrows a task listing. Zero values mean "not filtered".
type Filter struct {
	UserName  string
	ProjectID *int64
}
