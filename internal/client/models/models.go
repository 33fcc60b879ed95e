// Package models holds the client-side view of the task tracker: the values
// the CLI renders and the requests it builds. Package client converts them to
// and from the protobuf messages.
package models

import "time"

type RegisterRequest struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

type RegisterResponse struct {
	User         User
	AccessToken  string
	RefreshToken string
}

type User struct {
	ID        string
	Username  string
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

type Owner struct {
	ID       string
	Username string
}

type CategoryRef struct {
	ID    string
	Name  string
	Color string
}

// Task dates (DueDate) are "YYYY-MM-DD" strings as the server sends them.
type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     string
	Priority    string
	Status      string
	Owner       Owner
	IsOverdue   bool
	Category    *CategoryRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

type CreateTaskRequest struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Status      string
	CategoryID  string
}

// UpdateTaskRequest is a partial update; nil fields are left alone. An empty
// CategoryID detaches the task from its category.
type UpdateTaskRequest struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *string
	Priority    *string
	Status      *string
	CategoryID  *string
}

type ListTasksRequest struct {
	Status   string
	Priority string
	Search   string
	DueDate  string
	Overdue  bool
	DueToday bool
	SortBy   string
}

type PriorityBreakdown struct {
	High   int
	Medium int
	Low    int
}

type Statistics struct {
	TotalTasks        int
	PendingTasks      int
	CompletedTasks    int
	OverdueTasks      int
	DueToday          int
	PriorityBreakdown PriorityBreakdown
	CompletionRate    float64
}

type BulkUpdateRequest struct {
	TaskIDs  []string
	Status   *string
	Priority *string
}

type ExportResponse struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

type Category struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
}

type UpdateCategoryRequest struct {
	ID    string
	Name  *string
	Color *string
}
