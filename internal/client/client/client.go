// Package client is the gRPC client of the task tracker. It attaches the
// access token to every call, transparently refreshes it once when the
// server reports it expired, and maps gRPC statuses back to the errors in
// package common.
package client

import (
	"context"

	"github.com/dmitrijs2005/tasktracker/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
	DeleteAccount(ctx context.Context) error

	CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, req *models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ToggleTask(ctx context.Context, id string) (*models.Task, error)
	ListTasks(ctx context.Context, req *models.ListTasksRequest) ([]models.Task, error)
	Statistics(ctx context.Context) (*models.Statistics, error)
	BulkUpdate(ctx context.Context, req *models.BulkUpdateRequest) (int64, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	ExportTasks(ctx context.Context) (*models.ExportResponse, error)

	CreateCategory(ctx context.Context, name, color string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// Tokens returns the current pair, which changes after Login, Register
	// and every transparent refresh.
	Tokens() (accessToken, refreshToken string)
	SetTokens(accessToken, refreshToken string)
}
