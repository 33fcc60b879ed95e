package grpc

import (
	"context"
	"fmt"

	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) taskResponse(id auth.Identity, t *models.Task) *pb.Task {
	return toTask(t, id, s.tasks.Today())
}

func (s *GRPCServer) CreateTask(ctx context.Context, req *pb.CreateTaskRequest) (*pb.Task, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.tasks.Create(ctx, id.UserID, services.NewTask{
		Title:       req.GetTitle(),
		Description: req.GetDescription(),
		DueDate:     req.GetDueDate(),
		Priority:    req.GetPriority(),
		Status:      req.GetStatus(),
		CategoryID:  req.GetCategoryId(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return s.taskResponse(id, t), nil
}

func (s *GRPCServer) GetTask(ctx context.Context, req *pb.TaskIdRequest) (*pb.Task, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.tasks.Get(ctx, id.UserID, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return s.taskResponse(id, t), nil
}

func (s *GRPCServer) UpdateTask(ctx context.Context, req *pb.UpdateTaskRequest) (*pb.Task, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.tasks.Update(ctx, id.UserID, req.GetId(), services.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		CategoryID:  req.CategoryId,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return s.taskResponse(id, t), nil
}

func (s *GRPCServer) DeleteTask(ctx context.Context, req *pb.TaskIdRequest) (*pb.MessageResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Delete(ctx, id.UserID, req.GetId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.MessageResponse{Message: "Task deleted"}, nil
}

func (s *GRPCServer) ToggleTask(ctx context.Context, req *pb.TaskIdRequest) (*pb.Task, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.tasks.Toggle(ctx, id.UserID, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return s.taskResponse(id, t), nil
}

func (s *GRPCServer) ListTasks(ctx context.Context, req *pb.ListTasksRequest) (*pb.ListTasksResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx, id.UserID, services.ListParams{
		Status:   req.GetStatus(),
		Priority: req.GetPriority(),
		Search:   req.GetSearch(),
		DueDate:  req.GetDueDate(),
		Overdue:  req.GetOverdue(),
		DueToday: req.GetDueToday(),
		SortBy:   req.GetSortBy(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	today := s.tasks.Today()
	res := &pb.ListTasksResponse{Tasks: make([]*pb.Task, 0, len(tasks))}
	for _, t := range tasks {
		res.Tasks = append(res.Tasks, toTask(t, id, today))
	}
	return res, nil
}

func (s *GRPCServer) GetStatistics(ctx context.Context, req *pb.GetStatisticsRequest) (*pb.Statistics, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.tasks.Statistics(ctx, id.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStatistics(st), nil
}

func (s *GRPCServer) BulkUpdate(ctx context.Context, req *pb.BulkUpdateRequest) (*pb.BulkUpdateResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.tasks.BulkUpdate(ctx, id.UserID, services.BulkUpdate{
		IDs:      req.GetTaskIds(),
		Status:   req.Status,
		Priority: req.Priority,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BulkUpdateResponse{UpdatedCount: n, Message: fmt.Sprintf("%d tasks updated", n)}, nil
}

func (s *GRPCServer) BulkDelete(ctx context.Context, req *pb.BulkDeleteRequest) (*pb.BulkDeleteResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.tasks.BulkDelete(ctx, id.UserID, req.GetTaskIds())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BulkDeleteResponse{DeletedCount: n, Message: fmt.Sprintf("%d tasks deleted", n)}, nil
}

func (s *GRPCServer) ExportTasks(ctx context.Context, req *pb.ExportTasksRequest) (*pb.ExportResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	exp, err := s.exports.Export(ctx, id.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ExportResponse{Key: exp.Key, Url: exp.URL, ExpiresAt: timestamppb.New(exp.ExpiresAt)}, nil
}
