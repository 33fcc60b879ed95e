package client

import (
	"github.com/dmitrijs2005/tasktracker/internal/client/models"
	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
)

func fromUser(u *pb.User) models.User {
	return models.User{
		ID:        u.GetId(),
		Username:  u.GetUsername(),
		Email:     u.GetEmail(),
		FirstName: u.GetFirstName(),
		LastName:  u.GetLastName(),
		CreatedAt: u.GetCreatedAt().AsTime(),
	}
}

func fromTask(t *pb.Task) models.Task {
	res := models.Task{
		ID:          t.GetId(),
		Title:       t.GetTitle(),
		Description: t.GetDescription(),
		DueDate:     t.GetDueDate(),
		Priority:    t.GetPriority(),
		Status:      t.GetStatus(),
		Owner:       models.Owner{ID: t.GetUser().GetId(), Username: t.GetUser().GetUsername()},
		IsOverdue:   t.GetIsOverdue(),
		CreatedAt:   t.GetCreatedAt().AsTime(),
		UpdatedAt:   t.GetUpdatedAt().AsTime(),
	}
	if c := t.GetCategory(); c != nil {
		res.Category = &models.CategoryRef{ID: c.GetId(), Name: c.GetName(), Color: c.GetColor()}
	}
	if t.GetCompletedAt() != nil {
		completed := t.GetCompletedAt().AsTime()
		res.CompletedAt = &completed
	}
	return res
}

func fromTasks(in []*pb.Task) []models.Task {
	res := make([]models.Task, 0, len(in))
	for _, t := range in {
		res = append(res, fromTask(t))
	}
	return res
}

func fromStatistics(st *pb.Statistics) *models.Statistics {
	return &models.Statistics{
		TotalTasks:     int(st.GetTotalTasks()),
		PendingTasks:   int(st.GetPendingTasks()),
		CompletedTasks: int(st.GetCompletedTasks()),
		OverdueTasks:   int(st.GetOverdueTasks()),
		DueToday:       int(st.GetDueToday()),
		PriorityBreakdown: models.PriorityBreakdown{
			High:   int(st.GetPriorityBreakdown().GetHigh()),
			Medium: int(st.GetPriorityBreakdown().GetMedium()),
			Low:    int(st.GetPriorityBreakdown().GetLow()),
		},
		CompletionRate: st.GetCompletionRate(),
	}
}

func fromCategory(c *pb.Category) models.Category {
	return models.Category{ID: c.GetId(), Name: c.GetName(), Color: c.GetColor(), CreatedAt: c.GetCreatedAt().AsTime()}
}

func toCreateTask(req *models.CreateTaskRequest) *pb.CreateTaskRequest {
	return &pb.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		CategoryId:  req.CategoryID,
	}
}

func toUpdateTask(req *models.UpdateTaskRequest) *pb.UpdateTaskRequest {
	return &pb.UpdateTaskRequest{
		Id:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		CategoryId:  req.CategoryID,
	}
}

func toListTasks(req *models.ListTasksRequest) *pb.ListTasksRequest {
	return &pb.ListTasksRequest{
		Status:   req.Status,
		Priority: req.Priority,
		Search:   req.Search,
		DueDate:  req.DueDate,
		Overdue:  req.Overdue,
		DueToday: req.DueToday,
		SortBy:   req.SortBy,
	}
}
