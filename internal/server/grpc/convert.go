package grpc

import (
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toUser(u *models.User) *pb.User {
	return &pb.User{
		Id:        u.ID,
		Username:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: timestamppb.New(u.CreatedAt),
	}
}

// toTask renders t for its owner; is_overdue is computed against today.
// owner carries the stored user name resolved by accessTokenInterceptor.
func toTask(t *models.Task, owner auth.Identity, today time.Time) *pb.Task {
	res := &pb.Task{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.Format(common.DateLayout),
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		User:        &pb.Owner{Id: owner.UserID, Username: owner.UserName},
		IsOverdue:   t.IsOverdue(today),
		CreatedAt:   timestamppb.New(t.CreatedAt),
		UpdatedAt:   timestamppb.New(t.UpdatedAt),
	}
	if t.CompletedAt != nil {
		res.CompletedAt = timestamppb.New(*t.CompletedAt)
	}
	if t.Category != nil {
		res.Category = &pb.CategoryRef{Id: t.Category.ID, Name: t.Category.Name, Color: t.Category.Color}
	}
	return res
}

func toStatistics(st *models.Statistics) *pb.Statistics {
	return &pb.Statistics{
		TotalTasks:     int64(st.Total),
		PendingTasks:   int64(st.Pending),
		CompletedTasks: int64(st.Completed),
		OverdueTasks:   int64(st.Overdue),
		DueToday:       int64(st.DueToday),
		PriorityBreakdown: &pb.PriorityBreakdown{
			High:   int64(st.High),
			Medium: int64(st.Medium),
			Low:    int64(st.Low),
		},
		CompletionRate: st.CompletionRate,
	}
}

func toCategory(c *models.Category) *pb.Category {
	return &pb.Category{Id: c.ID, Name: c.Name, Color: c.Color, CreatedAt: timestamppb.New(c.CreatedAt)}
}
