package services

import (
	"context"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
)

// BulkUpdate describes a change applied to every task in IDs. At least one of
// Status and Priority must be set.
type BulkUpdate struct {
	IDs      []string
	Status   *string
	Priority *string
}

// storableIDs drops ids that cannot name a stored task and duplicates.
// Like ids of other owners, they simply do not count.
func storableIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup || !validID(id) {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}

// BulkUpdate applies p to the owner's tasks among p.IDs and returns how many
// were updated. Moving to completed stamps every task with the same
// completion time; moving to pending clears it.
//
// Unlike Update, this does not enforce the completed-task edit lock: a
// completed task can have its priority changed here without being reopened.
func (s *TaskService) BulkUpdate(ctx context.Context, ownerID string, p BulkUpdate) (int64, error) {
	v := &common.ValidationError{}
	if len(p.IDs) == 0 {
		v.Add("task_ids", msgRequired)
	}
	if p.Status == nil && p.Priority == nil {
		v.Add("non_field_errors", "either status or priority must be provided")
	}

	now := s.now()
	change := models.BulkChange{UpdatedAt: now}
	if p.Status != nil {
		st := parseStatus(v, *p.Status)
		change.Status = &st
		if st == models.StatusCompleted {
			change.CompletedAt = &now
		}
	}
	if p.Priority != nil {
		pr := parsePriority(v, *p.Priority)
		change.Priority = &pr
	}
	if err := v.OrNil(); err != nil {
		return 0, err
	}

	ids := storableIDs(p.IDs)
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := s.repomanager.Tasks().BulkUpdate(ctx, ownerID, ids, change)
	if err != nil {
		return 0, s.storeErr(ctx, "error updating tasks", err)
	}
	s.logger.Debug(ctx, "bulk update", "user_id", ownerID, "requested", len(p.IDs), "updated", n)
	return n, nil
}

// BulkDelete removes the owner's tasks among ids and returns how many were
// deleted.
func (s *TaskService) BulkDelete(ctx context.Context, ownerID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, common.NewValidationError("task_ids", msgRequired)
	}

	owned := storableIDs(ids)
	if len(owned) == 0 {
		return 0, nil
	}

	n, err := s.repomanager.Tasks().BulkDelete(ctx, ownerID, owned)
	if err != nil {
		return 0, s.storeErr(ctx, "error deleting tasks", err)
	}
	s.logger.Debug(ctx, "bulk delete", "user_id", ownerID, "requested", len(ids), "deleted", n)
	return n, nil
}
