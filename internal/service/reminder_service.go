package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// ReminderService builds human-readable due-date summaries for periodic
// reports. Done tasks are skipped; the rest are split into overdue, due-soon
// and open buckets.
type ReminderService struct {
	tasks      *repository.TaskRepository
	categories *repository.CategoryRepository
}

func NewReminderService(tasks *repository.TaskRepository, categories *repository.CategoryRepository) *ReminderService {
	return &ReminderService{tasks: tasks, categories: categories}
}

// dueSoonWindow is how far ahead a due date counts as "due soon".
const dueSoonWindow = 48 * time.Hour

func (s *ReminderService) DailySummary(ctx context.Context, user model.User, now time.Time) (string, error) {
	tasks, err := s.tasks.ListByUser(ctx, user.ID, model.TaskFilter{})
	if err != nil {
		return "", err
	}

	categories, err := s.categories.ListByUser(ctx, user.ID)
	if err != nil {
		return "", err
	}
	catNames := make(map[uint]string, len(categories))
	for _, cat := range categories {
		catNames[cat.ID] = cat.Name
	}

	var overdue, dueSoon, open []model.Task
	for _, task := range tasks {
		if task.StatusID == model.StatusDone {
			continue
		}
		switch {
		case task.DueDate != nil && now.After(*task.DueDate):
			overdue = append(overdue, task)
		case task.DueDate != nil && task.DueDate.Sub(now) <= dueSoonWindow:
			dueSoon = append(dueSoon, task)
		default:
			open = append(open, task)
		}
	}

	byDueDate := func(tasks []model.Task) {
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			switch {
			case a == nil && b == nil:
				return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	}
	byDueDate(overdue)
	byDueDate(dueSoon)
	byDueDate(open)

	if len(overdue)+len(dueSoon)+len(open) == 0 {
		return "", nil
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "Daily summary for %s (%s)\n", user.Name, now.Format("2006-01-02"))

	writeSection := func(label string, tasks []model.Task) {
		fmt.Fprintf(&builder, "%s (%d)\n", label, len(tasks))
		for _, task := range tasks {
			builder.WriteString("  - " + task.Title)
			if task.CategoryID != nil {
				if name := strings.TrimSpace(catNames[*task.CategoryID]); name != "" {
					builder.WriteString(" [" + name + "]")
				}
			}
			if task.DueDate != nil {
				builder.WriteString(" due " + task.DueDate.Format("2006-01-02"))
			}
			builder.WriteByte('\n')
		}
	}

	writeSection("Overdue", overdue)
	writeSection("Due soon", dueSoon)
	writeSection("Open", open)

	return strings.TrimSpace(builder.String()), nil
}
