package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/client"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/domain"
	"github.com/taskapp/taskapp/internal/output"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Task management commands",
}

var listTasksCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all tasks",
	Example: fmt.Sprintf(`  - %s tasks list`, constants.ProjectName),
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			return NewTasksService(c, NewOutputWrapper(), outputFormat).ListTasks(ctx)
		})
	},
}

var getTaskCmd = &cobra.Command{
	Use:   "get <task-id>",
	Short: "Show a single task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			return NewTasksService(c, NewOutputWrapper(), outputFormat).GetTask(ctx, args[0])
		})
	},
}

var createTaskCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new task",
	Example: fmt.Sprintf(`  - %s tasks create "Write release notes"
  - %s tasks create "Book flights" --description "before Friday"`, constants.ProjectName, constants.ProjectName),
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			return NewTasksService(c, NewOutputWrapper(), outputFormat).CreateTask(ctx, args[0], taskDescription)
		})
	},
}

var updateTaskCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Change the title or description of a task",
	Example: fmt.Sprintf(`  - %s tasks update 3f2a --title "Write better release notes"`,
		constants.ProjectName),
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		req := api.UpdateTaskRequest{}
		if cmd.Flags().Changed("title") {
			req.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			req.Description = &updateDescription
		}
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			return NewTasksService(c, NewOutputWrapper(), outputFormat).UpdateTask(ctx, args[0], req)
		})
	},
}

var completeTaskCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			return NewTasksService(c, NewOutputWrapper(), outputFormat).CompleteTask(ctx, args[0])
		})
	},
}

var deleteTaskCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		executeWithClient(cmd, func(ctx context.Context, c client.Interface) error {
			return NewTasksService(c, NewOutputWrapper(), outputFormat).DeleteTask(ctx, args[0])
		})
	},
}

var (
	taskDescription   string
	updateTitle       string
	updateDescription string
)

func init() {
	createTaskCmd.Flags().StringVar(&taskDescription, "description", "", "Task description")
	updateTaskCmd.Flags().StringVar(&updateTitle, "title", "", "New task title")
	updateTaskCmd.Flags().StringVar(&updateDescription, "description", "", "New task description")

	tasksCmd.AddCommand(listTasksCmd, getTaskCmd, createTaskCmd, updateTaskCmd, completeTaskCmd, deleteTaskCmd)
	rootCmd.AddCommand(tasksCmd)
}

// TasksService handles task operations and their rendering
type TasksService struct {
	client client.Interface
	output OutputInterface
	format output.Format
}

// NewTasksService creates a new TasksService with the provided dependencies
func NewTasksService(c client.Interface, o OutputInterface, format output.Format) *TasksService {
	return &TasksService{client: c, output: o, format: format}
}

// ListTasks prints every task
func (s *TasksService) ListTasks(ctx context.Context) error {
	resp, err := s.client.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if s.format == output.FormatYAML {
		return s.output.YAML(resp)
	}

	if len(resp.Tasks) == 0 {
		s.output.Infof("No tasks yet")
		return nil
	}

	rows := make([][]string, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		rows = append(rows, []string{
			t.ID,
			t.Title,
			s.output.StatusBadge(t.Completed),
			t.CreatedAt.Format(timeLayout),
		})
	}
	s.output.Table([]string{"ID", "Title", "Status", "Created"}, rows)
	s.output.Blank()
	s.output.Successf("Listed %d task(s)", len(resp.Tasks))
	return nil
}

// GetTask prints a single task
func (s *TasksService) GetTask(ctx context.Context, taskID string) error {
	resp, err := s.client.GetTask(ctx, taskID)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("task %s not found", taskID)
		}
		return fmt.Errorf("failed to get task: %w", err)
	}
	return s.printTask(resp.Task)
}

// CreateTask creates a task and prints it
func (s *TasksService) CreateTask(ctx context.Context, title, description string) error {
	resp, err := s.client.CreateTask(ctx, api.CreateTaskRequest{Title: title, Description: description})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	if s.format == output.FormatTable {
		s.output.Successf("Task created")
	}
	return s.printTask(resp.Task)
}

// UpdateTask applies the supplied fields to a task and prints it
func (s *TasksService) UpdateTask(ctx context.Context, taskID string, req api.UpdateTaskRequest) error {
	if req.Title == nil && req.Description == nil {
		return errors.New("nothing to update, pass --title and/or --description")
	}

	resp, err := s.client.UpdateTask(ctx, taskID, req)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("task %s not found", taskID)
		}
		return fmt.Errorf("failed to update task: %w", err)
	}
	if s.format == output.FormatTable {
		s.output.Successf("Task updated")
	}
	return s.printTask(resp.Task)
}

// CompleteTask marks a task as completed and prints it
func (s *TasksService) CompleteTask(ctx context.Context, taskID string) error {
	resp, err := s.client.CompleteTask(ctx, taskID)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("task %s not found", taskID)
		}
		return fmt.Errorf("failed to complete task: %w", err)
	}
	if s.format == output.FormatTable {
		s.output.Successf("Task completed")
	}
	return s.printTask(resp.Task)
}

// DeleteTask removes a task
func (s *TasksService) DeleteTask(ctx context.Context, taskID string) error {
	resp, err := s.client.DeleteTask(ctx, taskID)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("task %s not found", taskID)
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if s.format == output.FormatYAML {
		return s.output.YAML(resp)
	}
	s.output.Successf("Task %s deleted", s.output.Bold(resp.TaskID))
	return nil
}

func (s *TasksService) printTask(t domain.TaskRecord) error {
	if s.format == output.FormatYAML {
		return s.output.YAML(t)
	}

	s.output.Blank()
	s.output.KeyValue("ID", t.ID)
	s.output.KeyValue("Title", t.Title)
	if t.Description != "" {
		s.output.KeyValue("Description", t.Description)
	}
	s.output.KeyValue("Status", s.output.StatusBadge(t.Completed))
	s.output.KeyValue("Created", t.CreatedAt.Format(timeLayout))
	s.output.KeyValue("Updated", t.UpdatedAt.Format(timeLayout))
	s.output.Blank()
	return nil
}
