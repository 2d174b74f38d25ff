// Package database wires the AWS-backed repositories.
package database

import (
	"log/slog"

	awsconfig "github.com/taskapp/taskapp/internal/config/aws"
	"github.com/taskapp/taskapp/internal/database"
	dynamoRepo "github.com/taskapp/taskapp/internal/providers/aws/database/dynamodb"
)

// Repositories bundles all AWS-backed database repositories.
type Repositories struct {
	TaskRepo database.TaskRepository
	UserRepo database.UserRepository
}

// CreateRepositories creates all AWS-backed database repositories from the provided client and configuration.
func CreateRepositories(dynamoClient dynamoRepo.Client, cfg *awsconfig.Config, log *slog.Logger) *Repositories {
	log.Debug("DynamoDB backend configured", "context", map[string]string{
		"tasks_table": cfg.TasksTable,
		"users_table": cfg.UsersTable,
	})

	return &Repositories{
		TaskRepo: dynamoRepo.NewTaskRepository(dynamoClient, cfg.TasksTable, log),
		UserRepo: dynamoRepo.NewUserRepository(dynamoClient, cfg.UsersTable, log),
	}
}
