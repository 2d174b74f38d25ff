package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"github.com/taskapp/taskapp/internal/domain"
	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/logger"
)

// UserKeyAttribute is the partition key of the users table.
const UserKeyAttribute = "userId"

// UserRepository implements the database.UserRepository interface using DynamoDB.
type UserRepository struct {
	table table
}

// NewUserRepository creates a new DynamoDB-backed user repository.
func NewUserRepository(client Client, tableName string, log *slog.Logger) *UserRepository {
	return &UserRepository{
		table: table{client: client, name: tableName, keyAttr: UserKeyAttribute, logger: log},
	}
}

type preferencesItem struct {
	Notifications bool   `dynamodbav:"notifications"`
	Theme         string `dynamodbav:"theme"`
}

// userItem represents the structure stored in DynamoDB.
type userItem struct {
	UserID      string          `dynamodbav:"userId"`
	Email       string          `dynamodbav:"email"`
	PhoneNumber string          `dynamodbav:"phoneNumber,omitempty"`
	Preferences preferencesItem `dynamodbav:"preferences"`
	CreatedAt   time.Time       `dynamodbav:"createdAt"`
	UpdatedAt   *time.Time      `dynamodbav:"updatedAt,omitempty"`
}

func newUserItem(user *domain.User) userItem {
	r := user.Record()
	return userItem{
		UserID:      r.UserID,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Preferences: preferencesItem{
			Notifications: r.Preferences.Notifications,
			Theme:         string(r.Preferences.Theme),
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (i *userItem) toDomain() *domain.User {
	theme, err := domain.ParseTheme(i.Preferences.Theme)
	if err != nil {
		theme = domain.DefaultPreferences().Theme
	}
	return domain.UserFromRecord(domain.UserRecord{
		UserID:      i.UserID,
		Email:       i.Email,
		PhoneNumber: i.PhoneNumber,
		Preferences: domain.Preferences{
			Notifications: i.Preferences.Notifications,
			Theme:         theme,
		},
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	})
}

// Save stores a new profile. It fails with CONFLICT if the user ID is already taken.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	av, err := attributevalue.MarshalMap(newUserItem(user))
	if err != nil {
		return nil, apperrors.ErrInternalError("failed to marshal user item", err)
	}

	cond := expression.AttributeNotExists(expression.Name(UserKeyAttribute))
	if err = r.table.putItem(ctx, user.UserID(), av, cond); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, apperrors.ErrConflict("user with this ID already exists", err)
		}
		return nil, apperrors.ErrDatabaseError("failed to save user", err)
	}

	return user, nil
}

// FindByID retrieves a profile. Returns nil if it does not exist.
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	av, err := r.table.getItem(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrDatabaseError("failed to get user", err)
	}
	if av == nil {
		logger.DeriveRequestLogger(ctx, r.table.logger).Debug("user not found", "user_id", userID)
		return nil, nil
	}

	var item userItem
	if err = attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, apperrors.ErrDatabaseError("failed to unmarshal user",
			fmt.Errorf("unmarshal user item: %w", err))
	}
	return item.toDomain(), nil
}

// FindAll returns every profile in the table.
func (r *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	avs, err := r.table.scanAll(ctx)
	if err != nil {
		return nil, apperrors.ErrDatabaseError("failed to list users", err)
	}

	reqLogger := logger.DeriveRequestLogger(ctx, r.table.logger)
	users := make([]*domain.User, 0, len(avs))
	for _, av := range avs {
		var item userItem
		if err = attributevalue.UnmarshalMap(av, &item); err != nil {
			reqLogger.Warn("failed to unmarshal user item", "error", err)
			continue
		}
		users = append(users, item.toDomain())
	}
	return users, nil
}

// Update replaces an existing profile. It fails with NOT_FOUND if the user does not exist.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	av, err := attributevalue.MarshalMap(newUserItem(user))
	if err != nil {
		return nil, apperrors.ErrInternalError("failed to marshal user item", err)
	}

	cond := expression.AttributeExists(expression.Name(UserKeyAttribute))
	if err = r.table.putItem(ctx, user.UserID(), av, cond); err != nil {
		if isConditionalCheckFailed(err) {
			return nil, apperrors.ErrNotFound("user not found", err)
		}
		return nil, apperrors.ErrDatabaseError("failed to update user", err)
	}

	return user, nil
}

// Delete removes a profile and reports whether it existed.
func (r *UserRepository) Delete(ctx context.Context, userID string) (bool, error) {
	deleted, err := r.table.deleteItem(ctx, userID)
	if err != nil {
		return false, apperrors.ErrDatabaseError("failed to delete user", err)
	}
	return deleted, nil
}
