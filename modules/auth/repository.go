package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/KodFikirSanat/focussuite/domain/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when a user already exists.
	ErrUserExists = errors.New("user with this email already exists")
)

// userRow mirrors the users table. Timestamps are stored as RFC 3339 text.
type userRow struct {
	UserID       string `gorm:"column:user_id;primaryKey"`
	UserName     string `gorm:"column:user_name"`
	UserPassword string `gorm:"column:user_password"`
	UserMail     string `gorm:"column:user_mail"`
	CreatedAt    string `gorm:"column:created_at"`
}

func (userRow) TableName() string {
	return "users"
}

func (r userRow) toEntity() (*domain.User, error) {
	id, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("user id %q: %w", r.UserID, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("user %s created_at: %w", r.UserID, err)
	}
	return &domain.User{
		ID:           id,
		Name:         r.UserName,
		Email:        r.UserMail,
		PasswordHash: r.UserPassword,
		CreatedAt:    createdAt.UTC(),
	}, nil
}

// UserRepository handles user persistence using GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. A taken email yields ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	row := userRow{
		UserID:       user.ID.String(),
		UserName:     user.Name,
		UserPassword: user.PasswordHash,
		UserMail:     user.Email,
		CreatedAt:    user.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// FindByID finds a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "user_id = ?", id.String())
}

// FindByEmail finds a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "user_mail = ?", email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return row.toEntity()
}
