package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"ecommerce-backend/internal/auth"
	"ecommerce-backend/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// UserRepository is the slice of the persistence layer the user service needs.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	EmailTaken(ctx context.Context, email string, excludeID int) (bool, error)
	UsernameTaken(ctx context.Context, username string, excludeID int) (bool, error)
	List(ctx context.Context) ([]*entity.User, error)
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int) (bool, error)
}

type TokenIssuer interface {
	Generate(identity string, role entity.Role) (string, error)
}

type UserService struct {
	repo   UserRepository
	hasher auth.PasswordHasher
	tokens TokenIssuer
}

func NewUserService(repo UserRepository, hasher auth.PasswordHasher, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, hasher: hasher, tokens: tokens}
}

type RegisterInput struct {
	FullName   string
	Username   string
	Email      string
	Password   string
	ProfilePic string
}

// Register creates a user with the given role. Username and email are
// globally unique across all roles.
func (s *UserService) Register(ctx context.Context, in RegisterInput, role entity.Role) (*entity.User, error) {
	taken, err := s.repo.EmailTaken(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.repo.UsernameTaken(ctx, in.Username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := s.hasher.Hash([]byte(in.Password))
	if err != nil {
		return nil, err
	}

	if in.ProfilePic == "" {
		in.ProfilePic = entity.DefaultProfilePic
	}

	user := &entity.User{
		FullName:      in.FullName,
		Username:      in.Username,
		Email:         in.Email,
		PasswordHash:  string(hash),
		Role:          role,
		AccountStatus: "1",
		ProfilePic:    in.ProfilePic,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		logger.Error().Err(err).Str("email", in.Email).Msg("Error creating user")
		return nil, err
	}
	return created, nil
}

// Login validates email, password and role in one shot: any mismatch is the
// same ErrInvalidCredentials, so callers cannot probe which part failed.
func (s *UserService) Login(ctx context.Context, email, password string, role entity.Role) (*entity.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.hasher.Compare([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if user.Role != role {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(strconv.Itoa(user.ID), user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken signs a fresh token for an already-created user (provider
// registration returns one inline).
func (s *UserService) IssueToken(user *entity.User) (string, error) {
	return s.tokens.Generate(strconv.Itoa(user.ID), user.Role)
}

func (s *UserService) GetProfile(ctx context.Context, id int) (*entity.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

type ProfileUpdate struct {
	FullName      string
	Username      string
	Email         string
	ProfilePic    string
	AccountStatus string
}

// UpdateProfile applies only the non-empty fields. Username and email changes
// are pre-checked for uniqueness against all other users. Returns whether
// anything changed.
func (s *UserService) UpdateProfile(ctx context.Context, id int, in ProfileUpdate) (*entity.User, bool, error) {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, false, err
	}

	updated := false

	if in.FullName != "" {
		user.FullName = in.FullName
		updated = true
	}

	if in.Username != "" && in.Username != user.Username {
		taken, err := s.repo.UsernameTaken(ctx, in.Username, user.ID)
		if err != nil {
			return nil, false, err
		}
		if taken {
			return nil, false, ErrUsernameTaken
		}
		user.Username = in.Username
		updated = true
	}

	if in.Email != "" && in.Email != user.Email {
		taken, err := s.repo.EmailTaken(ctx, in.Email, user.ID)
		if err != nil {
			return nil, false, err
		}
		if taken {
			return nil, false, ErrEmailTaken
		}
		user.Email = in.Email
		updated = true
	}

	if in.ProfilePic != "" {
		user.ProfilePic = in.ProfilePic
		updated = true
	}

	if in.AccountStatus != "" {
		user.AccountStatus = in.AccountStatus
		updated = true
	}

	if !updated {
		return user, false, nil
	}

	if err := s.repo.Update(ctx, user); err != nil {
		logger.Error().Err(err).Int("user_id", id).Msg("Error updating profile")
		return nil, false, err
	}
	return user, true, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int) (*entity.User, error) {
	return s.GetProfile(ctx, id)
}

type AdminCreateUserInput struct {
	FullName      string
	Username      string
	Email         string
	Password      string
	Role          entity.Role
	AccountStatus string
	ProfilePic    string
}

// CreateUser is the admin dashboard create: any role, explicit account status.
func (s *UserService) CreateUser(ctx context.Context, in AdminCreateUserInput) (*entity.User, error) {
	taken, err := s.repo.EmailTaken(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if !taken {
		taken, err = s.repo.UsernameTaken(ctx, in.Username, 0)
		if err != nil {
			return nil, err
		}
	}
	if taken {
		return nil, ErrUserExists
	}

	hash, err := s.hasher.Hash([]byte(in.Password))
	if err != nil {
		return nil, err
	}

	if in.AccountStatus == "" {
		in.AccountStatus = "1"
	}
	if in.ProfilePic == "" {
		in.ProfilePic = entity.DefaultProfilePic
	}

	user := &entity.User{
		FullName:      in.FullName,
		Username:      in.Username,
		Email:         in.Email,
		PasswordHash:  string(hash),
		Role:          in.Role,
		AccountStatus: in.AccountStatus,
		ProfilePic:    in.ProfilePic,
	}
	return s.repo.Create(ctx, user)
}

type AdminUpdateUserInput struct {
	FullName      string
	Username      string
	Email         string
	Password      string
	Role          entity.Role
	AccountStatus string
	ProfilePic    string
}

// UpdateUser replaces only the provided (non-empty) fields of any user row.
func (s *UserService) UpdateUser(ctx context.Context, id int, in AdminUpdateUserInput) (*entity.User, error) {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.AccountStatus != "" {
		user.AccountStatus = in.AccountStatus
	}
	if in.ProfilePic != "" {
		user.ProfilePic = in.ProfilePic
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash([]byte(in.Password))
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		logger.Error().Err(err).Int("user_id", id).Msg("Error updating user")
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
