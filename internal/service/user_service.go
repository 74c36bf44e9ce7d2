package service

import (
	"errors"

	"github.com/google/uuid"

	"keude/internal/model"
	"keude/internal/repository"
)

var ErrUsernameExists = errors.New("username already exists")

type UserService interface {
	CreateUser(req *CreateUserRequest) (*model.UserResponse, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error)
	DeleteUser(userID uuid.UUID) error
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	RoleCode string `json:"role_code" validate:"required,oneof=ADMIN STAF"`
}

type UpdateUserRequest struct {
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName string  `json:"full_name" validate:"required"`
	RoleCode string  `json:"role_code" validate:"required,oneof=ADMIN STAF"`
	IsActive *bool   `json:"is_active"`
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo}
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.UserResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, _ := s.userRepo.FindByUsername(req.Username)
	if existing != nil {
		return nil, ErrUsernameExists
	}

	role, err := s.roleRepo.FindByCode(req.RoleCode)
	if err != nil {
		return nil, errors.New("role not found")
	}

	user := &model.User{
		Username: req.Username,
		FullName: req.FullName,
		RoleID:   &role.ID,
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	// Privileges follow the role.
	user.Privileges = role.Privileges

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	created, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return nil, err
	}
	resp := created.ToResponse()
	return &resp, nil
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	role, err := s.roleRepo.FindByCode(req.RoleCode)
	if err != nil {
		return nil, errors.New("role not found")
	}

	user.FullName = req.FullName
	user.RoleID = &role.ID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}
	user.Privileges = role.Privileges

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	resp := updated.ToResponse()
	return &resp, nil
}

func (s *userService) DeleteUser(userID uuid.UUID) error {
	return s.userRepo.Delete(userID)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}
