package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"food-order/models"
	"food-order/store"

	"golang.org/x/crypto/bcrypt"
)

// UserError is a failure whose text is safe to show to the person filling the form.
type UserError string

func (e UserError) Error() string { return string(e) }

const (
	ErrFieldsRequired     UserError = "All fields are required."
	ErrPasswordMismatch   UserError = "Passwords do not match."
	ErrUsernameTaken      UserError = "Username already exists."
	ErrEmailTaken         UserError = "Email already registered."
	ErrInvalidCredentials UserError = "Invalid username or password."
)

var ErrInvalidRole = errors.New("invalid role")

// RegisterInput is the sign-up form as submitted.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Phone     string
	Password1 string
	Password2 string
}

// AuthService owns account creation and credential checks
type AuthService struct {
	store *store.Store
	cost  int
}

// NewAuthService uses bcrypt.DefaultCost when cost is zero.
func NewAuthService(s *store.Store, cost int) *AuthService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{store: s, cost: cost}
}

// Register validates the form and creates a customer account.
func (a *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	for _, v := range []string{in.FirstName, in.LastName, in.Username, in.Email, in.Phone, in.Password1, in.Password2} {
		if v == "" {
			return nil, ErrFieldsRequired
		}
	}
	if in.Password1 != in.Password2 {
		return nil, ErrPasswordMismatch
	}

	user := &models.User{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Role:      models.RoleCustomer,
	}
	if err := a.create(ctx, user, in.Password1); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateAdmin creates a staff or superadmin account.
func (a *AuthService) CreateAdmin(ctx context.Context, username, email, password string, role models.Role) (*models.User, error) {
	if role != models.RoleStaff && role != models.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	user := &models.User{Username: username, Email: email, Role: role}
	if err := a.create(ctx, user, password); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin creates the seed superadmin unless the username already exists.
func (a *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) (created bool, err error) {
	taken, err := a.store.UsernameExists(ctx, username)
	if err != nil || taken {
		return false, err
	}
	if email == "" {
		email = username + "@localhost"
	}
	if _, err := a.CreateAdmin(ctx, username, email, password, models.RoleSuperAdmin); err != nil {
		return false, err
	}
	return true, nil
}

func (a *AuthService) create(ctx context.Context, user *models.User, password string) error {
	taken, err := a.store.UsernameExists(ctx, user.Username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}
	taken, err = a.store.EmailExists(ctx, user.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	return a.store.CreateUser(ctx, user)
}

// Authenticate returns the user whose password matches, or ErrInvalidCredentials.
func (a *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := a.store.UserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
