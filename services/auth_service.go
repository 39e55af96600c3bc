package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"driverledger/models"
	"driverledger/repositories"
)

// GoogleUserInfo is the subset of Google's userinfo response the app uses.
type GoogleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type AuthService struct {
	users  *repositories.UserRepository
	mailer Mailer
}

// NewAuthService builds the service; mailer may be nil to skip welcome emails.
func NewAuthService(db *gorm.DB, mailer Mailer) *AuthService {
	return &AuthService{users: repositories.NewUserRepository(db), mailer: mailer}
}

func (s *AuthService) Register(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.users.FindByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hash := string(hashed)

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: &hash,
		Name:         models.NameFromEmail(email),
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.mailer != nil {
		go func() {
			if err := s.mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
				slog.Warn("failed to send welcome email", "email", user.Email, "error", err)
			}
		}()
	}

	return user, nil
}

// Authenticate checks the credentials. Unknown emails, Google-only accounts
// and wrong passwords all yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpsertGoogleUser links a Google identity to the account with the same
// email, creating the account when none exists. Name and picture are only
// filled in when the account has none.
func (s *AuthService) UpsertGoogleUser(info GoogleUserInfo) (*models.User, error) {
	if info.Email == "" || info.ID == "" {
		return nil, errors.New("google profile lacks id or email")
	}
	googleID := info.ID

	user, err := s.users.FindByEmail(info.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &models.User{
			ID:       uuid.New().String(),
			GoogleID: &googleID,
			Email:    strings.ToLower(info.Email),
			Name:     info.Name,
		}
		if info.Picture != "" {
			user.ProfilePic = &info.Picture
		}
		if user.Name == "" {
			user.Name = models.NameFromEmail(user.Email)
		}
		if err := s.users.Create(user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user.GoogleID = &googleID
	if user.Name == "" {
		user.Name = info.Name
	}
	if user.ProfilePic == nil && info.Picture != "" {
		user.ProfilePic = &info.Picture
	}
	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *AuthService) FindUser(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}
