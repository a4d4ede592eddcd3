package services

import (
	"strings"
	"time"

	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/pkg/apperr"
	"github.com/Antdol/LittleLemonAPI/repository"
	"github.com/Antdol/LittleLemonAPI/utils"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for any username/password miss.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles registration and login.
type AuthService struct {
	userRepo  *repository.UserRepository
	groups    *repository.GroupRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, groups *repository.GroupRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		groups:    groups,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type RegisterIn struct {
	Username string `json:"username" binding:"required,min=1,max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Profile struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	IsAdmin  bool     `json:"is_admin"`
	Groups   []string `json:"groups"`
}

// Register creates a customer account.
func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	return s.CreateUser(in, false)
}

// CreateUser is Register with control over the admin flag, for the CLI.
func (s *AuthService) CreateUser(in *RegisterIn, admin bool) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, apperr.Validation("username: this field may not be blank")
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, errors.Wrap(err, "check username")
	}
	if count > 0 {
		return nil, apperr.Validation("A user with that username already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	user := &entity.User{
		Username: username,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: string(hashed),
		IsAdmin:  admin,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return user, nil
}

// Login checks the password and issues a token.
func (s *AuthService) Login(in *LoginIn) (string, *entity.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(in.Username))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.Wrap(err, "generate token")
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*Profile, error) {
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "load user")
	}
	roles, err := s.groups.RolesOf(userID)
	if err != nil {
		return nil, errors.Wrap(err, "load roles")
	}
	if roles == nil {
		roles = []string{}
	}
	return &Profile{ID: u.ID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin, Groups: roles}, nil
}
