package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/luxe-fashion/luxe-backend/internal/app/model"
	"github.com/luxe-fashion/luxe-backend/internal/kv"
	"github.com/luxe-fashion/luxe-backend/pkg/logger"
	"github.com/luxe-fashion/luxe-backend/pkg/util"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService interface {
	Register(name, email, password string) (*model.User, *util.TokenPair, error)
	Login(email, password string) (*model.User, *util.TokenPair, error)
	Logout()
	CurrentUser() (*model.User, error)
	UpdateProfile(name, phone, address string) (*model.User, error)
}

// userRecord is the persisted shape of the session profile. The hash
// never leaves this package; responses carry the embedded User only.
type userRecord struct {
	model.User
	PasswordHash string `json:"password_hash"`
}

type authService struct {
	store         kv.Store
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(store kv.Store, jwtSecret string, accessExpiry, refreshExpiry time.Duration) AuthService {
	return &authService{
		store:         store,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *authService) Register(name, email, password string) (*model.User, *util.TokenPair, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"email": email,
		"name":  name,
	})

	if existing, ok := s.load(); ok && existing.Email == email {
		logger.Warn("Registration failed: email already registered", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrEmailAlreadyExists
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	record := userRecord{
		User: model.User{
			ID:    uuid.NewString(),
			Name:  name,
			Email: email,
		},
		PasswordHash: hashed,
	}
	s.save(record)

	tokens, err := util.GenerateTokenPair(record.ID, record.Email, s.jwtSecret, s.accessExpiry, s.refreshExpiry)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": record.ID,
		})
		return nil, nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": record.ID,
		"email":   email,
	})

	user := record.User
	return &user, tokens, nil
}

func (s *authService) Login(email, password string) (*model.User, *util.TokenPair, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	record, ok := s.load()
	if !ok || record.Email != email {
		logger.Warn("Login failed: unknown email", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrInvalidCredentials
	}

	if !util.VerifyPassword(record.PasswordHash, password) {
		logger.Warn("Login failed: wrong password", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := util.GenerateTokenPair(record.ID, record.Email, s.jwtSecret, s.accessExpiry, s.refreshExpiry)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": record.ID,
		})
		return nil, nil, err
	}

	logger.Info("Login successful", map[string]interface{}{
		"user_id": record.ID,
		"email":   email,
	})

	user := record.User
	return &user, tokens, nil
}

// Logout drops the persisted session profile.
func (s *authService) Logout() {
	logger.Info("Logging out")
	s.store.Delete(kv.KeyUser)
}

func (s *authService) CurrentUser() (*model.User, error) {
	record, ok := s.load()
	if !ok {
		return nil, ErrUserNotFound
	}
	user := record.User
	return &user, nil
}

func (s *authService) UpdateProfile(name, phone, address string) (*model.User, error) {
	record, ok := s.load()
	if !ok {
		logger.Warn("Profile update failed: no session")
		return nil, ErrUserNotFound
	}

	if name != "" {
		record.Name = name
	}
	if phone != "" {
		record.Phone = phone
	}
	if address != "" {
		record.Address = address
	}
	s.save(record)

	logger.Info("Profile updated", map[string]interface{}{
		"user_id": record.ID,
	})

	user := record.User
	return &user, nil
}

func (s *authService) load() (userRecord, bool) {
	data, ok := s.store.Load(kv.KeyUser)
	if !ok {
		return userRecord{}, false
	}

	var record userRecord
	if err := json.Unmarshal(data, &record); err != nil {
		logger.Warn("Persisted session is malformed, treating as logged out", map[string]interface{}{
			"error": err.Error(),
		})
		return userRecord{}, false
	}
	return record, true
}

func (s *authService) save(record userRecord) {
	data, err := json.Marshal(record)
	if err != nil {
		logger.Warn("Failed to encode session for persistence", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	s.store.Save(kv.KeyUser, data)
}
