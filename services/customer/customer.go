package customer

import (
	"context"
	"fmt"
	"time"

	customerRepo "bakehouse/database/repository/customer"
	"bakehouse/models"
	"bakehouse/utils"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// CustomerService manages storefront accounts and session tokens.
type CustomerService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	SignIn(ctx context.Context, req models.SignInRequest) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
	RevokeToken(ctx context.Context, token string) error
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo      customerRepo.CustomerRepository
	AuthCache *redis.Client
}

// Register creates an account with a bcrypt password hash and signs the
// customer in.
func (s *DefaultCustomerService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if existing, _ := s.Repo.GetByEmail(ctx, req.Email); existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	c := &models.Customer{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return s.issueToken(ctx, c)
}

// SignIn verifies the password and issues a fresh token.
func (s *DefaultCustomerService) SignIn(ctx context.Context, req models.SignInRequest) (*models.AuthResponse, error) {
	c, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issueToken(ctx, c)
}

func (s *DefaultCustomerService) issueToken(ctx context.Context, c *models.Customer) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(c.ID, c.Email, c.Admin, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	// The token hash lives in the auth cache; middleware treats a missing
	// entry as a revoked session.
	if s.AuthCache != nil {
		key := utils.AuthCachePrefix + utils.HashToken(token)
		if err := s.AuthCache.Set(ctx, key, c.ID, tokenTTL).Err(); err != nil {
			return nil, fmt.Errorf("failed to cache session: %w", err)
		}
	}
	return &models.AuthResponse{Token: token, Customer: *c}, nil
}

func (s *DefaultCustomerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCustomerService) UpdateFCMToken(ctx context.Context, id, token string) error {
	return s.Repo.UpdateFCMToken(ctx, id, token)
}

// RevokeToken drops the session from the auth cache.
func (s *DefaultCustomerService) RevokeToken(ctx context.Context, token string) error {
	if s.AuthCache == nil {
		return nil
	}
	return s.AuthCache.Del(ctx, utils.AuthCachePrefix+utils.HashToken(token)).Err()
}
