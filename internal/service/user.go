package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/logger"
	"mrs-backend/internal/repository"
)

type userService struct {
	users   repository.UserRepository
	rentals repository.RentalRepository
}

func NewUserService(users repository.UserRepository, rentals repository.RentalRepository) UserService {
	return &userService{users: users, rentals: rentals}
}

func (s *userService) CreateUser(ctx context.Context, name, firstName string, birthdate time.Time) (*domain.User, error) {
	user, err := domain.NewUser(name, firstName, birthdate)
	if err != nil {
		return nil, err
	}
	user.SetID(uuid.New())
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("user created", "user_id", user.ID(), "name", user.Name())
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetUserByName(ctx context.Context, name string) (*domain.User, error) {
	return s.users.GetByName(ctx, name)
}

func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.GetAll(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, name, firstName string, birthdate time.Time) (*domain.User, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	updated, err := domain.RehydrateUser(id, name, firstName, birthdate)
	if err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.rentals.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrUserHasRentals
	}
	return s.users.Delete(ctx, id)
}

func (s *userService) GetStatement(ctx context.Context, id uuid.UUID) (*Statement, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	rentals, err := s.rentals.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	st := &Statement{Rentals: len(rentals)}
	for _, r := range rentals {
		st.Charge += r.Charge()
		st.FrequentRenterPoints += r.FrequentRenterPoints()
	}
	return st, nil
}
