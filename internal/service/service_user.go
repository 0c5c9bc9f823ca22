// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/store"
	"github.com/MKhiriev/go-bookshelf/internal/utils"
	"github.com/MKhiriev/go-bookshelf/models"
)

// userService is the concrete implementation of UserService.
// Passwords are hashed with bcrypt before they reach the repository.
type userService struct {
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt cost; zero selects bcrypt.DefaultCost.
	passwordHashCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

// CreateUser hashes the password and stores the user. The returned user
// carries the generated id and user_id.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := s.hashPassword(user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("password hashing failed")
		return models.User{}, err
	}
	user.Password = hash

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created.WithoutPassword(), nil
}

func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.WithoutPassword(), nil
}

// UpdateUser replaces the mutable fields of the user and re-reads it. A
// new password is hashed; an empty one keeps the stored hash.
func (s *userService) UpdateUser(ctx context.Context, id string, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Password != "" {
		hash, err := s.hashPassword(user.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("password hashing failed")
			return models.User{}, err
		}
		user.Password = hash
	}

	res, err := s.userRepository.UpdateUser(ctx, id, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Str("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.User{}, store.ErrUserNotFound
	}

	return s.GetUser(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	res, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("user deletion failed: %w", err)
	}

	return res, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	for i := range users {
		users[i] = users[i].WithoutPassword()
	}

	return users, nil
}

func (s *userService) hashPassword(password string) (string, error) {
	hash, err := utils.HashPassword(password, s.passwordHashCost)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return hash, err
}
