package services

import (
	"context"
	"strings"

	"nagaralert-be/logger"
	"nagaralert-be/models"
	"nagaralert-be/repositories"
)

// SeedSystemAdmin creates an active system admin with the given credentials
// unless a user with that email already exists. Empty credentials skip seeding.
func SeedSystemAdmin(ctx context.Context, users repositories.UserRepositoryInterface, email, password string, passwordCost int, log *logger.Logger) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		log.Debug("default admin credentials not set, skipping seed")
		return nil
	}

	exists, err := users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin := &models.User{
		Name:     "System Administrator",
		Email:    email,
		Password: password,
		Role:     models.RoleSystemAdmin,
		Status:   models.UserActive,
	}
	if err := admin.HashPassword(passwordCost); err != nil {
		return err
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.WithField("email", email).Info("default system admin created")
	return nil
}
