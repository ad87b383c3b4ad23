package cli

import (
	"context"
	"fmt"

	"github.com/lilfaithontrack/abigail-admin/internal/validation"
	pkgapi "github.com/lilfaithontrack/abigail-admin/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем email
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	// Запрашиваем пароль без эха
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return fmt.Errorf("login failed: server returned no token")
	}

	// Сохраняем токен в durable хранилище
	if err := c.session.SetToken(ctx, resp.Token, email); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Email: %s\n", email)
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}
