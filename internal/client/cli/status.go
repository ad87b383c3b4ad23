package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	isAuth, err := c.session.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'abigail-admin login' to authenticate.")
		return nil
	}

	info, err := c.session.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session info: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Email:     %s\n", info.Email)
	c.io.Printf("Logged in: %s\n", info.SavedAt.Format(time.RFC3339))

	// Срок действия известен только для JWT токенов; истечение
	// непрозрачного токена обнаруживается по 401 от сервера
	if info.IsJWT {
		c.io.Printf("Token expires: %s\n", info.ExpiresAt.Format(time.RFC3339))
		if remaining := time.Until(info.ExpiresAt); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	return nil
}
