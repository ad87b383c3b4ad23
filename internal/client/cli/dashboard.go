package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/lilfaithontrack/abigail-admin/internal/models"
)

func (c *Cli) runDashboard(ctx context.Context) error {
	c.io.Println("=== Dashboard ===")
	c.io.Println()

	if err := c.blogs.store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load blog posts: %w", err)
	}
	if err := c.services.store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load services: %w", err)
	}

	blogs := c.blogs.store.Items()
	published := 0
	for _, b := range blogs {
		if b.Status == "published" {
			published++
		}
	}

	services := c.services.store.Items()
	active := 0
	for _, s := range services {
		if s.Status == "active" {
			active++
		}
	}

	c.io.Printf("Blog posts: %d total, %d published\n", len(blogs), published)
	c.io.Printf("Services:   %d total, %d active\n", len(services), active)

	if recent := recentBlogs(blogs, 3); len(recent) > 0 {
		c.io.Println()
		c.io.Println("Recent blog posts:")
		for _, b := range recent {
			c.io.Printf("  - %s\n", b.Title)
		}
	}

	return nil
}

// recentBlogs возвращает n последних постов по createdAt.
// Метки времени ISO 8601, достаточно лексикографического сравнения.
func recentBlogs(blogs []models.Blog, n int) []models.Blog {
	sorted := slices.Clone(blogs)
	slices.SortStableFunc(sorted, func(a, b models.Blog) int {
		return strings.Compare(b.CreatedAt, a.CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
