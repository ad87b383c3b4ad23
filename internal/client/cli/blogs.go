package cli

import (
	"fmt"
	"strconv"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/form"
	"github.com/lilfaithontrack/abigail-admin/internal/client/resource"
	"github.com/lilfaithontrack/abigail-admin/internal/models"
)

func newBlogKind(c *Cli, store *resource.Store[models.Blog]) kind[models.Blog] {
	return kind[models.Blog]{
		name:  "blog post",
		store: store,
		schema: form.Schema{
			Kind: "blog post",
			Fields: []form.Field{
				{Name: "title", Label: "Title", Type: form.TextField, Required: true},
				{Name: "author", Label: "Author", Type: form.TextField, Required: true},
				{Name: "excerpt", Label: "Excerpt", Type: form.TextField, Required: true},
				{Name: "content", Label: "Content (HTML)", Type: form.LongTextField, Required: true},
				{Name: "authorBio", Label: "Author bio", Type: form.TextField},
				{Name: "tags", Label: "Tags (comma-separated)", Type: form.ListField},
				{Name: "category", Label: "Category", Type: form.TextField},
				{Name: "featured", Label: "Featured", Type: form.BoolField, Default: "no"},
				{Name: "status", Label: "Status", Type: form.SelectField, Default: "draft",
					Options: []string{"draft", "published", "archived"}},
				{Name: "seoTitle", Label: "SEO title", Type: form.TextField},
				{Name: "seoDescription", Label: "SEO description", Type: form.TextField},
				{Name: "seoKeywords", Label: "SEO keywords (comma-separated)", Type: form.ListField},
				{Name: "image", Label: "Image file path", Type: form.FileField},
			},
		},
		payload: func(d *form.Draft) (api.Payload, error) {
			fields := map[string]string{
				"title":    d.Get("title"),
				"author":   d.Get("author"),
				"excerpt":  d.Get("excerpt"),
				"content":  d.Get("content"),
				"tags":     form.JoinList(d.List("tags")),
				"status":   d.Get("status"),
				"featured": strconv.FormatBool(d.Bool("featured")),
			}
			if v := d.Get("authorBio"); v != "" {
				fields["authorBio"] = v
			}
			if v := d.Get("category"); v != "" {
				fields["category"] = v
			}
			if v := d.Get("seoTitle"); v != "" {
				fields["seoTitle"] = v
			}
			if v := d.Get("seoDescription"); v != "" {
				fields["seoDescription"] = v
			}
			if keywords := d.List("seoKeywords"); len(keywords) > 0 {
				fields["seoKeywords"] = form.JoinList(keywords)
			}

			file, err := imagePart(d.Get("image"))
			if err != nil {
				return api.Payload{}, err
			}
			return api.FormPayload(fields, file), nil
		},
		seed: func(b models.Blog) map[string]string {
			return map[string]string{
				"title":          b.Title,
				"author":         b.Author,
				"excerpt":        b.Excerpt,
				"content":        b.Content,
				"authorBio":      b.AuthorBio,
				"tags":           form.JoinList(b.Tags),
				"category":       b.Category,
				"featured":       strconv.FormatBool(b.Featured),
				"status":         b.Status,
				"seoTitle":       b.SEOTitle,
				"seoDescription": b.SEODescription,
				"seoKeywords":    form.JoinList(b.SEOKeywords),
			}
		},
		search: func(b models.Blog) []string {
			return []string{b.Title, b.Author, b.Category, form.JoinList(b.Tags)}
		},
		filters: []filterSpec[models.Blog]{
			{flag: "status", field: func(b models.Blog) string { return b.Status }},
			{flag: "category", field: func(b models.Blog) string { return b.Category }},
		},
		stats: func(blogs []models.Blog) string {
			published, drafts := 0, 0
			for _, b := range blogs {
				switch b.Status {
				case "published":
					published++
				case "draft":
					drafts++
				}
			}
			return fmt.Sprintf("Stats: %d total, %d published, %d draft(s)", len(blogs), published, drafts)
		},
		summary: func(b models.Blog) []string {
			return []string{
				"Title:  " + b.Title,
				"Author: " + b.Author,
				"Status: " + b.Status,
			}
		},
		listTmpl:   mustTemplate("blog list", blogListTemplate, c.funcs),
		detailTmpl: mustTemplate("blog details", blogDetailTemplate, c.funcs),
	}
}
