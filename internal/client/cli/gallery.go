package cli

import (
	"strconv"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/form"
	"github.com/lilfaithontrack/abigail-admin/internal/client/resource"
	"github.com/lilfaithontrack/abigail-admin/internal/models"
)

func newGalleryKind(c *Cli, store *resource.Store[models.GalleryImage]) kind[models.GalleryImage] {
	return kind[models.GalleryImage]{
		name:  "gallery image",
		store: store,
		schema: form.Schema{
			Kind: "gallery image",
			Fields: []form.Field{
				{Name: "title", Label: "Title", Type: form.TextField, Required: true},
				// Файл обязателен только при создании, проверка в validateCreate
				{Name: "image", Label: "Image file path", Type: form.FileField},
				{Name: "description", Label: "Description", Type: form.LongTextField},
				{Name: "category", Label: "Category", Type: form.TextField},
				{Name: "tags", Label: "Tags (comma-separated)", Type: form.ListField},
				{Name: "altText", Label: "Alt text", Type: form.TextField},
				{Name: "caption", Label: "Caption", Type: form.TextField},
				{Name: "priority", Label: "Priority", Type: form.NumberField, Default: "0"},
				{Name: "featured", Label: "Featured", Type: form.BoolField, Default: "no"},
				{Name: "status", Label: "Status", Type: form.SelectField, Default: "active",
					Options: []string{"active", "inactive", "featured"}},
			},
		},
		validateCreate: func(d *form.Draft) error {
			if d.Get("image") == "" {
				return &form.ValidationError{Missing: []string{"Image file path"}}
			}
			return nil
		},
		payload: func(d *form.Draft) (api.Payload, error) {
			fields := map[string]string{
				"title":    d.Get("title"),
				"priority": strconv.Itoa(d.Int("priority")),
				"featured": strconv.FormatBool(d.Bool("featured")),
				"status":   d.Get("status"),
			}
			if v := d.Get("description"); v != "" {
				fields["description"] = v
			}
			if v := d.Get("category"); v != "" {
				fields["category"] = v
			}
			if v := d.Get("altText"); v != "" {
				fields["altText"] = v
			}
			if v := d.Get("caption"); v != "" {
				fields["caption"] = v
			}
			if tags := d.List("tags"); len(tags) > 0 {
				fields["tags"] = form.JoinList(tags)
			}

			file, err := imagePart(d.Get("image"))
			if err != nil {
				return api.Payload{}, err
			}
			return api.FormPayload(fields, file), nil
		},
		seed: func(g models.GalleryImage) map[string]string {
			return map[string]string{
				"title":       g.Title,
				"description": g.Description,
				"category":    g.Category,
				"tags":        form.JoinList(g.Tags),
				"altText":     g.AltText,
				"caption":     g.Caption,
				"priority":    strconv.Itoa(g.Priority),
				"featured":    strconv.FormatBool(g.Featured),
				"status":      g.Status,
				// image не заполняется: при правке файл перезаливается
				// только если указан новый путь
			}
		},
		search: func(g models.GalleryImage) []string {
			return []string{g.Title, g.Description, g.Category, form.JoinList(g.Tags)}
		},
		filters: []filterSpec[models.GalleryImage]{
			{flag: "status", field: func(g models.GalleryImage) string { return g.Status }},
			{flag: "category", field: func(g models.GalleryImage) string { return g.Category }},
		},
		summary: func(g models.GalleryImage) []string {
			return []string{
				"Title:    " + g.Title,
				"Category: " + g.Category,
				"Status:   " + g.Status,
			}
		},
		listTmpl:   mustTemplate("gallery list", galleryListTemplate, c.funcs),
		detailTmpl: mustTemplate("gallery details", galleryDetailTemplate, c.funcs),
	}
}
