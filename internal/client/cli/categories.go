package cli

import (
	"strconv"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/form"
	"github.com/lilfaithontrack/abigail-admin/internal/client/resource"
	"github.com/lilfaithontrack/abigail-admin/internal/models"
)

// findCategory ищет категорию по id рекурсивно, включая подкатегории
func findCategory(items []models.Category, id string) (*models.Category, bool) {
	for i := range items {
		if items[i].ID == id {
			return &items[i], true
		}
		if sub, ok := findCategory(items[i].Subcategories, id); ok {
			return sub, true
		}
	}
	return nil, false
}

func newCategoryKind(c *Cli, store *resource.Store[models.Category]) kind[models.Category] {
	return kind[models.Category]{
		name:  "category",
		store: store,
		schema: form.Schema{
			Kind: "category",
			Fields: []form.Field{
				{Name: "name", Label: "Name", Type: form.TextField, Required: true},
				{Name: "description", Label: "Description", Type: form.LongTextField},
				{Name: "icon", Label: "Icon", Type: form.TextField},
				{Name: "color", Label: "Color", Type: form.TextField},
				{Name: "parentCategory", Label: "Parent category ID", Type: form.TextField},
				{Name: "priority", Label: "Priority", Type: form.NumberField, Default: "0"},
				{Name: "featured", Label: "Featured", Type: form.BoolField, Default: "no"},
				{Name: "status", Label: "Status", Type: form.SelectField, Default: "active",
					Options: []string{"active", "inactive"}},
			},
		},
		payload: func(d *form.Draft) (api.Payload, error) {
			// Категории без загрузки файлов, тело обычный JSON
			body := map[string]any{
				"name":     d.Get("name"),
				"priority": d.Int("priority"),
				"featured": d.Bool("featured"),
				"status":   d.Get("status"),
			}
			if v := d.Get("description"); v != "" {
				body["description"] = v
			}
			if v := d.Get("icon"); v != "" {
				body["icon"] = v
			}
			if v := d.Get("color"); v != "" {
				body["color"] = v
			}
			if v := d.Get("parentCategory"); v != "" {
				body["parentCategory"] = v
			}
			return api.JSONPayload(body), nil
		},
		seed: func(cat models.Category) map[string]string {
			values := map[string]string{
				"name":        cat.Name,
				"description": cat.Description,
				"icon":        cat.Icon,
				"color":       cat.Color,
				"priority":    strconv.Itoa(cat.Priority),
				"featured":    strconv.FormatBool(cat.Featured),
				"status":      cat.Status,
			}
			if cat.ParentCategory != nil {
				values["parentCategory"] = cat.ParentCategory.ID
			}
			return values
		},
		search: func(cat models.Category) []string {
			return []string{cat.Name, cat.Description, cat.Slug}
		},
		// Endpoint hierarchy вкладывает подкатегории в родителей,
		// поэтому поиск по id обходит всё дерево
		find: func(items []models.Category, id string) (*models.Category, bool) {
			return findCategory(items, id)
		},
		filters: []filterSpec[models.Category]{
			{flag: "status", field: func(cat models.Category) string { return cat.Status }},
		},
		summary: func(cat models.Category) []string {
			return []string{
				"Name:     " + cat.Name,
				"Status:   " + cat.Status,
				"Services: " + strconv.Itoa(cat.ServiceCount),
			}
		},
		listTmpl:   mustTemplate("category list", categoryListTemplate, c.funcs),
		detailTmpl: mustTemplate("category details", categoryDetailTemplate, c.funcs),
	}
}
