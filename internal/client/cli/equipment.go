package cli

import (
	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/form"
	"github.com/lilfaithontrack/abigail-admin/internal/client/resource"
	"github.com/lilfaithontrack/abigail-admin/internal/models"
)

func newEquipmentKind(c *Cli, store *resource.Store[models.Equipment]) kind[models.Equipment] {
	return kind[models.Equipment]{
		name:  "equipment",
		store: store,
		schema: form.Schema{
			Kind: "equipment",
			Fields: []form.Field{
				{Name: "name", Label: "Name", Type: form.TextField, Required: true},
				{Name: "description", Label: "Description", Type: form.LongTextField},
				{Name: "category", Label: "Category", Type: form.TextField},
				{Name: "equipmentType", Label: "Equipment type", Type: form.TextField},
				{Name: "status", Label: "Status", Type: form.SelectField, Default: "active",
					Options: []string{"active", "inactive", "maintenance"}},
				{Name: "condition", Label: "Condition", Type: form.SelectField, Default: "good",
					Options: []string{"excellent", "good", "fair", "poor"}},
				{Name: "image", Label: "Image file path", Type: form.FileField},
			},
		},
		payload: func(d *form.Draft) (api.Payload, error) {
			fields := map[string]string{
				"name":      d.Get("name"),
				"status":    d.Get("status"),
				"condition": d.Get("condition"),
			}
			if v := d.Get("description"); v != "" {
				fields["description"] = v
			}
			if v := d.Get("category"); v != "" {
				fields["category"] = v
			}
			if v := d.Get("equipmentType"); v != "" {
				fields["equipmentType"] = v
			}

			file, err := imagePart(d.Get("image"))
			if err != nil {
				return api.Payload{}, err
			}
			return api.FormPayload(fields, file), nil
		},
		seed: func(e models.Equipment) map[string]string {
			return map[string]string{
				"name":          e.Name,
				"description":   e.Description,
				"category":      e.Category,
				"equipmentType": e.EquipmentType,
				"status":        e.Status,
				"condition":     e.Condition,
			}
		},
		search: func(e models.Equipment) []string {
			return []string{e.Name, e.Description, e.Category, e.EquipmentType}
		},
		filters: []filterSpec[models.Equipment]{
			{flag: "status", field: func(e models.Equipment) string { return e.Status }},
			{flag: "condition", field: func(e models.Equipment) string { return e.Condition }},
			{flag: "category", field: func(e models.Equipment) string { return e.Category }},
		},
		summary: func(e models.Equipment) []string {
			return []string{
				"Name:      " + e.Name,
				"Status:    " + e.Status,
				"Condition: " + e.Condition,
			}
		},
		listTmpl:   mustTemplate("equipment list", equipmentListTemplate, c.funcs),
		detailTmpl: mustTemplate("equipment details", equipmentDetailTemplate, c.funcs),
	}
}
