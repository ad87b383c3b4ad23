package cli

import (
	"fmt"
	"strconv"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/form"
	"github.com/lilfaithontrack/abigail-admin/internal/client/resource"
	"github.com/lilfaithontrack/abigail-admin/internal/models"
)

func newServiceKind(c *Cli, store *resource.Store[models.Service]) kind[models.Service] {
	return kind[models.Service]{
		name:  "service",
		store: store,
		schema: form.Schema{
			Kind: "service",
			Fields: []form.Field{
				{Name: "title", Label: "Title", Type: form.TextField, Required: true},
				{Name: "shortDescription", Label: "Short description", Type: form.TextField, Required: true},
				{Name: "description", Label: "Description", Type: form.LongTextField, Required: true},
				{Name: "serviceType", Label: "Service type", Type: form.TextField, Required: true},
				{Name: "category", Label: "Category", Type: form.TextField},
				{Name: "subcategory", Label: "Subcategory", Type: form.TextField},
				{Name: "features", Label: "Features (comma-separated)", Type: form.ListField},
				{Name: "benefits", Label: "Benefits (comma-separated)", Type: form.ListField},
				{Name: "requirements", Label: "Requirements (comma-separated)", Type: form.ListField},
				{Name: "pricingType", Label: "Pricing type", Type: form.SelectField, Default: "custom",
					Options: []string{"fixed", "per_square_meter", "per_hour", "custom"}},
				{Name: "pricingAmount", Label: "Price amount", Type: form.DecimalField},
				{Name: "pricingCurrency", Label: "Currency", Type: form.TextField, Default: "ETB"},
				{Name: "duration", Label: "Duration", Type: form.TextField},
				{Name: "featured", Label: "Featured", Type: form.BoolField, Default: "no"},
				{Name: "status", Label: "Status", Type: form.SelectField, Default: "active",
					Options: []string{"active", "inactive", "draft"}},
				{Name: "image", Label: "Image file path", Type: form.FileField},
			},
		},
		payload: func(d *form.Draft) (api.Payload, error) {
			pricing := models.Pricing{
				Type:     d.Get("pricingType"),
				Amount:   d.Float("pricingAmount"),
				Currency: d.Get("pricingCurrency"),
			}

			// Списки и pricing уходят JSON строками внутри multipart
			// формы, остальное — обычными полями
			fields := map[string]string{
				"title":            d.Get("title"),
				"shortDescription": d.Get("shortDescription"),
				"description":      d.Get("description"),
				"serviceType":      d.Get("serviceType"),
				"pricing":          jsonField(pricing),
				"status":           d.Get("status"),
				"featured":         strconv.FormatBool(d.Bool("featured")),
			}
			if v := d.Get("category"); v != "" {
				fields["category"] = v
			}
			if v := d.Get("subcategory"); v != "" {
				fields["subcategory"] = v
			}
			if v := d.Get("duration"); v != "" {
				fields["duration"] = v
			}
			if features := d.List("features"); len(features) > 0 {
				fields["features"] = jsonField(features)
			}
			if benefits := d.List("benefits"); len(benefits) > 0 {
				fields["benefits"] = jsonField(benefits)
			}
			if requirements := d.List("requirements"); len(requirements) > 0 {
				fields["requirements"] = jsonField(requirements)
			}

			file, err := imagePart(d.Get("image"))
			if err != nil {
				return api.Payload{}, err
			}
			return api.FormPayload(fields, file), nil
		},
		seed: func(s models.Service) map[string]string {
			values := map[string]string{
				"title":            s.Title,
				"shortDescription": s.ShortDescription,
				"description":      s.Description,
				"serviceType":      s.ServiceType,
				"category":         s.Category,
				"subcategory":      s.Subcategory,
				"features":         form.JoinList(s.Features),
				"benefits":         form.JoinList(s.Benefits),
				"requirements":     form.JoinList(s.Requirements),
				"pricingType":      s.Pricing.Type,
				"pricingCurrency":  s.Pricing.Currency,
				"duration":         s.Duration,
				"featured":         strconv.FormatBool(s.Featured),
				"status":           s.Status,
			}
			if s.Pricing.Amount != 0 {
				values["pricingAmount"] = strconv.FormatFloat(s.Pricing.Amount, 'f', -1, 64)
			}
			return values
		},
		search: func(s models.Service) []string {
			return []string{s.Title, s.ShortDescription, s.Category, s.ServiceType}
		},
		filters: []filterSpec[models.Service]{
			{flag: "status", field: func(s models.Service) string { return s.Status }},
			{flag: "category", field: func(s models.Service) string { return s.Category }},
			{flag: "type", field: func(s models.Service) string { return s.ServiceType }},
		},
		stats: func(services []models.Service) string {
			active := 0
			for _, s := range services {
				if s.Status == "active" {
					active++
				}
			}
			return fmt.Sprintf("Stats: %d total, %d active", len(services), active)
		},
		summary: func(s models.Service) []string {
			return []string{
				"Title:  " + s.Title,
				"Type:   " + s.ServiceType,
				"Status: " + s.Status,
			}
		},
		listTmpl:   mustTemplate("service list", serviceListTemplate, c.funcs),
		detailTmpl: mustTemplate("service details", serviceDetailTemplate, c.funcs),
	}
}
