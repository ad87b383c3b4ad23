package cli

import (
	"strconv"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/form"
	"github.com/lilfaithontrack/abigail-admin/internal/client/resource"
	"github.com/lilfaithontrack/abigail-admin/internal/models"
)

func newClientKind(c *Cli, store *resource.Store[models.Client]) kind[models.Client] {
	return kind[models.Client]{
		name:  "client",
		store: store,
		schema: form.Schema{
			Kind: "client",
			Fields: []form.Field{
				{Name: "companyName", Label: "Company name", Type: form.TextField, Required: true},
				{Name: "contactName", Label: "Contact person", Type: form.TextField, Required: true},
				{Name: "contactPhone", Label: "Contact phone", Type: form.TextField, Required: true},
				{Name: "contactEmail", Label: "Contact email", Type: form.TextField},
				{Name: "contactPosition", Label: "Contact position", Type: form.TextField},
				{Name: "industry", Label: "Industry", Type: form.TextField},
				{Name: "website", Label: "Website", Type: form.TextField},
				{Name: "address", Label: "Address", Type: form.TextField},
				{Name: "city", Label: "City", Type: form.TextField},
				{Name: "services", Label: "Services (comma-separated)", Type: form.ListField},
				{Name: "priority", Label: "Priority", Type: form.SelectField, Default: "medium",
					Options: []string{"low", "medium", "high", "vip"}},
				{Name: "status", Label: "Status", Type: form.SelectField, Default: "active",
					Options: []string{"active", "inactive"}},
				{Name: "notes", Label: "Notes", Type: form.LongTextField},
			},
		},
		payload: func(d *form.Draft) (api.Payload, error) {
			body := map[string]any{
				"companyName": d.Get("companyName"),
				"contactPerson": models.ContactPerson{
					Name:     d.Get("contactName"),
					Phone:    d.Get("contactPhone"),
					Email:    d.Get("contactEmail"),
					Position: d.Get("contactPosition"),
				},
				"companyInfo": models.CompanyInfo{
					Industry: d.Get("industry"),
					Website:  d.Get("website"),
					Address:  d.Get("address"),
					City:     d.Get("city"),
				},
				"priority": d.Get("priority"),
				"status":   d.Get("status"),
			}
			if services := d.List("services"); len(services) > 0 {
				body["services"] = services
			}
			if v := d.Get("notes"); v != "" {
				body["notes"] = v
			}
			return api.JSONPayload(body), nil
		},
		seed: func(cl models.Client) map[string]string {
			return map[string]string{
				"companyName":     cl.CompanyName,
				"contactName":     cl.ContactPerson.Name,
				"contactPhone":    cl.ContactPerson.Phone,
				"contactEmail":    cl.ContactPerson.Email,
				"contactPosition": cl.ContactPerson.Position,
				"industry":        cl.CompanyInfo.Industry,
				"website":         cl.CompanyInfo.Website,
				"address":         cl.CompanyInfo.Address,
				"city":            cl.CompanyInfo.City,
				"services":        form.JoinList(cl.Services),
				"priority":        cl.Priority,
				"status":          cl.Status,
				"notes":           cl.Notes,
			}
		},
		search: func(cl models.Client) []string {
			return []string{
				cl.CompanyName,
				cl.ContactPerson.Name,
				cl.ContactPerson.Phone,
				cl.CompanyInfo.City,
			}
		},
		filters: []filterSpec[models.Client]{
			{flag: "status", field: func(cl models.Client) string { return cl.Status }},
			{flag: "priority", field: func(cl models.Client) string { return cl.Priority }},
		},
		summary: func(cl models.Client) []string {
			lines := []string{
				"Company: " + cl.CompanyName,
				"Contact: " + cl.ContactPerson.Name,
			}
			if n := len(cl.Projects); n > 0 {
				lines = append(lines, "Projects: "+strconv.Itoa(n)+" (will be lost)")
			}
			return lines
		},
		listTmpl:   mustTemplate("client list", clientListTemplate, c.funcs),
		detailTmpl: mustTemplate("client details", clientDetailTemplate, c.funcs),
	}
}
