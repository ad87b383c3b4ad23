package cli

import (
	"text/template"

	"github.com/lilfaithontrack/abigail-admin/internal/client/form"
	"github.com/lilfaithontrack/abigail-admin/internal/client/view"
)

// templateFuncs — общий набор функций шаблонов. uploadsBase
// подставляется в uploadURL, чтобы шаблоны печатали полные ссылки
// на загруженные изображения.
func templateFuncs(uploadsBase string) template.FuncMap {
	return template.FuncMap{
		"statusBadge":    view.StatusBadge,
		"priorityBadge":  view.PriorityBadge,
		"conditionBadge": view.ConditionBadge,
		"join":           form.JoinList,
		"uploadURL": func(image string) string {
			return view.UploadURL(uploadsBase, image)
		},
	}
}

const usageText = `
Abigail Admin CLI

Usage:
  abigail-admin [OPTIONS] COMMAND

Options:
  --version      Show version information
  --server URL   API base URL (default: https://api.abigailgeneralcleaningservice.com/api)
  --db PATH      Path to local session database (default: abigail-admin.db)

Commands:
  login                      Log in with admin email and password
  logout                     Delete the saved session
  status                     Show authentication status
  dashboard                  Show content totals

  list <kind> [flags]        List resources (--search <term>, plus per-kind filters)
  get <kind> <id>            Show full resource details
  add <kind>                 Create a new resource
  edit <kind> <id>           Edit an existing resource
  delete <kind> <id>         Delete a resource (asks for confirmation)

Resource kinds:
  blogs, services, categories, clients, equipment, gallery

Examples:
  abigail-admin login
  abigail-admin list blogs --search cleaning --status published
  abigail-admin list equipment --condition excellent
  abigail-admin add service
  abigail-admin edit blog 64f1c0a2e5b4a93d2c8d7f1a
  abigail-admin delete gallery 64f1c0a2e5b4a93d2c8d7f1a
  abigail-admin --server https://staging.example.com/api list services
`

const blogListTemplate = `
=== Blog Posts ===

{{- if eq (len .) 0 }}
No blog posts found.

Use 'abigail-admin add blog' to create your first post.
{{- else }}
Found {{len .}} post(s):

{{- range . }}
- {{ .Title }} {{ statusBadge .Status }}
   ID:       {{ .ID }}
   Author:   {{ .Author }}
   {{- if .Category }}
   Category: {{ .Category }}
   {{- end }}
   {{- if .Tags }}
   Tags:     {{ join .Tags }}
   {{- end }}

{{- end }}
Use 'abigail-admin get blog <id>' to view full details.
{{- end }}
`

const blogDetailTemplate = `
=== Blog Post Details ===

Title:     {{ .Title }} {{ statusBadge .Status }}
ID:        {{ .ID }}
Author:    {{ .Author }}
{{- if .Category }}
Category:  {{ .Category }}
{{- end }}
{{- if .Tags }}
Tags:      {{ join .Tags }}
{{- end }}
{{- if .Excerpt }}
Excerpt:   {{ .Excerpt }}
{{- end }}
{{- if .ImageURL }}
Image:     {{ .ImageURL }}
{{- end }}
{{- if .PublishedAt }}
Published: {{ .PublishedAt }}
{{- end }}
Views:     {{ .Views }}
Likes:     {{ .Likes }}

Content:
---
{{ .Content }}
---
`

const serviceListTemplate = `
=== Services ===

{{- if eq (len .) 0 }}
No services found.

Use 'abigail-admin add service' to create your first service.
{{- else }}
Found {{len .}} service(s):

{{- range . }}
- {{ .Title }} {{ statusBadge .Status }}
   ID:       {{ .ID }}
   {{- if .Category }}
   Category: {{ .Category }}
   {{- end }}
   {{- if .ShortDescription }}
   About:    {{ .ShortDescription }}
   {{- end }}
   {{- if .Pricing.Type }}
   Pricing:  {{ .Pricing.Type }}
   {{- end }}

{{- end }}
Use 'abigail-admin get service <id>' to view full details.
{{- end }}
`

const serviceDetailTemplate = `
=== Service Details ===

Title:    {{ .Title }} {{ statusBadge .Status }}
ID:       {{ .ID }}
{{- if .Category }}
Category: {{ .Category }}
{{- end }}
{{- if .ServiceType }}
Type:     {{ .ServiceType }}
{{- end }}
{{- if .Duration }}
Duration: {{ .Duration }}
{{- end }}
{{- if .Pricing.Type }}
Pricing:  {{ .Pricing.Type }}{{ if .Pricing.Amount }} ({{ .Pricing.Amount }} {{ .Pricing.Currency }}){{ end }}
{{- end }}
{{- if .Features }}
Features: {{ join .Features }}
{{- end }}
{{- if .Benefits }}
Benefits: {{ join .Benefits }}
{{- end }}
{{- if .Image }}
Image:    {{ uploadURL .Image }}
{{- end }}

Description:
---
{{ .Description }}
---
`

const categoryListTemplate = `
=== Categories ===

{{- if eq (len .) 0 }}
No categories found.

Use 'abigail-admin add category' to create your first category.
{{- else }}
Found {{len .}} top-level categor(ies):

{{- range . }}
- {{ .Name }} {{ statusBadge .Status }} ({{ .ServiceCount }} service(s))
   ID:   {{ .ID }}
   {{- if .Slug }}
   Slug: {{ .Slug }}
   {{- end }}
   {{- range .Subcategories }}
   - {{ .Name }} {{ statusBadge .Status }} ({{ .ServiceCount }} service(s))
      ID: {{ .ID }}
   {{- end }}

{{- end }}
Use 'abigail-admin get category <id>' to view full details.
{{- end }}
`

const categoryDetailTemplate = `
=== Category Details ===

Name:     {{ .Name }} {{ statusBadge .Status }}
ID:       {{ .ID }}
{{- if .Slug }}
Slug:     {{ .Slug }}
{{- end }}
{{- if .Description }}
About:    {{ .Description }}
{{- end }}
{{- if .ParentCategory }}
Parent:   {{ .ParentCategory.Name }}
{{- end }}
Priority: {{ .Priority }}
Services: {{ .ServiceCount }}
{{- if .Subcategories }}

Subcategories:
{{- range .Subcategories }}
  - {{ .Name }} ({{ .ServiceCount }} service(s))
{{- end }}
{{- end }}
`

const clientListTemplate = `
=== Clients ===

{{- if eq (len .) 0 }}
No clients found.

Use 'abigail-admin add client' to register your first client.
{{- else }}
Found {{len .}} client(s):

{{- range . }}
- {{ .CompanyName }} {{ statusBadge .Status }} {{ priorityBadge .Priority }}
   ID:      {{ .ID }}
   Contact: {{ .ContactPerson.Name }} ({{ .ContactPerson.Phone }})
   {{- if .CompanyInfo.City }}
   City:    {{ .CompanyInfo.City }}
   {{- end }}

{{- end }}
Use 'abigail-admin get client <id>' to view full details.
{{- end }}
`

const clientDetailTemplate = `
=== Client Details ===

Company:  {{ .CompanyName }} {{ statusBadge .Status }} {{ priorityBadge .Priority }}
ID:       {{ .ID }}
Contact:  {{ .ContactPerson.Name }}
Phone:    {{ .ContactPerson.Phone }}
{{- if .ContactPerson.Email }}
Email:    {{ .ContactPerson.Email }}
{{- end }}
{{- if .CompanyInfo.Industry }}
Industry: {{ .CompanyInfo.Industry }}
{{- end }}
{{- if .CompanyInfo.Address }}
Address:  {{ .CompanyInfo.Address }}{{ if .CompanyInfo.City }}, {{ .CompanyInfo.City }}{{ end }}
{{- end }}
{{- if .Services }}
Services: {{ join .Services }}
{{- end }}
Projects: {{ len .Projects }}
{{- if .Notes }}

Notes:
{{ .Notes }}
{{- end }}
`

const equipmentListTemplate = `
=== Equipment ===

{{- if eq (len .) 0 }}
No equipment found.

Use 'abigail-admin add equipment' to register your first unit.
{{- else }}
Found {{len .}} unit(s):

{{- range . }}
- {{ .Name }} {{ statusBadge .Status }} {{ conditionBadge .Condition }}
   ID:       {{ .ID }}
   {{- if .Category }}
   Category: {{ .Category }}
   {{- end }}

{{- end }}
Use 'abigail-admin get equipment <id>' to view full details.
{{- end }}
`

const equipmentDetailTemplate = `
=== Equipment Details ===

Name:      {{ .Name }} {{ statusBadge .Status }} {{ conditionBadge .Condition }}
ID:        {{ .ID }}
{{- if .Category }}
Category:  {{ .Category }}
{{- end }}
{{- if .EquipmentType }}
Type:      {{ .EquipmentType }}
{{- end }}
{{- if .Description }}
About:     {{ .Description }}
{{- end }}
{{- if .Image }}
Image:     {{ uploadURL .Image }}
{{- end }}
`

const galleryListTemplate = `
=== Gallery ===

{{- if eq (len .) 0 }}
No gallery images found.

Use 'abigail-admin add gallery' to upload your first image.
{{- else }}
Found {{len .}} image(s):

{{- range . }}
- {{ .Title }} {{ statusBadge .Status }}
   ID:       {{ .ID }}
   {{- if .Category }}
   Category: {{ .Category }}
   {{- end }}
   {{- if .Image }}
   URL:      {{ uploadURL .Image }}
   {{- end }}

{{- end }}
Use 'abigail-admin get gallery <id>' to view full details.
{{- end }}
`

const galleryDetailTemplate = `
=== Gallery Image Details ===

Title:    {{ .Title }} {{ statusBadge .Status }}
ID:       {{ .ID }}
{{- if .Category }}
Category: {{ .Category }}
{{- end }}
{{- if .Tags }}
Tags:     {{ join .Tags }}
{{- end }}
{{- if .Description }}
About:    {{ .Description }}
{{- end }}
{{- if .AltText }}
Alt text: {{ .AltText }}
{{- end }}
{{- if .Image }}
URL:      {{ uploadURL .Image }}
{{- end }}
Views:    {{ .Views }}
Likes:    {{ .Likes }}
`
