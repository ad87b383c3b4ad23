package models

// CategoryRef — краткая ссылка на родительскую категорию
type CategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// CategoryMetadata содержит SEO-поля категории
type CategoryMetadata struct {
	SEOTitle       string   `json:"seoTitle,omitempty"`
	SEODescription string   `json:"seoDescription,omitempty"`
	SEOKeywords    []string `json:"seoKeywords,omitempty"`
}

// Category представляет категорию услуг.
// Subcategories и ServiceCount вычисляются сервером (endpoint hierarchy)
// и доступны только для чтения.
type Category struct {
	ID             string            `json:"_id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Slug           string            `json:"slug,omitempty"`
	Status         string            `json:"status,omitempty"` // active | inactive
	Featured       bool              `json:"featured,omitempty"`
	Priority       int               `json:"priority,omitempty"`
	Icon           string            `json:"icon,omitempty"`
	Color          string            `json:"color,omitempty"`
	ParentCategory *CategoryRef      `json:"parentCategory,omitempty"`
	Subcategories  []Category        `json:"subcategories,omitempty"`
	ServiceCount   int               `json:"serviceCount,omitempty"`
	Metadata       *CategoryMetadata `json:"metadata,omitempty"`
	CreatedAt      string            `json:"createdAt,omitempty"`
	UpdatedAt      string            `json:"updatedAt,omitempty"`
}

func (c Category) EntityID() string { return c.ID }
