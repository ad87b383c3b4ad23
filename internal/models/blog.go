package models

// Blog представляет запись блога, управляемую через админку.
// ID и временные метки назначает сервер, клиент их не изменяет.
type Blog struct {
	ID             string   `json:"_id"`
	Title          string   `json:"title"`
	Author         string   `json:"author"`
	Content        string   `json:"content"` // готовый HTML, клиент его не интерпретирует
	Excerpt        string   `json:"excerpt,omitempty"`
	AuthorBio      string   `json:"authorBio,omitempty"`
	Tags           []string `json:"tags"`
	Category       string   `json:"category,omitempty"`
	Featured       bool     `json:"featured,omitempty"`
	Status         string   `json:"status,omitempty"` // draft | published | archived
	ReadingTime    int      `json:"readingTime,omitempty"`
	Views          int      `json:"views,omitempty"`
	Likes          int      `json:"likes,omitempty"`
	SEOTitle       string   `json:"seoTitle,omitempty"`
	SEODescription string   `json:"seoDescription,omitempty"`
	SEOKeywords    []string `json:"seoKeywords,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	PublishedAt    string   `json:"publishedAt,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

func (b Blog) EntityID() string { return b.ID }
