package models

import "encoding/json"

// ContactPerson — контактное лицо клиента
type ContactPerson struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Position string `json:"position,omitempty"`
}

// CompanyInfo — сведения о компании клиента
type CompanyInfo struct {
	Industry string `json:"industry,omitempty"`
	Size     string `json:"size,omitempty"`
	Website  string `json:"website,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
}

// Client представляет корпоративного клиента.
// Projects возвращаются сервером только для чтения, клиент показывает
// лишь их количество и не разбирает структуру.
type Client struct {
	ID            string            `json:"_id"`
	CompanyName   string            `json:"companyName"`
	ContactPerson ContactPerson     `json:"contactPerson"`
	CompanyInfo   CompanyInfo       `json:"companyInfo"`
	Services      []string          `json:"services,omitempty"`
	Projects      []json.RawMessage `json:"projects,omitempty"`
	Status        string            `json:"status,omitempty"`   // active | inactive
	Priority      string            `json:"priority,omitempty"` // low | medium | high | vip
	Notes         string            `json:"notes,omitempty"`
	Slug          string            `json:"slug,omitempty"`
	CreatedAt     string            `json:"createdAt,omitempty"`
	UpdatedAt     string            `json:"updatedAt,omitempty"`
}

func (c Client) EntityID() string { return c.ID }
