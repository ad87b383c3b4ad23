package models

// Pricing — модель ценообразования услуги
type Pricing struct {
	Type           string  `json:"type"` // fixed | per_square_meter | per_hour | custom
	Amount         float64 `json:"amount,omitempty"`
	Currency       string  `json:"currency,omitempty"`
	PerSquareMeter float64 `json:"perSquareMeter,omitempty"`
	PerHour        float64 `json:"perHour,omitempty"`
	Description    string  `json:"description,omitempty"`
}

// Service представляет услугу клининговой компании
type Service struct {
	ID               string   `json:"_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Category         string   `json:"category,omitempty"`
	Subcategory      string   `json:"subcategory,omitempty"`
	ServiceType      string   `json:"serviceType,omitempty"`
	Features         []string `json:"features,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	Pricing          Pricing  `json:"pricing"`
	Duration         string   `json:"duration,omitempty"`
	Status           string   `json:"status,omitempty"` // active | inactive | draft
	Featured         bool     `json:"featured,omitempty"`
	Image            string   `json:"image,omitempty"`
	CreatedAt        string   `json:"createdAt,omitempty"`
	UpdatedAt        string   `json:"updatedAt,omitempty"`
}

func (s Service) EntityID() string { return s.ID }
