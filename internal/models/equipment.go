package models

// Equipment представляет единицу клинингового оборудования
type Equipment struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	EquipmentType string `json:"equipmentType,omitempty"`
	Status        string `json:"status,omitempty"`    // active | inactive | maintenance
	Condition     string `json:"condition,omitempty"` // excellent | good | fair | poor
	Image         string `json:"image,omitempty"`     // имя файла в /uploads
	Slug          string `json:"slug,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

func (e Equipment) EntityID() string { return e.ID }
