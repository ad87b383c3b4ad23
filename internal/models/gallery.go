package models

// ImageDimensions — размеры загруженного изображения
type ImageDimensions struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// ImageMetadata заполняется сервером при загрузке файла
type ImageMetadata struct {
	FileSize   int64            `json:"fileSize,omitempty"`
	Dimensions *ImageDimensions `json:"dimensions,omitempty"`
	Format     string           `json:"format,omitempty"`
	UploadedBy string           `json:"uploadedBy,omitempty"`
}

// GalleryImage представляет изображение галереи работ.
// Views и Likes ведёт сервер, клиент их только показывает.
type GalleryImage struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Image       string         `json:"image,omitempty"` // имя файла в /uploads
	Category    string         `json:"category,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Status      string         `json:"status,omitempty"` // active | inactive | featured
	Featured    bool           `json:"featured,omitempty"`
	Priority    int            `json:"priority,omitempty"`
	AltText     string         `json:"altText,omitempty"`
	Caption     string         `json:"caption,omitempty"`
	Metadata    *ImageMetadata `json:"metadata,omitempty"`
	Views       int            `json:"views,omitempty"`
	Likes       int            `json:"likes,omitempty"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	UpdatedAt   string         `json:"updatedAt,omitempty"`
}

func (g GalleryImage) EntityID() string { return g.ID }
