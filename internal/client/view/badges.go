package view

import "strings"

// Статические таблицы бейджей: строка статуса/приоритета -> подпись
// для вывода. Это display-логика, не бизнес-правила.
var statusBadges = map[string]string{
	"active":      "[ACTIVE]",
	"inactive":    "[INACTIVE]",
	"draft":       "[DRAFT]",
	"published":   "[PUBLISHED]",
	"archived":    "[ARCHIVED]",
	"featured":    "[FEATURED]",
	"maintenance": "[MAINTENANCE]",
}

var priorityBadges = map[string]string{
	"low":    "[low]",
	"medium": "[medium]",
	"high":   "[HIGH]",
	"vip":    "[VIP ★]",
}

var conditionBadges = map[string]string{
	"excellent": "[excellent]",
	"good":      "[good]",
	"fair":      "[fair]",
	"poor":      "[POOR]",
}

// StatusBadge возвращает подпись статуса
func StatusBadge(status string) string {
	if badge, ok := statusBadges[status]; ok {
		return badge
	}
	if status == "" {
		return "[-]"
	}
	return "[" + strings.ToUpper(status) + "]"
}

// PriorityBadge возвращает подпись приоритета клиента
func PriorityBadge(priority string) string {
	if badge, ok := priorityBadges[priority]; ok {
		return badge
	}
	if priority == "" {
		return "[-]"
	}
	return "[" + priority + "]"
}

// ConditionBadge возвращает подпись состояния оборудования
func ConditionBadge(condition string) string {
	if badge, ok := conditionBadges[condition]; ok {
		return badge
	}
	if condition == "" {
		return "[-]"
	}
	return "[" + condition + "]"
}

// UploadURL возвращает полный URL изображения: абсолютные ссылки
// отдаются как есть, имена файлов разрешаются относительно /uploads.
func UploadURL(uploadsBase, image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return strings.TrimSuffix(uploadsBase, "/") + "/" + strings.TrimPrefix(image, "/")
}
