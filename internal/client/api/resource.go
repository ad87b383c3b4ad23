package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Payload — тело запроса create/update: либо JSON, либо multipart форма
// с опциональным файлом. Ровно один из вариантов должен быть задан.
type Payload struct {
	JSON   any
	Fields map[string]string
	File   *FilePart
}

// JSONPayload оборачивает значение в JSON тело
func JSONPayload(v any) Payload {
	return Payload{JSON: v}
}

// FormPayload оборачивает поля формы и опциональный файл в multipart тело
func FormPayload(fields map[string]string, file *FilePart) Payload {
	return Payload{Fields: fields, File: file}
}

func (p Payload) isForm() bool {
	return p.Fields != nil || p.File != nil
}

// ResourceConfig описывает коллекцию REST ресурса.
// Пути задаются относительно базового URL API.
type ResourceConfig struct {
	Name           string // имя ресурса для сообщений об ошибках
	CollectionPath string // база для путей с id, например "/blogs"
	ListPath       string // путь списка; по умолчанию CollectionPath
	CreatePath     string // путь создания; по умолчанию CollectionPath
	Protected      bool   // записи требуют bearer token
}

// ResourceClient реализует list/create/update/remove поверх Client
// для одной коллекции. Ответы списка нормализуются: сервер отдаёт либо
// голый массив, либо конверт {"data": [...]}.
type ResourceClient[T any] struct {
	client *Client
	cfg    ResourceConfig
}

// NewResource создает клиент коллекции
func NewResource[T any](client *Client, cfg ResourceConfig) *ResourceClient[T] {
	if cfg.ListPath == "" {
		cfg.ListPath = cfg.CollectionPath
	}
	if cfg.CreatePath == "" {
		cfg.CreatePath = cfg.CollectionPath
	}
	return &ResourceClient[T]{client: client, cfg: cfg}
}

// Name возвращает имя ресурса
func (r *ResourceClient[T]) Name() string { return r.cfg.Name }

// List загружает коллекцию. Сетевые и HTTP ошибки возвращаются как error;
// неузнаваемая форма 2xx ответа деградирует до пустого списка.
func (r *ResourceClient[T]) List(ctx context.Context) ([]T, error) {
	var raw json.RawMessage
	if err := r.client.doJSON(ctx, http.MethodGet, r.cfg.ListPath, false, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.cfg.Name, err)
	}
	return decodeList[T](raw), nil
}

// Create создает новую запись. Возвращает созданную запись, если сервер
// её вернул в узнаваемой форме, иначе nil без ошибки.
func (r *ResourceClient[T]) Create(ctx context.Context, payload Payload) (*T, error) {
	created, err := r.submit(ctx, http.MethodPost, r.cfg.CreatePath, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", r.cfg.Name, err)
	}
	return created, nil
}

// Update обновляет запись по id, отправляя полный набор полей
func (r *ResourceClient[T]) Update(ctx context.Context, id string, payload Payload) (*T, error) {
	updated, err := r.submit(ctx, http.MethodPut, r.cfg.CollectionPath+"/"+id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", r.cfg.Name, err)
	}
	return updated, nil
}

// Remove удаляет запись по id
func (r *ResourceClient[T]) Remove(ctx context.Context, id string) error {
	err := r.client.doJSON(ctx, http.MethodDelete, r.cfg.CollectionPath+"/"+id, r.cfg.Protected, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.cfg.Name, err)
	}
	return nil
}

func (r *ResourceClient[T]) submit(ctx context.Context, method, path string, payload Payload) (*T, error) {
	var raw json.RawMessage
	var err error
	if payload.isForm() {
		err = r.client.doMultipart(ctx, method, path, r.cfg.Protected, payload.Fields, payload.File, &raw)
	} else {
		err = r.client.doJSON(ctx, method, path, r.cfg.Protected, payload.JSON, &raw)
	}
	if err != nil {
		return nil, err
	}
	return decodeEntity[T](raw), nil
}

// decodeList нормализует две формы ответа списка в один слайс.
// Любая другая форма даёт пустой, никогда не nil, слайс.
func decodeList[T any](raw json.RawMessage) []T {
	if len(raw) > 0 {
		var bare []T
		if err := json.Unmarshal(raw, &bare); err == nil && bare != nil {
			return bare
		}

		var envelope struct {
			Data []T `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Data != nil {
			return envelope.Data
		}
	}
	return []T{}
}

// decodeEntity пытается достать созданную/обновлённую запись из ответа:
// конверт {"data": {...}} или сама запись. nil, если форма не узнана.
func decodeEntity[T any](raw json.RawMessage) *T {
	if len(raw) == 0 {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && envelope.Data[0] == '{' {
		var entity T
		if err := json.Unmarshal(envelope.Data, &entity); err == nil {
			return &entity
		}
	}

	var entity T
	if err := json.Unmarshal(raw, &entity); err == nil {
		return &entity
	}
	return nil
}
