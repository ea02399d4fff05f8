// Package rest implementa el Domain Store Client: un cliente genérico para el
// almacén de colecciones REST remoto (orders, orderDetails, inventory,
// products, warehouses, users, shipments, enterprises, logs) y los
// adaptadores de repositorio tipados construidos sobre él.
//
// El transporte exacto es responsabilidad del almacén; aquí solo se asume la
// superficie lógica list/get/create/update/patch/delete con filtros de
// igualdad como query parameters.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nvdekay/stock-master-sub000/internal/domain"
)

const maxErrorBody = 8 * 1024 // límite de lectura del cuerpo en respuestas de error

// Client cliente HTTP del almacén de colecciones. Usa net/http de la librería
// estándar con timeout de red acotado; los casos de uso imponen además sus
// propios context.WithTimeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL sin slash final, ej.
// "http://store.internal:3000".
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// List obtiene las entidades de la colección que cumplen el filtro de
// igualdad (nil o vacío = todas) y las deserializa en out (puntero a slice).
func (c *Client) List(ctx context.Context, collection string, filter map[string]string, out any) error {
	endpoint := c.baseURL + "/" + collection
	if len(filter) > 0 {
		q := url.Values{}
		for k, v := range filter {
			q.Set(k, v)
		}
		endpoint += "?" + q.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Get obtiene una entidad por id. Devuelve domain.ErrNotFound si no existe.
func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	return c.do(ctx, http.MethodGet, c.itemURL(collection, id), nil, out)
}

// Create crea una entidad y deserializa la respuesta del almacén en out
// (nil para descartarla).
func (c *Client) Create(ctx context.Context, collection string, body, out any) error {
	return c.do(ctx, http.MethodPost, c.baseURL+"/"+collection, body, out)
}

// Update reemplaza la entidad completa.
func (c *Client) Update(ctx context.Context, collection, id string, body, out any) error {
	return c.do(ctx, http.MethodPut, c.itemURL(collection, id), body, out)
}

// Patch actualización parcial: solo los campos presentes en fields.
func (c *Client) Patch(ctx context.Context, collection, id string, fields map[string]any, out any) error {
	return c.do(ctx, http.MethodPatch, c.itemURL(collection, id), fields, out)
}

// Delete elimina la entidad por id.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(collection, id), nil, nil)
}

func (c *Client) itemURL(collection, id string) string {
	return c.baseURL + "/" + collection + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("store: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("store: crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("store: cancelación o timeout: %w", ctx.Err())
		}
		return fmt.Errorf("store: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("store: %s %s: status %d: %s", method, endpoint, resp.StatusCode, string(raw))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("store: deserializar respuesta: %w", err)
	}
	return nil
}
