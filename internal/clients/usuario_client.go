package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"catalogo/internal/domain/models"
)

// UsuarioClient resolves identities on the usuario service. The call is
// bounded by the client timeout so a stuck remote cannot stall an export
// forever.
type UsuarioClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewUsuarioClient(baseURL string, timeout time.Duration) UsuarioClient {
	return UsuarioClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// FindOne returns the resolved identity. A missing user is not an error:
// the service answers with the sentinel id 0 (a 404 is mapped to the same
// sentinel). Errors are transport or decode failures only.
func (c UsuarioClient) FindOne(ctx context.Context, id int64) (models.Usuario, error) {
	url := fmt.Sprintf("%s/usuarios/%d", c.BaseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Usuario{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http().Do(req)
	if err != nil {
		return models.Usuario{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Usuario{ID: models.UsuarioSentinelID}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return models.Usuario{}, fmt.Errorf("api de usuários respondeu status %d", resp.StatusCode)
	}

	var usuario models.Usuario
	if err := json.NewDecoder(resp.Body).Decode(&usuario); err != nil {
		return models.Usuario{}, fmt.Errorf("resposta inválida da api de usuários: %w", err)
	}
	return usuario, nil
}

func (c UsuarioClient) http() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
