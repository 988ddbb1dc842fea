package matchmaking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с Matchmaking Service
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Matchmaking Service
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSessions получает все сессии, видимые текущему пользователю
// (приглашён он в них или нет, предварительные и подтверждённые)
func (c *Client) GetSessions(ctx context.Context, userID string) ([]*domain.Session, error) {
	url := fmt.Sprintf("%s/api/matchmaking/sessions", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req, userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus(resp)
	}

	var dtos []SessionDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return c.toDomainList(dtos)
}

// Run запускает внешний матчмейкинг и возвращает созданные сессии
// Сам алгоритм подбора полностью на стороне Matchmaking Service
func (c *Client) Run(ctx context.Context) ([]*domain.Session, error) {
	url := fmt.Sprintf("%s/api/matchmaking/run", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus(resp)
	}

	var dtos []SessionDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return c.toDomainList(dtos)
}

// Accept подтверждает участие пользователя в сессии
func (c *Client) Accept(ctx context.Context, userID, sessionID string) error {
	url := fmt.Sprintf("%s/api/sessions/%s/accept", c.baseURL, sessionID)
	return c.postResponse(ctx, userID, url, nil)
}

// Reject отклоняет участие пользователя в сессии по указанной причине
// При reason=NOT_AVAILABLE внешний сервис сам удаляет пересекающийся
// слот доступности; клиент отдельных вызовов не делает
func (c *Client) Reject(ctx context.Context, userID, sessionID string, reason domain.RejectionReason) error {
	url := fmt.Sprintf("%s/api/sessions/%s/reject", c.baseURL, sessionID)
	body, err := json.Marshal(RejectRequest{Reason: string(reason)})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}
	return c.postResponse(ctx, userID, url, body)
}

// postResponse выполняет POST accept/reject с общей обработкой статус-кодов
func (c *Client) postResponse(ctx context.Context, userID, url string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req, userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrSessionNotFound
	case http.StatusForbidden:
		return ErrForbidden
	default:
		return c.unexpectedStatus(resp)
	}
}

func (c *Client) setHeaders(req *http.Request, userID string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)
}

// unexpectedStatus оборачивает неожиданный статус-код, сохраняя текст
// ошибки сервиса, если тот его прислал
func (c *Client) unexpectedStatus(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Error)
	}

	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
}

func (c *Client) toDomainList(dtos []SessionDTO) ([]*domain.Session, error) {
	sessions := make([]*domain.Session, 0, len(dtos))
	for i := range dtos {
		session, err := dtos[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
