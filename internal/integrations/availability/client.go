package availability

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

// Client клиент для работы с Availability Service
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Availability Service
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSlots получает слоты доступности текущего пользователя
// Диапазон опционален; nil-границы означают отсутствие ограничения
func (c *Client) GetSlots(ctx context.Context, userID string, from, to *time.Time) ([]*domain.AvailabilitySlot, error) {
	url := fmt.Sprintf("%s/api/availability", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req, userID)

	q := req.URL.Query()
	if from != nil {
		q.Set("startDate", from.UTC().Format(time.RFC3339))
	}
	if to != nil {
		q.Set("endDate", to.UTC().Format(time.RFC3339))
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus(resp)
	}

	var dtos []SlotDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	slots := make([]*domain.AvailabilitySlot, 0, len(dtos))
	for i := range dtos {
		slot, err := dtos[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// CreateSlot создает новый слот доступности
func (c *Client) CreateSlot(ctx context.Context, userID string, start, end time.Time, gameID *string) (*domain.AvailabilitySlot, error) {
	url := fmt.Sprintf("%s/api/availability", c.baseURL)

	body, err := json.Marshal(CreateSlotRequest{
		StartTime: start.UTC().Format(time.RFC3339),
		EndTime:   end.UTC().Format(time.RFC3339),
		GameID:    gameID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req, userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.unexpectedStatus(resp)
	}

	var dto SlotDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	slot, err := dto.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return slot, nil
}

// DeleteSlot удаляет слот доступности пользователя
func (c *Client) DeleteSlot(ctx context.Context, userID, slotID string) error {
	url := fmt.Sprintf("%s/api/availability/%s", c.baseURL, slotID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
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
		return ErrSlotNotFound
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

func (c *Client) unexpectedStatus(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Error)
	}

	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
}
