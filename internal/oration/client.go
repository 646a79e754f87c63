package oration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrConversationNotFound = errors.New("conversation not found")

// APIError is a non-2xx reply from the vendor. The raw body is kept for
// logs only and must never be forwarded to API clients.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("oration api error: status %d: %s", e.StatusCode, e.Message)
}

// IsTimeout reports whether err is a client-side deadline or transport
// timeout on a vendor call.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}

// Client calls the Oration conversation API over plain HTTP. Every call is
// bounded by the configured timeout; transport failures are retried once.
type Client struct {
	apiKey      string
	workspaceID string
	agentID     string
	base        string
	http        *http.Client
}

func NewClient(apiKey, workspaceID, agentID, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:      apiKey,
		workspaceID: workspaceID,
		agentID:     agentID,
		base:        baseURL,
		http:        &http.Client{Timeout: timeout},
	}
}

// DynamicVariables is the context handed to the conversational agent.
// Questions are serialized as a single JSON string, which is how the agent
// template consumes them.
type DynamicVariables struct {
	CandidateName string `json:"candidateName"`
	JobTitle      string `json:"jobTitle"`
	RecruiterName string `json:"recruiterName"`
	CompanyName   string `json:"companyName"`
	Questions     string `json:"questions"`
}

type conversationSpec struct {
	AgentID          string           `json:"agentId"`
	ConversationType string           `json:"conversationType"`
	ToPhoneNumber    string           `json:"toPhoneNumber"`
	DynamicVariables DynamicVariables `json:"dynamicVariables"`
}

type createConversationReq struct {
	Conversations []conversationSpec `json:"conversations"`
}

type createConversationRes struct {
	Results []Conversation `json:"results"`
}

// Conversation is the vendor's view of one telephony session.
type Conversation struct {
	ID              string     `json:"id"`
	Status          string     `json:"conversationStatus"`
	TelephonyStatus string     `json:"telephonyStatus"`
	CallStartTime   *time.Time `json:"callStartTime"`
	CallEndTime     *time.Time `json:"callEndTime"`
	UserJoinTime    *time.Time `json:"userJoinTime"`
	UserLeaveTime   *time.Time `json:"userLeaveTime"`
	EndReason       string     `json:"endReason"`
	Summary         string     `json:"summary"`
	RecordingStatus string     `json:"recordingStatus"`
}

// Terminal reports whether the vendor considers this conversation finished.
func (c *Conversation) Terminal() bool {
	switch c.Status {
	case "completed", "ended", "failed":
		return true
	}
	return c.CallEndTime != nil
}

// CreateConversation triggers one outbound telephony call.
func (c *Client) CreateConversation(ctx context.Context, toPhoneNumber string, vars DynamicVariables) (*Conversation, error) {
	body := createConversationReq{
		Conversations: []conversationSpec{{
			AgentID:          c.agentID,
			ConversationType: "telephony",
			ToPhoneNumber:    toPhoneNumber,
			DynamicVariables: vars,
		}},
	}

	var res createConversationRes
	if err := c.do(ctx, http.MethodPost, "/conversations", body, &res); err != nil {
		return nil, err
	}
	if len(res.Results) == 0 {
		return nil, &APIError{StatusCode: http.StatusBadGateway, Message: "vendor returned no conversation"}
	}
	return &res.Results[0], nil
}

// GetConversation fetches the current status snapshot for a conversation.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (*Conversation, error) {
	var conv Conversation
	if err := c.do(ctx, http.MethodGet, "/conversations/"+url.PathEscape(conversationID), nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	resp, err := c.send(ctx, method, path, payload)
	if err != nil {
		// one retry on transport failure only, never on an HTTP status
		if IsTimeout(err) || ctx.Err() != nil {
			return err
		}
		resp, err = c.send(ctx, method, path, payload)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		return ErrConversationNotFound
	}
	if resp.StatusCode >= 400 {
		return &APIError{StatusCode: resp.StatusCode, Message: string(bodyBytes)}
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("x-workspace-id", c.workspaceID)
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}
