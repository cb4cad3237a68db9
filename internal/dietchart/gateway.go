// internal/dietchart/gateway.go
package dietchart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultProxyURL     = "http://mcp-compose-http-proxy:9876"
	DefaultGatewayModel = "anthropic/claude-3.5-sonnet"
)

const systemPrompt = `You are an expert Ayurvedic dietitian. You design meal plans that respect a patient's
constitution (prakriti), current imbalance (vikriti), medical conditions and dietary habits.

IMPORTANT: Always respond with valid JSON only.`

// GatewayGenerator calls the create_completion tool of an OpenRouter gateway
// behind an MCP HTTP proxy.
type GatewayGenerator struct {
	httpClient *http.Client
	proxyURL   string
	apiKey     string
	model      string
}

func NewGatewayGenerator(proxyURL, apiKey, model string) *GatewayGenerator {
	if proxyURL == "" {
		proxyURL = DefaultProxyURL
	}
	if model == "" {
		model = DefaultGatewayModel
	}
	return &GatewayGenerator{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		proxyURL: proxyURL,
		apiKey:   apiKey,
		model:    model,
	}
}

type rpcRequest struct {
	JSONRPC string     `json:"jsonrpc"`
	ID      int        `json:"id"`
	Method  string     `json:"method"`
	Params  toolParams `json:"params"`
}

type toolParams struct {
	Name      string      `json:"name"`
	Arguments interface{} `json:"arguments"`
}

type rpcResponse struct {
	Result *struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// text returns the first text content of a successful tool result.
func (r rpcResponse) text() (string, error) {
	switch {
	case r.Error != nil:
		return "", fmt.Errorf("gateway error %d: %s", r.Error.Code, r.Error.Message)
	case r.Result == nil:
		return "", fmt.Errorf("unexpected response format")
	}
	for _, c := range r.Result.Content {
		if c.Type != "text" && c.Type != "" {
			continue
		}
		if r.Result.IsError {
			return "", fmt.Errorf("gateway tool error: %s", c.Text)
		}
		if c.Text != "" {
			return c.Text, nil
		}
	}
	return "", fmt.Errorf("unexpected response format")
}

type completionArgs struct {
	Model        string        `json:"model"`
	SystemPrompt string        `json:"system_prompt"`
	Messages     []chatMessage `json:"messages"`
	MaxTokens    int           `json:"max_tokens"`
	Temperature  float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (g *GatewayGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := g.callTool(ctx, "create_completion", completionArgs{
		Model:        g.model,
		SystemPrompt: systemPrompt,
		Messages:     []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:    4000,
		Temperature:  0.3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get AI completion: %w", err)
	}

	// The gateway wraps the completion as {"content": "..."}; anything else is
	// passed through as-is.
	var completion struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(out), &completion); err == nil && completion.Content != "" {
		return completion.Content, nil
	}
	return out, nil
}

// callTool issues a JSON-RPC tools/call against the proxy's gateway endpoint.
func (g *GatewayGenerator) callTool(ctx context.Context, name string, args interface{}) (string, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  toolParams{Name: name, Arguments: args},
	})
	if err != nil {
		return "", fmt.Errorf("encode %s call: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.proxyURL+"/openrouter-gateway", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build %s request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s call: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%s call: status %d: %s", name, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var rpc rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpc); err != nil {
		return "", fmt.Errorf("decode %s reply: %w", name, err)
	}
	return rpc.text()
}
