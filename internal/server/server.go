// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mcp-ayur-diet/internal/catalog"
	"mcp-ayur-diet/internal/constitution"
	"mcp-ayur-diet/internal/dietchart"
	"mcp-ayur-diet/internal/patient"
	"mcp-ayur-diet/internal/recipe"
	"mcp-ayur-diet/internal/storage"
	"mcp-ayur-diet/internal/symptom"
)

const (
	ServerName    = "ayur-diet"
	ServerVersion = "1.0.0"
)

var (
	errInvalidParams = errors.New("invalid parameters")
	errUnknownFood   = errors.New("unknown food")
)

type Config struct {
	Host string
	Port int
}

type toolHandler func(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error)

type tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	handler     toolHandler
}

type AyurDietServer struct {
	httpServer *http.Server
	storage    *storage.SQLiteStorage
	catalog    *catalog.Store
	charts     *dietchart.Generator
	logger     *zap.Logger
	config     *Config

	tools []tool
	index map[string]toolHandler

	now   func() time.Time
	newID func() string
}

func NewAyurDietServer(cfg *Config, stor *storage.SQLiteStorage, foods *catalog.Store, charts *dietchart.Generator, logger *zap.Logger) *AyurDietServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &AyurDietServer{
		storage: stor,
		catalog: foods,
		charts:  charts,
		logger:  logger,
		config:  cfg,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	s.registerTools()

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHTTP)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the HTTP handler, mainly for tests.
func (s *AyurDietServer) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *AyurDietServer) handleHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	switch r.Method {
	case http.MethodOptions:
		return
	case http.MethodGet:
		s.writeJSON(w, map[string]interface{}{
			"server": protocol.Implementation{Name: ServerName, Version: ServerVersion},
			"tools":  s.tools,
		})
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	handler, ok := s.index[request.Name]
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown tool: %s", request.Name), http.StatusNotFound)
		return
	}

	result, err := handler(r.Context(), &request)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("tool call failed", zap.String("tool", request.Name), zap.Error(err))
		}
		http.Error(w, err.Error(), status)
		return
	}

	s.writeJSON(w, result)
}

func (s *AyurDietServer) writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, errUnknownFood):
		return http.StatusNotFound
	case errors.Is(err, errInvalidParams),
		errors.Is(err, patient.ErrValidation),
		errors.Is(err, constitution.ErrIncompleteAnswerSet),
		errors.Is(err, constitution.ErrInvalidAnswer),
		errors.Is(err, recipe.ErrInvalidRecipe),
		errors.Is(err, symptom.ErrInvalidEntry):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *AyurDietServer) Start(ctx context.Context) error {
	s.logger.Info("starting ayur-diet server", zap.String("addr", s.httpServer.Addr))

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	return s.Stop()
}

func (s *AyurDietServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func (s *AyurDietServer) createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
