package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/vignes"
	"github.com/aretw0/vignes/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ConstantsURI is the resource exposing the model constants.
const ConstantsURI = "vignes://constants"

// Estimator defines the interface required by the MCP server.
type Estimator interface {
	Estimate(ctx context.Context, q domain.Query) (domain.Result, error)
	Constants() domain.ModelConstants
}

// EstimateArgs are the arguments of the estimate_diffusivity tool.
type EstimateArgs struct {
	Xa float64 `json:"xa"`
	T  float64 `json:"t"`
}

// Server wraps the Estimator and exposes it as an MCP Server.
type Server struct {
	estimator Estimator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(est Estimator) *Server {
	s := &Server{
		estimator: est,
		mcpServer: server.NewMCPServer("vignes-mcp", strings.TrimSpace(vignes.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("MCP Server shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: estimate_diffusivity
	estimateTool := mcp.NewTool("estimate_diffusivity",
		mcp.WithDescription("Estimate the mutual diffusion coefficient of the binary mixture for a mole fraction of A and an absolute temperature."),
		mcp.WithNumber("xa", mcp.Required(), mcp.Description("Mole fraction of component A, strictly between 0 and 1")),
		mcp.WithNumber("t", mcp.Required(), mcp.Description("Absolute temperature in Kelvin, strictly positive")),
		mcp.WithOutputSchema[domain.Result](),
	)
	s.mcpServer.AddTool(estimateTool, mcp.NewStructuredToolHandler(s.handleEstimate))
}

func (s *Server) handleEstimate(ctx context.Context, request mcp.CallToolRequest, args EstimateArgs) (domain.Result, error) {
	res, err := s.estimator.Estimate(ctx, domain.Query{Xa: args.Xa, T: args.T})
	if err != nil {
		slog.Debug("MCP Estimate: rejected", "xa", args.Xa, "t", args.T, "error", err)
		return domain.Result{}, fmt.Errorf("estimate failed: %w", err)
	}
	if !res.Finite() {
		return domain.Result{}, fmt.Errorf("%w (xa=%v, t=%v)", domain.ErrNonFinite, args.Xa, args.T)
	}
	return res, nil
}

func (s *Server) registerResources() {
	// EXPOSE: vignes://constants
	s.mcpServer.AddResource(mcp.NewResource(ConstantsURI, "Model Constants",
		mcp.WithResourceDescription("Parameters of the local-composition diffusion correlation"),
		mcp.WithMIMEType("application/json"),
	), s.handleConstants)
}

func (s *Server) handleConstants(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.estimator.Constants())
	if err != nil {
		return nil, fmt.Errorf("failed to encode constants: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ConstantsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
