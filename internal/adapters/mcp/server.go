// Package mcp exposes the sequence engine as a Model Context Protocol
// server, so AI agents can generate sequences as tool calls.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nthterm/nthterm"
	"github.com/nthterm/nthterm/pkg/domain"
)

// SumResponse is the structured result of the series_sum tool.
type SumResponse struct {
	Kind      domain.Kind `json:"kind" jsonschema_description:"Sequence kind"`
	ClosedSum float64     `json:"closed_sum" jsonschema_description:"Series sum by closed form"`
	DirectSum float64     `json:"direct_sum" jsonschema_description:"Series sum by direct summation"`
}

// Generator defines the interface required by the MCP server.
type Generator interface {
	Generate(ctx context.Context, p domain.Parameters) (*domain.Result, error)
}

// Server wraps the sequence engine and exposes it as an MCP Server.
type Server struct {
	gen       Generator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(gen Generator) *Server {
	s := &Server{
		gen:       gen,
		mcpServer: server.NewMCPServer("nthterm-mcp", nthterm.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
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
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: generate_sequence
	generateTool := mcp.NewTool("generate_sequence",
		mcp.WithDescription("Generate an arithmetic or geometric sequence with summary statistics."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Sequence kind: 'arithmetic' or 'geometric'")),
		mcp.WithNumber("first_term", mcp.Description("The first term of the sequence (default 1)")),
		mcp.WithNumber("step", mcp.Description("Common difference (arithmetic) or common ratio (geometric)")),
		mcp.WithNumber("term_count", mcp.Required(), mcp.Description("Number of terms to generate (1-1000)")),
		mcp.WithOutputSchema[domain.Result](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerate))

	// TOOL: series_sum
	sumTool := mcp.NewTool("series_sum",
		mcp.WithDescription("Compute the series sum (closed form and direct) without returning the terms."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Sequence kind: 'arithmetic' or 'geometric'")),
		mcp.WithNumber("first_term", mcp.Description("The first term of the sequence (default 1)")),
		mcp.WithNumber("step", mcp.Description("Common difference (arithmetic) or common ratio (geometric)")),
		mcp.WithNumber("term_count", mcp.Required(), mcp.Description("Number of terms to sum (1-1000)")),
		mcp.WithOutputSchema[SumResponse](),
	)
	s.mcpServer.AddTool(sumTool, mcp.NewStructuredToolHandler(s.handleSum))
}

// Handler methods for structured tools

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Result, error) {
	params, err := decodeParams(args)
	if err != nil {
		return domain.Result{}, err
	}

	res, err := s.gen.Generate(ctx, params)
	if err != nil {
		slog.Warn("MCP generate_sequence rejected", "err", err)
		return domain.Result{}, fmt.Errorf("generate failed: %w", err)
	}
	return *res, nil
}

func (s *Server) handleSum(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SumResponse, error) {
	params, err := decodeParams(args)
	if err != nil {
		return SumResponse{}, err
	}

	res, err := s.gen.Generate(ctx, params)
	if err != nil {
		slog.Warn("MCP series_sum rejected", "err", err)
		return SumResponse{}, fmt.Errorf("sum failed: %w", err)
	}
	return SumResponse{
		Kind:      params.Kind,
		ClosedSum: res.ClosedSum,
		DirectSum: res.DirectSum,
	}, nil
}

// decodeParams converts loose tool arguments into Parameters, filling the
// kind's defaults for omitted values.
func decodeParams(args map[string]interface{}) (domain.Parameters, error) {
	params, err := domain.ParametersFromMap(args)
	if err != nil {
		return domain.Parameters{}, fmt.Errorf("invalid arguments: %w", err)
	}
	if _, ok := args["first_term"]; !ok {
		params.FirstTerm = 1
	}
	if _, ok := args["step"]; !ok {
		params.Step = params.Kind.DefaultStep()
	}
	return params, nil
}

func (s *Server) registerResources() {
	// EXPOSE: nthterm://formulas
	s.mcpServer.AddResource(mcp.NewResource("nthterm://formulas", "Sequence Formulas",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		formulas := map[string]string{
			"arithmetic_term": "aₙ = a₁ + (n-1)d",
			"arithmetic_sum":  "Sₙ = n/2 × (2a₁ + (n-1)d)",
			"geometric_term":  "aₙ = a₁ × rⁿ⁻¹",
			"geometric_sum":   "Sₙ = a₁ × (1 - rⁿ) / (1 - r), or n×a₁ when r = 1",
		}
		jsonBytes, _ := json.Marshal(formulas)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "nthterm://formulas",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
