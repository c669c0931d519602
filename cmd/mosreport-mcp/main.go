package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mosreport/internal/adapters/filesystem"
	mcpadapter "mosreport/internal/adapters/mcp"
	"mosreport/internal/config"
	"mosreport/internal/logger"
)

func main() {
	defaultConfig, explicit := config.ConfigFile()
	configFlag := flag.String("config", defaultConfig, "path to the config file")
	rootFlag := flag.String("root", "", "research root containing the Evaluation folder")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := config.Load(*configFlag, explicit)
	if err != nil {
		log.Fatalf("mosreport-mcp: %v", err)
	}

	// stdout carries the protocol
	if err := logger.Init(cfg.LogLevel(), os.Stderr); err != nil {
		logger.Log.Warnf("unknown log level, using %s", logger.DefaultLevel)
	}

	root := cfg.RootPath()
	if *rootFlag != "" {
		root = *rootFlag
	}
	repo := filesystem.NewRepository(root)

	mcpServer := server.NewMCPServer(
		"mosreport-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("mosreport-mcp: %v", err)
	}
}
