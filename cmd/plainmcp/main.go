package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/plainmcp/plainmcp/internal/config"
	"github.com/plainmcp/plainmcp/internal/plain"
	"github.com/plainmcp/plainmcp/internal/tools"
)

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "plainmcp",
	Short: "MCP server exposing Plain.com customer support tools",
	Long: `plainmcp serves the Model Context Protocol over stdio, translating
tool calls into GraphQL operations against the Plain.com support API.

Requires PLAIN_API_KEY; PLAIN_API_URL overrides the endpoint.`,
	Version: fmt.Sprintf("%s (commit: %s)", version, commit),
	RunE:    runServe,
}

var configPathFlag string

func init() {
	rootCmd.Flags().StringVar(&configPathFlag, "config", "", "Path to a YAML config file")
}

func runServe(cmd *cobra.Command, args []string) error {
	// stdout carries the MCP stream; all logging goes to stderr.
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return err
	}

	client := plain.NewClient(cfg.BaseURL, cfg.APIKey)
	defer client.Close()

	s := server.NewMCPServer("plainmcp", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	tools.Register(s, plain.NewService(client))

	log.Printf("plainmcp %s serving against %s", version, cfg.BaseURL)
	return server.ServeStdio(s)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
