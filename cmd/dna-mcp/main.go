// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dna-mcp/dna-mcp/pkg/mcp/toolset"
	"github.com/dna-mcp/dna-mcp/pkg/profile/dirnames"
	"github.com/dna-mcp/dna-mcp/pkg/version"
)

func main() {
	if err := newApp().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dna-mcp",
		Short:         "Model Context Protocol server for per-subject DNA analysis",
		Version:       strings.TrimPrefix(version.Version, "v"),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("log-level", "", "Set the logging level [trace, debug, info, warn, error]")
	cmd.PersistentFlags().String("log-format", "text", "Set the logging format [text, json]")
	cmd.PersistentFlags().Bool("debug", false, "Debug mode")
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return processGlobalFlags(cmd)
	}
	cmd.AddCommand(
		newInfoCommand(),
		newServeCommand(),
		newGenDocCommand(),
	)
	return cmd
}

func processGlobalFlags(rootCmd *cobra.Command) error {
	// --log-level will override --debug
	if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	l, _ := rootCmd.PersistentFlags().GetString("log-level")
	if l != "" {
		lvl, err := logrus.ParseLevel(l)
		if err != nil {
			return err
		}
		logrus.SetLevel(lvl)
	}

	logFormat, _ := rootCmd.PersistentFlags().GetString("log-format")
	switch logFormat {
	case "json":
		formatter := new(logrus.JSONFormatter)
		logrus.StandardLogger().SetFormatter(formatter)
	case "text":
		// logrus use text format by default.
		if runtime.GOOS == "windows" && isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			formatter := new(logrus.TextFormatter)
			// the default setting does not recognize cygwin on windows
			formatter.ForceColors = true
			logrus.StandardLogger().SetFormatter(formatter)
		}
	default:
		return fmt.Errorf("unsupported log-format: %q", logFormat)
	}
	return nil
}

func newServer() *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "dna-analysis",
		Title:   "DNA Analysis, for privacy-bounded queries over per-subject genetic data",
		Version: version.Version,
	}
	serverOpts := &mcp.ServerOptions{
		Instructions: `This MCP server provides read-only tools for analyzing DNA data with privacy
protection. DNA profiles are organized by subject; use list_subjects to discover them,
get_test_info / get_subject_info for the optional metadata files, and query_snp_data to look up
genotype rows for specific RSIDs (at most 10 per query; only the requested rows are ever returned).
`,
	}
	return mcp.NewServer(impl, serverOpts)
}

// resolveProfilesDir returns the --profiles-dir flag value if set,
// otherwise ~/dna-profiles (or $DNA_PROFILES).
func resolveProfilesDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("profiles-dir")
	if err != nil {
		return "", err
	}
	if dir != "" {
		return dir, nil
	}
	return dirnames.ProfilesDir()
}

func newInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show information about the MCP server",
		Args:  cobra.NoArgs,
		RunE:  infoAction,
	}
	return cmd
}

func infoAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	info, err := inspectInfo(ctx)
	if err != nil {
		return err
	}
	j, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(j))
	return err
}

func inspectInfo(ctx context.Context) (*Info, error) {
	root, err := dirnames.ProfilesDir()
	if err != nil {
		return nil, err
	}
	ts, err := toolset.New(root)
	if err != nil {
		return nil, err
	}
	server := newServer()
	if err = ts.RegisterServer(server); err != nil {
		return nil, err
	}
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, err
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return nil, err
	}
	toolsResult, err := clientSession.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, err
	}
	if err = clientSession.Close(); err != nil {
		return nil, err
	}
	if err = serverSession.Wait(); err != nil {
		return nil, err
	}
	info := &Info{
		Tools: toolsResult.Tools,
	}
	return info, nil
}

type Info struct {
	Tools []*mcp.Tool `json:"tools"`
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		Long: `Serve MCP over stdio.

Expected to be executed via an AI agent, not by a human`,
		Args: cobra.NoArgs,
		RunE: serveAction,
	}
	cmd.Flags().String("profiles-dir", "", `Profiles directory (default "~/dna-profiles", or $DNA_PROFILES)`)
	return cmd
}

func serveAction(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	root, err := resolveProfilesDir(cmd)
	if err != nil {
		return err
	}
	ts, err := toolset.New(root)
	if err != nil {
		return err
	}
	server := newServer()
	if err = ts.RegisterServer(server); err != nil {
		return err
	}
	logrus.Debugf("serving DNA profiles from %q", ts.Root())
	transport := &mcp.StdioTransport{}
	return server.Run(ctx, transport)
}

func newGenDocCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "generate-doc DIR",
		Short:  "Generate documentation pages",
		Args:   cobra.MinimumNArgs(1),
		RunE:   genDocAction,
		Hidden: true,
	}
	return cmd
}

func genDocAction(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	fName := filepath.Join(dir, "mcp.md")
	f, err := os.Create(fName)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprint(f, `---
title: MCP tools
weight: 99
---
dna-mcp implements the "DNA Query Interface":
https://pkg.go.dev/github.com/dna-mcp/dna-mcp/pkg/mcp/dqi

DNA Query Interface defines MCP (Model Context Protocol) tools for
read-only, privacy-bounded queries over per-subject genetic data
stored as flat files.

`)
	info, err := inspectInfo(ctx)
	if err != nil {
		return err
	}
	for _, tool := range info.Tools {
		fmt.Fprintf(f, "## `%s`\n\n", tool.Name)
		if tool.Title != "" {
			fmt.Fprintf(f, "### Title\n\n%s\n\n", tool.Title)
		}
		if tool.Description != "" {
			fmt.Fprintf(f, "### Description\n\n%s\n\n", tool.Description)
		}
		if tool.InputSchema != nil {
			fmt.Fprint(f, "### Input Schema\n\n")
			schema, err := json.MarshalIndent(tool.InputSchema, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintf(f, "```json\n%s\n```\n\n", string(schema))
		}
		if tool.OutputSchema != nil {
			fmt.Fprint(f, "### Output Schema\n\n")
			schema, err := json.MarshalIndent(tool.OutputSchema, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintf(f, "```json\n%s\n```\n\n", string(schema))
		}
	}
	return f.Close()
}
