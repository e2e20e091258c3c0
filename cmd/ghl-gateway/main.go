// ABOUTME: Entry point for the ghl-gateway MCP server
// ABOUTME: Wires config, store, tenant resolver, tool packs, and the HTTP listener

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/ghlkit/ghl-gateway/internal/admin"
	"github.com/ghlkit/ghl-gateway/internal/auth"
	"github.com/ghlkit/ghl-gateway/internal/config"
	"github.com/ghlkit/ghl-gateway/internal/mcp"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/store"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
	"github.com/ghlkit/ghl-gateway/internal/tools"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
       _     _
  __ _| |__ | |     __ _  __ _| |_ _____      ____ _ _   _
 / _' | '_ \| |____/ _' |/ _' | __/ _ \ \ /\ / / _' | | | |
| (_| | | | | |____| (_| | (_| | ||  __/\ V  V / (_| | |_| |
 \__, |_| |_|       \__, |\__,_|\__\___| \_/\_/ \__,_|\__, |
 |___/              |___/                             |___/
`

// getConfigPath returns the path to the gateway config file.
// Priority: GHL_GATEWAY_CONFIG env var > XDG_CONFIG_HOME/ghl-gateway/gateway.yaml > ~/.config/ghl-gateway/gateway.yaml
func getConfigPath() string {
	if envPath := os.Getenv("GHL_GATEWAY_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "gateway.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "ghl-gateway", "gateway.yaml")
}

// getDataPath returns the path to the gateway data directory.
// Priority: XDG_DATA_HOME/ghl-gateway > ~/.local/share/ghl-gateway
func getDataPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data" // fallback
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, "ghl-gateway")
}

func main() {
	// A .env next to the working directory feeds ${VAR} expansion in the
	// config file. Missing files are fine.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Println("Usage: ghl-gateway <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve                    Start the gateway server")
		fmt.Println("  init                     Create a new config file interactively")
		fmt.Println("  token create --label L   Mint an MCP access token")
		fmt.Println("  token list               List access tokens")
		fmt.Println("  token revoke ID          Revoke an access token")
		fmt.Println("  hash-password            Hash an admin password for the config file")
		fmt.Println("  health                   Check gateway health")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "init":
		err = runInit()
	case "token":
		err = runToken(ctx)
	case "hash-password":
		err = runHashPassword()
	case "health":
		err = runHealth(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	green.Print("    ▶ ")
	fmt.Printf("Config:   %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:     %s\n", cfg.Server.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("Database: %s\n", cfg.Database.Path)
	if !cfg.Auth.Required {
		yellow.Print("    ▶ ")
		fmt.Println("Auth:     disabled (every caller sees all tools)")
	}
	fmt.Println()

	logger.Info("starting ghl-gateway",
		"config", configPath,
		"http_addr", cfg.Server.HTTPAddr,
	)

	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = s.Close() }()

	resolver, err := tenant.NewResolver(tenant.Config{
		Store: s,
		Fallback: tenant.Fallback{
			APIKey:     cfg.GHL.APIKey,
			LocationID: cfg.GHL.LocationID,
		},
		BaseURL: cfg.GHL.BaseURL,
		Logger:  logger.With("component", "tenant"),
	})
	if err != nil {
		return fmt.Errorf("creating tenant resolver: %w", err)
	}

	registry := packs.NewRegistry(logger)
	if err := tools.RegisterAll(registry, resolver, s); err != nil {
		return fmt.Errorf("registering tool packs: %w", err)
	}
	logger.Info("tool packs registered", "tools", registry.ToolCount())

	dispatcher := packs.NewDispatcher(packs.DispatcherConfig{
		Registry: registry,
		Logger:   logger.With("component", "dispatcher"),
		Timeout:  cfg.Server.ToolTimeout,
	})

	var verifier auth.TokenVerifier
	if cfg.Auth.JWTSecret != "" {
		verifier = auth.NewJWTVerifier([]byte(cfg.Auth.JWTSecret))
	}

	mcpServer, err := mcp.NewServer(mcp.Config{
		Registry:      registry,
		Dispatcher:    dispatcher,
		Logger:        logger.With("component", "mcp"),
		TokenVerifier: verifier,
		TokenStore:    mcp.NewTokenStore(s),
		RequireAuth:   cfg.Auth.Required,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	mux := http.NewServeMux()
	mcpServer.RegisterRoutes(mux)

	if cfg.Admin.Password != "" {
		adminAPI := admin.New(s, mcp.NewTokenStore(s), logger)
		adminAPI.RegisterRoutes(mux, auth.RequirePassword(cfg.Admin.Password))
		logger.Info("admin API enabled")
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "version": version})
	})

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = &colorHandler{
			level: level,
		}
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// colorHandler provides colorized log output with thread-safe writes.
type colorHandler struct {
	mu     sync.Mutex
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	fmt.Print(buf.String())
	return nil
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups), len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups = append(newGroups, name)
	return &colorHandler{
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}

func runHealth(ctx context.Context) error {
	configPath := getConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	addr := cfg.Server.HTTPAddr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	url := fmt.Sprintf("http://%s/health", addr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}

	fmt.Println("healthy")
	return nil
}

// runToken manages MCP access tokens directly against the database, so
// tokens can be minted before the server is running.
func runToken(ctx context.Context) error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: ghl-gateway token <create|list|revoke>")
	}

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = s.Close() }()

	switch os.Args[2] {
	case "create":
		return runTokenCreate(ctx, s)
	case "list":
		return runTokenList(ctx, s)
	case "revoke":
		if len(os.Args) < 4 {
			return fmt.Errorf("usage: ghl-gateway token revoke ID")
		}
		if err := s.DeleteAccessToken(ctx, os.Args[3]); err != nil {
			return fmt.Errorf("revoking token: %w", err)
		}
		fmt.Println("revoked")
		return nil
	default:
		return fmt.Errorf("unknown token command: %s", os.Args[2])
	}
}

func runTokenCreate(ctx context.Context, s *store.SQLiteStore) error {
	// Supports both "--label value" and "--label=value" formats.
	var label string
	var caps []string
	args := os.Args[3:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--label" || arg == "-l":
			if i+1 >= len(args) {
				return fmt.Errorf("--label requires a value")
			}
			label = args[i+1]
			i++
		case strings.HasPrefix(arg, "--label="):
			label = strings.TrimPrefix(arg, "--label=")
		case arg == "--caps":
			if i+1 >= len(args) {
				return fmt.Errorf("--caps requires a value")
			}
			caps = splitCaps(args[i+1])
			i++
		case strings.HasPrefix(arg, "--caps="):
			caps = splitCaps(strings.TrimPrefix(arg, "--caps="))
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag: %s", arg)
		default:
			return fmt.Errorf("unexpected argument: %s", arg)
		}
	}
	if label == "" {
		return fmt.Errorf("--label flag is required")
	}

	raw, err := mcp.NewTokenStore(s).Mint(ctx, label, caps)
	if err != nil {
		return fmt.Errorf("minting token: %w", err)
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	green.Printf("  ✓ Token created: %s\n", label)
	if len(caps) > 0 {
		fmt.Printf("  Capabilities: %s\n", strings.Join(caps, ", "))
	} else {
		fmt.Println("  Capabilities: all")
	}
	fmt.Println()
	fmt.Printf("  %s\n", raw)
	fmt.Println()
	yellow.Println("  Store this token now; it cannot be retrieved again.")
	return nil
}

func splitCaps(s string) []string {
	var caps []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			caps = append(caps, c)
		}
	}
	return caps
}

func runTokenList(ctx context.Context, s *store.SQLiteStore) error {
	tokens, err := s.ListAccessTokens(ctx)
	if err != nil {
		return fmt.Errorf("listing tokens: %w", err)
	}
	if len(tokens) == 0 {
		fmt.Println("no access tokens")
		return nil
	}
	for _, t := range tokens {
		caps := "all"
		if len(t.Capabilities) > 0 {
			caps = strings.Join(t.Capabilities, ",")
		}
		fmt.Printf("%s  %-20s  caps=%s  created=%s\n",
			t.ID, t.Label, caps, t.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

// runHashPassword reads a password from stdin and prints its bcrypt hash
// for use as admin.password in the config file.
func runHashPassword() error {
	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimSpace(line)
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	fmt.Println(hash)
	return nil
}

func runInit() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("ghl-gateway configuration setup")
	fmt.Println("===============================")
	fmt.Println()

	defaultConfigPath := getConfigPath()
	defaultDataPath := getDataPath()
	defaultDbPath := filepath.Join(defaultDataPath, "gateway.db")

	outputFile := prompt(reader, "Config file path", defaultConfigPath)

	if _, err := os.Stat(outputFile); err == nil {
		overwrite := prompt(reader, "File exists. Overwrite?", "no")
		if strings.ToLower(overwrite) != "yes" && strings.ToLower(overwrite) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println("\n--- Server Configuration ---")
	httpAddr := prompt(reader, "HTTP address", "localhost:8080")

	fmt.Println("\n--- Database Configuration ---")
	dbPath := prompt(reader, "SQLite database path", defaultDbPath)

	fmt.Println("\n--- GoHighLevel Configuration ---")
	fmt.Println("Leave the API key as ${GHL_API_KEY} to read it from the environment.")
	apiKey := prompt(reader, "Fallback API key", "${GHL_API_KEY}")
	locationID := prompt(reader, "Fallback location ID", "${GHL_LOCATION_ID}")

	fmt.Println("\n--- Auth Configuration ---")
	authRequiredStr := prompt(reader, "Require MCP auth?", "no")
	authRequired := strings.ToLower(authRequiredStr) == "yes" || strings.ToLower(authRequiredStr) == "y"

	fmt.Println("\n--- Logging Configuration ---")
	logLevel := prompt(reader, "Log level (debug/info/warn/error)", "info")
	logFormat := prompt(reader, "Log format (text/json)", "text")

	var cfg strings.Builder
	cfg.WriteString("# ghl-gateway configuration\n")
	cfg.WriteString("# Generated by ghl-gateway init\n\n")

	cfg.WriteString("server:\n")
	cfg.WriteString(fmt.Sprintf("  http_addr: \"%s\"\n", httpAddr))
	cfg.WriteString("  tool_timeout: \"30s\"\n")
	cfg.WriteString("\n")

	cfg.WriteString("database:\n")
	cfg.WriteString(fmt.Sprintf("  path: \"%s\"\n", dbPath))
	cfg.WriteString("\n")

	cfg.WriteString("ghl:\n")
	cfg.WriteString(fmt.Sprintf("  api_key: \"%s\"\n", apiKey))
	cfg.WriteString(fmt.Sprintf("  location_id: \"%s\"\n", locationID))
	cfg.WriteString("\n")

	cfg.WriteString("auth:\n")
	cfg.WriteString(fmt.Sprintf("  required: %t\n", authRequired))
	cfg.WriteString("\n")

	cfg.WriteString("admin:\n")
	cfg.WriteString("  # Generate with: ghl-gateway hash-password\n")
	cfg.WriteString("  password: \"\"\n")
	cfg.WriteString("\n")

	cfg.WriteString("logging:\n")
	cfg.WriteString(fmt.Sprintf("  level: \"%s\"\n", logLevel))
	cfg.WriteString(fmt.Sprintf("  format: \"%s\"\n", logFormat))

	configDir := filepath.Dir(outputFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(outputFile, []byte(cfg.String()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	dataDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	fmt.Printf("\nConfig written to %s\n", outputFile)
	fmt.Printf("Data directory: %s\n", dataDir)
	fmt.Println("\nTo start the server:")
	fmt.Printf("  ghl-gateway serve\n")

	return nil
}

func prompt(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", question, defaultVal)
	} else {
		fmt.Printf("%s: ", question)
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		// On EOF or error, return default
		fmt.Println()
		return defaultVal
	}
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultVal
	}
	return input
}
