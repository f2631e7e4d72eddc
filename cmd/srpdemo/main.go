// srpdemo runs a single SRP-6a handshake in-process, as a client and server
// pair exchanging public values and proofs purely in memory, and logs each
// step so the protocol's message flow can be inspected without standing up
// any transport.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fzdarsky/srp6a/internal/config"
	"github.com/fzdarsky/srp6a/internal/logging"
	"github.com/fzdarsky/srp6a/pkg/srp6a"
)

var (
	// version is set by build flags.
	version = "dev"
	commit  = "none"
)

func main() {
	configPath := flag.String("config", "", "path to a group configuration file (optional; defaults to the 2048-bit group)")
	identity := flag.String("identity", "alice", "identity string I used for the demo handshake")
	password := flag.String("password", "password123", "password P used for the demo handshake")
	flag.Parse()

	logger := logging.New(logging.LevelInfo, logging.FormatJSON)

	if err := run(*configPath, *identity, *password, logger); err != nil {
		logger.Error("handshake failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(configPath, identity, password string, logger *logging.Logger) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger = logging.New(parseLogLevel(cfg.Logging.Level), parseLogFormat(cfg.Logging.Format))
	logger.Info("srpdemo starting", map[string]any{
		"version":    version,
		"commit":     commit,
		"group_bits": cfg.Group.Bits,
		"salt_bytes": cfg.Group.SaltBytes,
	})

	params, err := cfg.Params()
	if err != nil {
		return fmt.Errorf("failed to resolve group parameters: %w", err)
	}

	salt, err := srp6a.GenKey(cfg.Group.SaltBytes)
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	verifier := srp6a.ComputeVerifier(params, salt, []byte(identity), []byte(password))
	logger.Info("provisioned verifier", map[string]any{
		"identity": identity,
		"salt":     salt,
		"verifier": verifier,
		"bits":     cfg.Group.Bits,
	})

	secret1, err := srp6a.GenKey(srp6a.DefaultEphemeralBytes)
	if err != nil {
		return fmt.Errorf("failed to generate client ephemeral secret: %w", err)
	}
	client, err := srp6a.NewClient(params, salt, []byte(identity), []byte(password), secret1)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}
	if client.ShortEphemeral(secret1) {
		logger.Warn("client ephemeral secret is shorter than recommended", nil)
	}

	secret2, err := srp6a.GenKey(srp6a.DefaultEphemeralBytes)
	if err != nil {
		return fmt.Errorf("failed to generate server ephemeral secret: %w", err)
	}
	server, err := srp6a.NewServer(params, verifier, secret2)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	aBuf := client.ComputeA()
	logger.Info("client -> server: A", map[string]any{"a": aBuf})

	bBuf := server.ComputeB()
	logger.Info("server -> client: B", map[string]any{"b": bBuf})

	if err := client.SetB(bBuf); err != nil {
		return fmt.Errorf("client rejected B: %w", err)
	}
	if err := server.SetA(aBuf); err != nil {
		return fmt.Errorf("server rejected A: %w", err)
	}

	clientM1, err := client.ComputeM1()
	if err != nil {
		return fmt.Errorf("failed to compute client proof: %w", err)
	}
	logger.Info("client -> server: M1", map[string]any{"m1": clientM1})

	if err := server.CheckM1(clientM1); err != nil {
		return fmt.Errorf("server rejected client proof: %w", err)
	}

	serverM2, err := server.ComputeM2()
	if err != nil {
		return fmt.Errorf("failed to compute server proof: %w", err)
	}
	logger.Info("server -> client: M2", map[string]any{"m2": serverM2})

	if err := client.CheckM2(serverM2); err != nil {
		return fmt.Errorf("client rejected server proof: %w", err)
	}

	clientK, err := client.ComputeK()
	if err != nil {
		return fmt.Errorf("failed to compute client session key: %w", err)
	}
	serverK, err := server.ComputeK()
	if err != nil {
		return fmt.Errorf("failed to compute server session key: %w", err)
	}

	logger.Info("handshake complete", map[string]any{
		"client_key": clientK,
		"server_key": serverK,
	})

	return nil
}

// loadConfig loads the demo's group configuration from path, or falls back
// to the registry's own defaults when no path was given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.Load(path)
}

func parseLogLevel(level string) logging.LogLevel {
	switch level {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLogFormat(format string) logging.LogFormat {
	if format == "human" {
		return logging.FormatHuman
	}
	return logging.FormatJSON
}
