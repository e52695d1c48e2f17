package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const defaultBoardSize uint8 = 10

type Config struct {
	Stage string
	Port  int

	// host:port the other peers use to reach this one. This is also the
	// peer's identity in every room.
	PeerAddress string

	// Empty means state is kept in memory only
	DatabaseURL string

	BoardSize uint8
}

// Load reads .env outside of prod, then the environment.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Stage:       os.Getenv("STAGE"),
		PeerAddress: os.Getenv("PEER_ADDRESS"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		BoardSize:   defaultBoardSize,
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %q", cfg.Stage)
	}

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT: %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	if cfg.PeerAddress == "" {
		cfg.PeerAddress = fmt.Sprintf("127.0.0.1:%d", port)
	}

	if raw := os.Getenv("BOARD_SIZE"); raw != "" {
		size, err := strconv.ParseUint(raw, 10, 8)
		if err != nil || size == 0 {
			return Config{}, fmt.Errorf("invalid BOARD_SIZE: %q", raw)
		}
		cfg.BoardSize = uint8(size)
	}

	return cfg, nil
}
