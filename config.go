package main // import "github.com/tonobo/gridsnake"

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-kit/log/level"
)

// AppConfig is the on-disk configuration of the server.
type AppConfig struct {
	Port           string `json:"port"`
	Debug          bool   `json:"debug"`
	LogLevel       string `json:"log_level"`
	Journal        string `json:"journal"`
	BoardSize      int    `json:"board_size"`
	OpponentStride int    `json:"opponent_stride"`
	SessionIdle    int    `json:"session_idle"` // seconds
}

func (c AppConfig) SessionIdleTimeout() time.Duration {
	return time.Duration(c.SessionIdle) * time.Second
}

func DefaultConfig() AppConfig {
	return AppConfig{
		Port:           "8080",
		LogLevel:       "info",
		Journal:        "moves.db",
		BoardSize:      DefaultBoardSize,
		OpponentStride: OpponentStride,
		SessionIdle:    DefaultSessionIdle,
	}
}

var (
	configMu sync.RWMutex
	current  = DefaultConfig()
)

func CurrentConfig() AppConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return current
}

func setConfig(cfg AppConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	current = cfg
}

// LoadConfig reads filePath, writing the defaults there first if it does not
// exist, and makes the result current.
func LoadConfig(filePath string) (AppConfig, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := saveConfig(filePath, cfg); err != nil {
			return cfg, err
		}
		setConfig(cfg)
		return cfg, nil
	}
	cfg, err := readConfig(filePath)
	if err != nil {
		return cfg, err
	}
	setConfig(cfg)
	return cfg, nil
}

// readConfig decodes over the defaults so absent keys keep them.
func readConfig(filePath string) (AppConfig, error) {
	cfg := DefaultConfig()
	file, err := os.Open(filePath)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", filePath, err)
	}
	if cfg.BoardSize <= 0 {
		cfg.BoardSize = DefaultBoardSize
	}
	if cfg.OpponentStride <= 0 {
		cfg.OpponentStride = OpponentStride
	}
	if cfg.SessionIdle <= 0 {
		cfg.SessionIdle = DefaultSessionIdle
	}
	return cfg, nil
}

func saveConfig(filePath string, cfg AppConfig) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// WatchConfig reloads filePath whenever it is written and passes the new
// config to onChange. Close the returned watcher to stop.
func WatchConfig(filePath string, onChange func(AppConfig)) (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		watcher.Close()
		return nil, err
	}
	target := filepath.Clean(filePath)

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
					continue
				}
				cfg, err := readConfig(filePath)
				if err != nil {
					_ = level.Warn(GlobalLogger()).Log("msg", "config reload", "err", err)
					continue
				}
				setConfig(cfg)
				_ = level.Info(GlobalLogger()).Log("msg", "config reloaded", "path", filePath)
				if onChange != nil {
					onChange(cfg)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				_ = level.Error(GlobalLogger()).Log("msg", "config watcher", "err", err)
			}
		}
	}()
	return watcher, nil
}
