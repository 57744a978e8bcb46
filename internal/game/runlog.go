package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunLog summarizes one finished run.
type RunLog struct {
	Timestamp     time.Time `json:"timestamp"`
	Session       string    `json:"session"`
	Seed          int64     `json:"seed"`
	Outcome       string    `json:"outcome"`
	Turns         int       `json:"turns"`
	DeepestDepth  int       `json:"deepest_depth"`
	ReachedCavern bool      `json:"reached_cavern"`
}

// saveRunLog appends run as a single JSON line to runs.jsonl in dir.
func saveRunLog(dir string, run RunLog) error {
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now().UTC()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("run log dir: %w", err)
	}
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()
	_, err = f.Write(append(data, '\n'))
	return err
}

// RunLogDir returns the directory where run logs are stored:
// $XDG_DATA_HOME/cavecrawler, defaulting to ~/.local/share/cavecrawler.
func RunLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "cavecrawler"), nil
}
