package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gabrielgad/crab/internal/ui"
)

const (
	repo       = "gabrielgad/crab"
	checkEvery = 24 * time.Hour
)

type releaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

type checkCache struct {
	LastCheck time.Time `json:"last_check"`
	Latest    string    `json:"latest"`
}

func cachePath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "crab", "update-check.json")
}

// CheckForUpdate checks GitHub for a newer crab and prints a notice if one
// exists. The result is cached for a day so most invocations stay offline.
func CheckForUpdate(currentVersion string) {
	path := cachePath()

	var cache checkCache
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &cache)
		if time.Since(cache.LastCheck) < checkEvery {
			if cache.Latest != "" && cache.Latest != currentVersion && cache.Latest != "v"+currentVersion {
				printUpdateMessage(currentVersion, cache.Latest)
			}
			return
		}
	}

	// Refresh the cache without holding up the command; the notice shows
	// on the next run.
	go func() {
		latest, err := fetchLatest()
		if err != nil {
			return
		}
		cache := checkCache{LastCheck: time.Now(), Latest: latest}
		data, _ := json.Marshal(cache)
		_ = os.MkdirAll(filepath.Dir(path), 0o755)
		_ = os.WriteFile(path, data, 0o644)
	}()
}

// CheckNow fetches the latest release synchronously and reports the result.
func CheckNow(currentVersion string) {
	latest, err := fetchLatest()
	if err != nil {
		ui.Warn.Printf("  Could not reach GitHub: %v\n", err)
		return
	}

	cache := checkCache{LastCheck: time.Now(), Latest: latest}
	data, _ := json.Marshal(cache)
	path := cachePath()
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	_ = os.WriteFile(path, data, 0o644)

	if latest == currentVersion || latest == "v"+currentVersion {
		ui.Good.Printf("  %s crab %s is up to date\n", ui.StatusIcon(true), currentVersion)
		return
	}
	printUpdateMessage(currentVersion, latest)
}

func fetchLatest() (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", repo))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release releaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	return release.TagName, nil
}

func printUpdateMessage(current, latest string) {
	fmt.Println()
	ui.Warn.Printf("  Update available: %s → %s\n", current, latest)
	fmt.Printf("  Run: go install github.com/%s@latest\n", repo)
}
