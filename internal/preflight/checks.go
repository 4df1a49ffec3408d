package preflight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"studytrack/internal/catalog"
	"studytrack/internal/config"
	"studytrack/internal/store"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckCatalog verifies that the course catalog loads and validates. An empty
// path checks the built-in catalog.
func CheckCatalog(path string) Result {
	const name = "Course catalog"

	cat, err := catalog.Load(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	source := "built-in"
	if path != "" {
		source = path
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d lessons)", source, cat.TotalLessons())}
}

// CheckDatabase opens the progress database and runs its health checks. A
// database held by another process reports the lock instead of failing hard.
func CheckDatabase(ctx context.Context, cfg *config.Config) Result {
	const name = "Progress database"

	s, err := store.Open(cfg)
	if err != nil {
		if errors.Is(err, store.ErrLocked) {
			return Result{Name: name, Detail: "locked by another studytrack process"}
		}
		return Result{Name: name, Detail: err.Error()}
	}
	defer s.Close()

	health, err := s.CheckHealth(ctx)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if !health.IntegrityCheck {
		return Result{Name: name, Detail: "integrity check failed"}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d keys)", cfg.DatabasePath(), health.TotalBlobs)}
}

// CheckNtfy verifies that the configured ntfy endpoint is reachable. No
// message is published; the server root answering at all is enough.
func CheckNtfy(ctx context.Context, topic string) Result {
	const name = "ntfy"

	endpoint := strings.TrimSpace(topic)
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodHead, endpoint, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("invalid topic url (%v)", err)}
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("unreachable (%v)", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return Result{Name: name, Detail: fmt.Sprintf("server error (%d)", resp.StatusCode)}
	}
	return Result{Name: name, Passed: true, Detail: "Reachable"}
}
