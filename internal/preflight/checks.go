package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// TikaChecker probes a Tika server.
type TikaChecker interface {
	Check(ctx context.Context) (string, error)
	BaseURL() string
}

// CheckTika verifies that the Tika server answers its liveness endpoint.
func CheckTika(ctx context.Context, checker TikaChecker) Result {
	const name = "Tika"

	if checker == nil {
		return Result{Name: name, Detail: "not configured"}
	}
	greeting, err := checker.Check(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s unreachable (%v)", checker.BaseURL(), err)}
	}
	detail := strings.TrimSpace(greeting)
	if detail == "" {
		detail = "Reachable"
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckDirectoryAccess verifies that the directory exists and can be listed.
func CheckDirectoryAccess(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.X_OK, "read ok")
}

// CheckWritableDirectory verifies that the directory exists and accepts new
// files. A missing directory passes when its nearest existing ancestor is
// writable.
func CheckWritableDirectory(name, path string) Result {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		parent := filepath.Dir(path)
		for {
			if _, err := os.Stat(parent); err == nil || filepath.Dir(parent) == parent {
				break
			}
			parent = filepath.Dir(parent)
		}
		res := checkDirectory(name, parent, unix.W_OK|unix.X_OK, "writable")
		if res.Passed {
			res.Detail = fmt.Sprintf("%s (will be created)", path)
		}
		return res
	}
	return checkDirectory(name, path, unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok")
}

func checkDirectory(name, path string, mode uint32, okDetail string) Result {
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
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, okDetail)}
}
