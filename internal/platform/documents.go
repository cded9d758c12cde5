// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DocumentsDir returns the user's documents directory. On Windows it is
// derived from %USERPROFILE%; elsewhere from the home directory. The
// directory is not created here.
func DocumentsDir() (string, error) {
	if runtime.GOOS == Windows {
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "Documents"), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "Documents"), nil
}
