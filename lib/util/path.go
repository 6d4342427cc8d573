package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"
)

// UserHome returns the current user's home directory. When os.UserHomeDir
// fails it tries $HOME and USERPROFILE, then the working directory, so path
// expansion keeps working in containers without a configured home.
func UserHome() string {
	home, err := os.UserHomeDir()
	if err == nil {
		return home
	}
	for _, env := range []string{"HOME", "USERPROFILE"} {
		if dir := os.Getenv(env); dir != "" {
			log.WithError(err).WithField("env", env).Warn("os.UserHomeDir failed, using environment")
			return dir
		}
	}
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		return "."
	}
	log.WithError(err).WithField("dir", wd).Warn("no home directory, using working directory")
	return wd
}

// ExpandPath expands a leading "~" to the user's home directory and returns
// the absolute form of the result. Surrounding blanks are part of the name.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", oops.Errorf("path is empty")
	}
	expanded := path
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		expanded = filepath.Join(UserHome(), path[1:])
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", oops.Wrapf(err, "resolve absolute path for %q", path)
	}
	return abs, nil
}

// CheckFileExists reports whether anything exists at path.
// Any stat failure, including a permission error, counts as absent.
func CheckFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
