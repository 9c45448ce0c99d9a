package fileio

import (
	"bufio"
	"fmt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robinovitch61/vl/internal/message"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

const timestampFormat = "20060102T150405Z"

// GetSaveCommand writes content, one line per entry, to fileName in the background. An empty fileName saves to a
// timestamped file in the working directory
func GetSaveCommand(fileName string, content []string) tea.Cmd {
	return func() tea.Msg {
		savePathWithFileName, err := saveToFile(fileName, content, time.Now())
		if err != nil {
			return message.SaveCompleteMsg{ErrMessage: fmt.Sprintf("Error saving: %s", err.Error())}
		}
		return message.SaveCompleteMsg{
			FullPath:       savePathWithFileName,
			SuccessMessage: fmt.Sprintf("Saved %d lines to %s", len(content), savePathWithFileName),
		}
	}
}

func saveToFile(fileName string, fileContent []string, now time.Time) (string, error) {
	stamp := now.UTC().Format(timestampFormat)
	path, err := resolvePath(fileName, stamp)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	path, err = uniquePath(path, stamp)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range fileContent {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return "", err
		}
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return path, nil
}

// resolvePath expands ~, defaults the name to vl-<stamp> and the extension to .txt, and makes the path absolute
func resolvePath(fileName, stamp string) (string, error) {
	if fileName == "" {
		fileName = "vl-" + stamp
	}
	if strings.Contains(fileName, "~") {
		currUser, err := user.Current()
		if err != nil {
			return "", err
		}
		fileName = strings.ReplaceAll(fileName, "~", currUser.HomeDir)
	}
	if filepath.Ext(fileName) == "" {
		fileName += ".txt"
	}
	return filepath.Abs(fileName)
}

// uniquePath appends the stamp to the file name if something already exists at path
func uniquePath(path, stamp string) (string, error) {
	exists, err := fileOrDirectoryExists(path)
	if err != nil || !exists {
		return path, err
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + stamp + ext, nil
}

func fileOrDirectoryExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
