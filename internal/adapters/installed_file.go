package adapters

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"transition-planner/internal/ports"
)

// InstalledFileAdapter reads installed package names, one per line.
// Blank lines and lines starting with '#' are skipped.
type InstalledFileAdapter struct{}

func NewInstalledFileAdapter() InstalledFileAdapter {
	return InstalledFileAdapter{}
}

func (a InstalledFileAdapter) LoadInstalled(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("installed package list not found").
			WithCause(err)
	}
	return ParseInstalled(content)
}

func ParseInstalled(content []byte) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read installed package list").
			WithCause(err)
	}
	return names, nil
}

var _ ports.InstalledSourcePort = InstalledFileAdapter{}
