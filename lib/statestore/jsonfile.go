package statestore

import (
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type JsonFile struct {
	path string
}

func NewJsonFile(path string) *JsonFile {
	return &JsonFile{path: path}
}

func (s *JsonFile) Load() map[string]string {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read state file", "path", s.path, "err", err)
		}
		return map[string]string{}
	}

	var statuses map[string]string
	err = json.Unmarshal(contents, &statuses)
	if err != nil {
		// a corrupt file is treated the same as a first run
		slog.Warn("state file is corrupt, starting from empty state", "path", s.path, "err", err)
		return map[string]string{}
	}
	if statuses == nil {
		return map[string]string{}
	}
	return statuses
}

func (s *JsonFile) Save(statuses map[string]string) error {
	contents, err := json.MarshalIndent(statuses, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, contents, 0644)
}
