package areply

import "os"

// tempFilePattern names the temp files placeholder expansion writes.
const tempFilePattern = "areply-agent-*.json"

// writeTempJSON writes content to a fresh temp file readable only by the
// current user and returns its path. Callers own removal.
func writeTempJSON(content []byte) (string, error) {
	file, err := os.CreateTemp("", tempFilePattern)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.Write(content); err != nil {
		return "", err
	}

	if err := file.Chmod(0o600); err != nil {
		return "", err
	}

	return file.Name(), nil
}
