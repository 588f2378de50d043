package installer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"buddy-setup/internal/logger"
)

// startSpinner starts a terminal spinner with the given message and returns
// a stop function to halt and clear it. Downloads of the larger archives
// (LanguageTool is well over 100 MB) run long enough that silence looks
// like a hang.
func startSpinner(message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}

// downloadFile downloads the content located at the specified URL and saves it to the destination path.
// It returns an error if the request, a non-2xx response, or the file write fails.
func downloadFile(url, destPath string) error {
	stop := startSpinner("downloading " + url)
	defer stop()

	// Make an HTTP GET request to the given URL
	resp, err := http.Get(url)
	if err != nil {
		// Wrap and return the error with context
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	// Ensure the response body stream is closed when the function returns,
	// avoiding resource leaks.
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			// Log error if closing response body fails, but do not return it
			logger.Error("[ERROR] Failed to close response body: %s\n", cerr)
		}
	}()

	// A 404 from a mirror still has a body; only 2xx responses are archives
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected HTTP status %d for %s", resp.StatusCode, url)
	}

	// Create or truncate the file at destPath to write the downloaded content
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	// Ensure the file is closed after writing to flush contents and release resources
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %s\n", cerr)
		}
	}()

	// Copy the entire response body (downloaded data) into the destination file
	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}

	// Log debug message confirming successful download and file location
	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}
