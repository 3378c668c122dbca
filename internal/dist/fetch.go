package dist

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/danieljhkim/hms-sandbox/internal/util"
)

// Distribution tarballs run to several hundred MB; the timeout bounds the
// whole transfer, not individual reads.
var httpClient = &http.Client{Timeout: 30 * time.Minute}

// Ensure makes the distribution available at its InstallDir. An existing
// install is left alone with no network traffic; otherwise the archive is
// downloaded (unless already staged), extracted next to it, and removed.
func Ensure(d Distribution) error {
	if util.FileExists(d.InstallDir) {
		util.Log("%s %s already installed, skipping", d.Name, d.Version)
		return nil
	}

	root := filepath.Dir(d.InstallDir)
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", root, err)
	}

	archivePath := d.ArchivePath()
	if !util.FileExists(archivePath) {
		util.Log("Downloading %s %s...", d.Name, d.Version)
		tmpPath := archivePath + ".tmp"
		if err := downloadFile(d.URL, tmpPath); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to download %s from %s: %w", d.Name, d.URL, err)
		}
		if err := os.Rename(tmpPath, archivePath); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to move archive to %s: %w", archivePath, err)
		}
	}

	util.Log("Extracting %s...", d.Archive)
	if err := extractTarGz(archivePath, root); err != nil {
		return fmt.Errorf("failed to extract %s: %w", d.Archive, err)
	}

	// Reclaim the archive's disk space once its contents are unpacked.
	if err := os.Remove(archivePath); err != nil {
		return fmt.Errorf("failed to remove archive %s: %w", archivePath, err)
	}

	if !util.FileExists(d.InstallDir) {
		return fmt.Errorf("%s did not contain expected directory %s", d.Archive, filepath.Base(d.InstallDir))
	}

	util.Log("Installed %s %s to %s", d.Name, d.Version, d.InstallDir)
	return nil
}

// EnsureJar downloads a jar to jarPath unless it is already present. Jars
// are used as-is; there is nothing to extract.
func EnsureJar(url, jarPath string) error {
	if util.FileExists(jarPath) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(jarPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(jarPath), err)
	}

	util.Log("Downloading %s...", filepath.Base(jarPath))

	tmpPath := jarPath + ".tmp"
	if err := downloadFile(url, tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to download jar from %s: %w", url, err)
	}
	if err := os.Rename(tmpPath, jarPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move jar to %s: %w", jarPath, err)
	}

	return nil
}

// downloadFile downloads a file from a URL to a local path
func downloadFile(url, destPath string) error {
	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer out.Close()

	resp, err := httpClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	_, err = io.Copy(out, resp.Body)
	if err != nil {
		return err
	}

	return nil
}
