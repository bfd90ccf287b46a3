package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/vanderheijden86/picbook/pkg/debug"
)

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// openInBrowser hands url to the platform opener without waiting for it.
// Set PICBOOK_NO_BROWSER=1 to suppress browser opening (useful for tests).
func openInBrowser(url string) error {
	if os.Getenv("PICBOOK_NO_BROWSER") != "" {
		debug.Log("browser disabled, not opening %s", url)
		return nil
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		if _, err := exec.LookPath("xdg-open"); err != nil {
			return fmt.Errorf("xdg-open not found in PATH")
		}
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

// copyCode puts the current sample on the clipboard, byte for byte.
func (m *Model) copyCode() {
	record, err := m.store.Get(m.nav.Current())
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if record.Code == "" {
		m.setStatus("This lesson has no code sample", true)
		return
	}

	if err := m.copyToClipboard(record.Code); err != nil {
		debug.Log("clipboard write failed: %v", err)
		m.setStatus(fmt.Sprintf("❌ Clipboard error: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("📋 Copied %d lines to clipboard", record.CodeLines()), false)
}

// openLink opens the collection's primary link.
func (m *Model) openLink() {
	link, ok := m.store.Meta().PrimaryLink()
	if !ok {
		m.setStatus("No link for this collection", true)
		return
	}
	if err := m.openURL(link.URL); err != nil {
		debug.Log("open %s failed: %v", link.URL, err)
		m.setStatus(fmt.Sprintf("❌ Could not open %s: %v", link.Label, err), true)
		return
	}
	m.setStatus("🔗 Opened "+link.Label, false)
}
