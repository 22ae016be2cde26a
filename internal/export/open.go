package export

import "github.com/pkg/browser"

// Opener shows a written file to the user.
type Opener interface {
	Open(path string) error
}

// BrowserOpener hands the file to the platform's default handler
// (xdg-open, open, or rundll32).
type BrowserOpener struct{}

func (BrowserOpener) Open(path string) error {
	return browser.OpenFile(path)
}

// NopOpener does nothing.
type NopOpener struct{}

func (NopOpener) Open(string) error { return nil }
