// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package windows

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ctwidget "github.com/magpierre/fyne-closuretable/widget"
)

// dirEntry is one line of the file picker.
type dirEntry struct {
	name  string
	isDir bool
}

// listDirectory returns the sub directories and data files of dir.
// Directories come first, hidden entries are skipped.
func listDirectory(dir string) ([]dirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var dirs, files []dirEntry
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, dirEntry{name: name, isDir: true})
		} else if DetectFileType(name) != FileTypeUnknown {
			files = append(files, dirEntry{name: name})
		}
	}
	return slices.Concat(dirs, files), nil
}

// FilePicker is a dialog listing data files on a SimpleList.
type FilePicker struct {
	dialog      dialog.Dialog
	window      fyne.Window
	callback    func(string)
	list        *ctwidget.SimpleList
	entries     []dirEntry
	homeDir     string
	currentPath string
	pathLabel   *widget.Label
}

// NewFilePicker creates a picker starting in dir, or the home directory
// when dir is empty. callback receives the chosen file.
func NewFilePicker(w fyne.Window, dir string, callback func(string)) *FilePicker {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	if dir == "" {
		dir = homeDir
	}

	fp := &FilePicker{
		window:      w,
		callback:    callback,
		homeDir:     homeDir,
		currentPath: dir,
		pathLabel:   widget.NewLabel(dir),
		list:        ctwidget.NewSimpleList(),
	}
	fp.pathLabel.Truncation = fyne.TextTruncateEllipsis
	fp.pathLabel.TextStyle = fyne.TextStyle{Bold: true}

	adapter := fp.list.Adapter()
	adapter.Count = func() int { return len(fp.entries) }
	adapter.Text = func(row int) string {
		if row < 0 || row >= len(fp.entries) {
			return ""
		}
		e := fp.entries[row]
		if e.isDir {
			return e.name + string(filepath.Separator)
		}
		return e.name
	}
	adapter.OnDoubleClicked = fp.open
	return fp
}

// Dir returns the directory shown.
func (fp *FilePicker) Dir() string {
	return fp.currentPath
}

// Show loads the current directory and shows the dialog.
func (fp *FilePicker) Show() {
	homeButton := widget.NewButtonWithIcon("Home", theme.HomeIcon(), func() {
		fp.navigate(fp.homeDir)
	})
	upButton := widget.NewButtonWithIcon("Up", theme.NavigateBackIcon(), func() {
		fp.navigate(filepath.Dir(fp.currentPath))
	})
	refreshButton := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), func() {
		fp.navigate(fp.currentPath)
	})

	navToolbar := container.NewBorder(nil, nil,
		container.NewHBox(homeButton, upButton, refreshButton), nil,
		fp.pathLabel,
	)

	instructions := widget.NewRichTextFromMarkdown("**Select a data file (.csv or .parquet)**\n\nDouble-click a folder to open it, or a file to load it.")
	instructions.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(
		container.NewVBox(instructions, widget.NewSeparator(), navToolbar, widget.NewSeparator()),
		nil, nil, nil,
		fp.list,
	)

	fp.dialog = dialog.NewCustom("Open Data File", "Close", content, fp.window)
	fp.dialog.Resize(fyne.NewSize(800, 600))
	fp.navigate(fp.currentPath)
	fp.dialog.Show()
}

// open handles a double click on a row.
func (fp *FilePicker) open(row int) {
	if row < 0 || row >= len(fp.entries) {
		return
	}
	e := fp.entries[row]
	path := filepath.Join(fp.currentPath, e.name)
	if e.isDir {
		fp.navigate(path)
		return
	}

	if fp.dialog != nil {
		fp.dialog.Hide()
	}
	if fp.callback != nil {
		fp.callback(path)
	}
}

func (fp *FilePicker) navigate(dir string) {
	entries, err := listDirectory(dir)
	if err != nil {
		if fp.window != nil {
			dialog.ShowError(err, fp.window)
		}
		return
	}

	fp.currentPath = dir
	fp.entries = entries
	fp.pathLabel.SetText(dir)
	fp.list.ClearSelection()
	fp.list.Reload()
}
