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
	"fmt"
	"path/filepath"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/sirupsen/logrus"

	ctwidget "github.com/magpierre/fyne-closuretable/widget"
)

// AppID identifies the application preferences.
const AppID = "closuretable"

const lastDirectoryKey = "lastDirectory"

// Options configures the main window.
type Options struct {
	// Files are opened once the window is shown.
	Files []string
	// MultipleSelection allows more than one selected row per table.
	MultipleSelection bool
	// TimeoutSeconds bounds a Parquet read.
	TimeoutSeconds int
	// Verbose enables debug logging.
	Verbose bool
}

type MainWindow struct {
	a           fyne.App
	w           fyne.Window
	options     Options
	config      ctwidget.Config
	docTabs     *container.DocTabs
	contacts    *ContactsTab
	dataBrowser *DataBrowser
	fileList    *ctwidget.SimpleList
	openFiles   []string
	statusBar   *widget.Label
}

// Run creates the application, opens the files of opts and blocks until
// the window is closed.
func Run(opts Options) {
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(&CustomTheme{})

	t := NewMainWindow(a, opts)
	for _, path := range opts.Files {
		t.OpenFile(path)
	}
	t.w.ShowAndRun()
}

// NewMainWindow builds the window content of a.
func NewMainWindow(a fyne.App, opts Options) *MainWindow {
	t := &MainWindow{
		a:       a,
		options: opts,
		config:  ctwidget.DefaultConfig(),
	}
	t.config.MultipleSelection = opts.MultipleSelection

	t.w = a.NewWindow("Closure Table")
	t.w.Resize(fyne.NewSize(900, 600))

	t.statusBar = widget.NewLabel("Ready")
	t.statusBar.TextStyle = fyne.TextStyle{Italic: true}

	t.contacts = NewContactsTab(NewContactBook(), t.config, t.SetStatus)

	t.fileList = ctwidget.NewSimpleList()
	files := t.fileList.Adapter()
	files.Items = func() []any {
		items := make([]any, len(t.openFiles))
		for i, path := range t.openFiles {
			items[i] = filepath.Base(path)
		}
		return items
	}
	files.OnSelected = func(row int) {
		if row >= 0 && row < len(t.openFiles) {
			t.SetStatus(t.openFiles[row])
		}
	}
	files.OnDoubleClicked = func(row int) {
		if row >= 0 && row < len(t.openFiles) {
			t.OpenFile(t.openFiles[row])
		}
	}
	filesTab := container.NewTabItemWithIcon("Files", theme.FolderOpenIcon(),
		widget.NewCard("", "Double-click a file to open it again", t.fileList))

	t.docTabs = container.NewDocTabs(t.contacts.Tab(), filesTab)
	t.dataBrowser = NewDataBrowser(t.w, t.docTabs, t.config, t.SetStatus)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FileIcon(), t.ShowOpenDialog),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.AccountIcon(), func() {
			t.docTabs.Select(t.contacts.Tab())
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			t.docTabs.Select(filesTab)
		}),
		widget.NewToolbarSpacer(),
	)

	t.w.SetContent(container.NewBorder(toolbar, container.NewHBox(t.statusBar), nil, nil, t.docTabs))
	return t
}

// SetStatus updates the status bar message
func (t *MainWindow) SetStatus(message string) {
	if t.statusBar != nil {
		t.statusBar.SetText(message)
	}
}

// ShowOpenDialog shows the file picker in the last used directory.
func (t *MainWindow) ShowOpenDialog() {
	dir := t.a.Preferences().String(lastDirectoryKey)
	NewFilePicker(t.w, dir, t.OpenFile).Show()
}

// OpenFile loads path on a goroutine and opens it in a data tab.
func (t *MainWindow) OpenFile(path string) {
	t.SetStatus(fmt.Sprintf("Loading %s...", filepath.Base(path)))

	go func() {
		tbl, err := LoadDataFile(path, t.options.TimeoutSeconds)
		fyne.Do(func() {
			if err != nil {
				logger.WithField("path", path).WithError(err).Error("failed to load file")
				t.SetStatus(fmt.Sprintf("Error: %v", err))
				dialog.ShowError(err, t.w)
				return
			}
			defer tbl.Release()

			if err := t.openTable(path, tbl); err != nil {
				logger.WithField("path", path).WithError(err).Error("failed to open table")
				t.SetStatus(fmt.Sprintf("Error: %v", err))
				dialog.ShowError(err, t.w)
			}
		})
	}()
}

// openTable shows a loaded table and records its file.
func (t *MainWindow) openTable(path string, tbl arrow.Table) error {
	if _, err := t.dataBrowser.CreateDataBrowser(tbl, tableNameFor(path)); err != nil {
		return err
	}

	t.a.Preferences().SetString(lastDirectoryKey, filepath.Dir(path))
	if !slices.Contains(t.openFiles, path) {
		t.openFiles = append(t.openFiles, path)
		t.fileList.Reload()
	}

	fields := logrus.Fields{"path": path, "rows": tbl.NumRows()}
	if DetectFileType(path) == FileTypeCSV {
		if sep, err := detectCSVSeparator(path); err == nil {
			fields["separator"] = getSeparatorName(sep)
		}
	}
	logger.WithFields(fields).Info("loaded file")
	return nil
}
