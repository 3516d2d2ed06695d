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

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/sirupsen/logrus"

	arrowadapter "github.com/magpierre/fyne-closuretable/adapters/arrow"
	ctwidget "github.com/magpierre/fyne-closuretable/widget"
)

// Data holds information about a table tab.
type Data struct {
	source    *arrowadapter.Source
	table     *ctwidget.ArrayTable[arrowadapter.Row]
	tab       *container.TabItem
	tableName string
}

// DataBrowser opens data files as closable tabs.
type DataBrowser struct {
	w              fyne.Window
	docTabs        *container.DocTabs
	tabDataMap     map[*container.TabItem]*Data
	config         ctwidget.Config
	statusCallback func(string)
}

// NewDataBrowser adds data tabs to docTabs. Tabs that are not data tabs
// can not be closed.
func NewDataBrowser(w fyne.Window, docTabs *container.DocTabs, config ctwidget.Config, statusCallback func(string)) *DataBrowser {
	t := &DataBrowser{
		w:              w,
		docTabs:        docTabs,
		tabDataMap:     make(map[*container.TabItem]*Data),
		config:         config,
		statusCallback: statusCallback,
	}

	docTabs.CloseIntercept = func(ti *container.TabItem) {
		data, exists := t.tabDataMap[ti]
		if !exists {
			return
		}
		data.source.Release()
		delete(t.tabDataMap, ti)
		docTabs.Remove(ti)

		if selected := docTabs.Selected(); selected != nil {
			t.updateStatusForTab(selected)
		} else {
			t.setStatus("Ready")
		}
	}
	return t
}

// TabCount returns the number of open data tabs.
func (t *DataBrowser) TabCount() int {
	return len(t.tabDataMap)
}

// CreateDataBrowser opens arrowTable in a new tab. The browser keeps its own
// reference, the caller still releases arrowTable.
func (t *DataBrowser) CreateDataBrowser(arrowTable arrow.Table, tableName string) (*Data, error) {
	source, err := arrowadapter.NewFromArrowTable(arrowTable)
	if err != nil {
		return nil, fmt.Errorf("failed to create Arrow adapter: %w", err)
	}

	config := t.config
	config.EditOnSecondTap = false
	table := ctwidget.NewArrayTable[arrowadapter.Row](config)

	data := &Data{
		source:    source,
		table:     table,
		tableName: tableName,
	}

	adapter := table.Adapter()
	source.Bind(adapter)
	adapter.OnChanged = func(rows []arrowadapter.Row) {
		source.SetItems(rows)
		t.updateStatus(data)
	}
	adapter.OnSelected = func(row int) {
		t.rowSelected(data, row)
	}

	removeButton := widget.NewButtonWithIcon("Remove rows", theme.ContentRemoveIcon(), nil)
	adapter.BindSubtractControl(ctwidget.Button(removeButton))

	toolbar := container.NewHBox(removeButton, widget.NewSeparator(), widget.NewLabel("Export:"))
	for _, format := range []ExportFormat{FormatParquet, FormatCSV, FormatJSON} {
		toolbar.Add(widget.NewButtonWithIcon(format.String(), theme.DocumentSaveIcon(), func() {
			t.exportData(data, format)
		}))
	}

	data.tab = container.NewTabItemWithIcon(tableName, theme.GridIcon(), container.NewBorder(toolbar, nil, nil, nil, table))
	t.tabDataMap[data.tab] = data

	t.docTabs.Append(data.tab)
	t.docTabs.Select(data.tab)
	t.updateStatus(data)
	return data, nil
}

// updateStatusForTab updates the status bar with information about the given tab.
func (t *DataBrowser) updateStatusForTab(ti *container.TabItem) {
	if data, exists := t.tabDataMap[ti]; exists {
		t.updateStatus(data)
	}
}

func (t *DataBrowser) updateStatus(data *Data) {
	statusText := fmt.Sprintf("Table %s (%d columns x %d rows)",
		data.tableName, data.source.ColumnCount(), data.source.RowCount())

	if sort := data.table.SortDescriptors(); len(sort) > 0 {
		statusText += " | Sorted: " + sort[0].String()
	}
	t.setStatus(statusText)
}

func (t *DataBrowser) rowSelected(data *Data, row int) {
	logger.WithFields(logrus.Fields{"table": data.tableName, "row": row}).Debug("row selected")
	rows := data.source.Items()
	switch selected := len(data.table.SelectedRows()); {
	case row < 0 || row >= len(rows):
		t.updateStatus(data)
	case selected > 1:
		t.setStatus(fmt.Sprintf("Table %s | %d rows selected", data.tableName, selected))
	default:
		t.setStatus(fmt.Sprintf("Table %s | row %d (file row %d)", data.tableName, row+1, rows[row].Ordinal+1))
	}
}

// exportData saves the rows of the tab, in display order, to a file.
func (t *DataBrowser) exportData(data *Data, format ExportFormat) {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.w)
			return
		}
		if writer == nil {
			return
		}
		filePath := writer.URI().Path()
		writer.Close()

		table, err := data.source.Table()
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to prepare data: %w", err), t.w)
			return
		}

		pbi := widget.NewProgressBarInfinite()
		progressDialog := dialog.NewCustomWithoutButtons("Exporting...", pbi, t.w)
		progressDialog.Resize(fyne.NewSize(300, 100))
		progressDialog.Show()

		go func() {
			defer table.Release()
			exportErr := Export(table, format, filePath)

			fyne.Do(func() {
				progressDialog.Hide()
				if exportErr != nil {
					logger.WithFields(logrus.Fields{
						"table":  data.tableName,
						"format": format.String(),
						"path":   filePath,
					}).WithError(exportErr).Error("export failed")
					dialog.ShowError(fmt.Errorf("export failed: %w", exportErr), t.w)
					return
				}
				logger.WithFields(logrus.Fields{
					"table": data.tableName,
					"path":  filePath,
				}).Info("exported")
				dialog.ShowInformation("Export Successful",
					fmt.Sprintf("Data exported successfully to:\n%s", filePath), t.w)
			})
		}()
	}, t.w)

	saveDialog.SetFileName(cleanFilename(data.tableName) + format.Extension())
	saveDialog.Show()
}

func (t *DataBrowser) setStatus(message string) {
	if t.statusCallback != nil {
		t.statusCallback(message)
	}
}
