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

package main

import (
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/magpierre/fyne-closuretable/windows"
)

var (
	app = kingpin.New("closuretable-demo",
		"Closure backed tables: an editable contact book and a CSV/Parquet browser.")

	files = app.Flag("file", "Data file to open on start, may be repeated.").
		Short('f').ExistingFiles()

	multi = app.Flag("multi", "Allow multiple selected rows.").
		Default("true").Bool()

	timeout = app.Flag("timeout", "Seconds allowed for reading a Parquet file.").
		Default("60").Int()

	verbose = app.Flag("verbose", "Enable debug logging.").Short('v').
		Default("false").Bool()
)

func main() {
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	windows.Run(windows.Options{
		Files:             *files,
		MultipleSelection: *multi,
		TimeoutSeconds:    *timeout,
		Verbose:           *verbose,
	})
}
