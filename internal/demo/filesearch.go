package demo

import (
	"fmt"

	"github.com/agiangrant/imlayout"
)

// DefaultMaxResults caps how many result buttons FileSearch emits.
const DefaultMaxResults = 10000

// FileSearch is a quick-open panel: a search field over a file list with
// one button per matching file.
type FileSearch struct {
	layout *imlayout.Layout
	files  []FileEntry
	open   func(FileEntry)

	// MaxResults caps the number of result buttons.
	MaxResults int

	query     string
	queryHash uint64
	filtered  bool
	results   []FileEntry
}

// NewFileSearch creates the panel. open runs when a result is clicked or the
// search is submitted with at least one match.
func NewFileSearch(l *imlayout.Layout, files []FileEntry, open func(FileEntry)) *FileSearch {
	return &FileSearch{
		layout:     l,
		files:      files,
		open:       open,
		MaxResults: DefaultMaxResults,
	}
}

// Query returns the current search text.
func (a *FileSearch) Query() string { return a.query }

// SetQuery replaces the search text from outside the UI.
func (a *FileSearch) SetQuery(q string) {
	a.query = q
	a.layout.MarkEdit()
}

// Results returns the files matching the query as of the last Draw.
func (a *FileSearch) Results() []FileEntry { return a.results }

// Draw emits the panel. Bind it with Layout.BindRedrawFunc.
func (a *FileSearch) Draw() {
	// Refilter only when the query changed.
	if h := imlayout.StringHash(a.query, 0); !a.filtered || h != a.queryHash {
		a.results = Filter(a.files, a.query, a.results)
		a.queryHash = h
		a.filtered = true
	}

	l := a.layout
	l.Label("title", "Quick Open", imlayout.Fill)
	l.EditText("search", fmt.Sprintf("Search %d files...", len(a.files)), a.query, imlayout.Fill,
		func(s string) { a.query = s },
		func() {
			if len(a.results) > 0 {
				a.launch(a.results[0])
			}
		})

	results := a.results
	if a.MaxResults > 0 && len(results) > a.MaxResults {
		results = results[:a.MaxResults]
	}
	for _, f := range results {
		l.Button("result", f.Name, func() { a.launch(f) }, imlayout.Fill)
	}
}

func (a *FileSearch) launch(f FileEntry) {
	if a.open != nil {
		a.open(f)
	}
}
