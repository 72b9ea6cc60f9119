package listview

import (
	"sync"
	"time"

	"github.com/example/table-booker/internal/dining"
)

// Pipeline combines a source collection with a debounced query and a sort key
// and derives the current view on demand. Raw query input goes through the
// debouncer; only the settled value ever reaches the filter stage.
type Pipeline struct {
	mu      sync.Mutex
	source  []dining.RestaurantSummary
	query   string // effective query, post-debounce
	sortKey SortKey
	deb     *Debouncer
	notify  func()
}

// NewPipeline builds a pipeline with an empty source and name ordering.
// notify, if non-nil, fires whenever the derived view may have changed.
func NewPipeline(window time.Duration, notify func()) *Pipeline {
	p := &Pipeline{sortKey: SortByName, notify: notify}
	p.deb = NewDebouncer(window, p.applyQuery)
	return p
}

// SetSource replaces the collection wholesale.
func (p *Pipeline) SetSource(source []dining.RestaurantSummary) {
	p.mu.Lock()
	p.source = source
	p.mu.Unlock()
	p.emit()
}

// QueryInput feeds one raw keystroke's worth of query text. The effective
// query updates only after the quiet window elapses with no further input.
func (p *Pipeline) QueryInput(raw string) {
	p.deb.Input(raw)
}

func (p *Pipeline) applyQuery(q string) {
	p.mu.Lock()
	p.query = q
	p.mu.Unlock()
	p.emit()
}

func (p *Pipeline) SetSortKey(key SortKey) {
	p.mu.Lock()
	p.sortKey = key
	p.mu.Unlock()
	p.emit()
}

// View derives the filtered, sorted sequence from the current inputs.
func (p *Pipeline) View() []dining.RestaurantSummary {
	p.mu.Lock()
	source, query, key := p.source, p.query, p.sortKey
	p.mu.Unlock()
	return DeriveView(source, query, key)
}

// Query returns the effective (settled) query.
func (p *Pipeline) Query() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

// Stop cancels any pending debounce delivery.
func (p *Pipeline) Stop() {
	p.deb.Stop()
}

func (p *Pipeline) emit() {
	if p.notify != nil {
		p.notify()
	}
}
