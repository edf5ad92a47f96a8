package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExtinction     BookmarkType = "extinction"
	BookmarkStillLife      BookmarkType = "still_life"
	BookmarkPopulationBoom BookmarkType = "population_boom"
)

// Bookmark marks a notable window in a run.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Generation  uint64       `csv:"generation"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"generation", b.Generation,
		"description", b.Description,
	)
}

// BookmarkDetector watches successive windows for notable changes.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	boomMultiplier float64

	// State tracking
	extinct bool // last window ended with an empty grid
	still   bool // last window had no births or deaths
}

// NewBookmarkDetector creates a detector with the given history size.
// A window whose final population exceeds boomMultiplier times the rolling
// mean is reported as a boom.
func NewBookmarkDetector(historySize int, boomMultiplier float64) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	if boomMultiplier <= 1 {
		boomMultiplier = 2
	}
	return &BookmarkDetector{
		history:        make([]WindowStats, historySize),
		historySize:    historySize,
		boomMultiplier: boomMultiplier,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkExtinction(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkStillLife(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkBoom(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// checkExtinction fires once when the grid empties out after having life.
func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	if stats.Population > 0 {
		bd.extinct = false
		return nil
	}
	if bd.extinct || stats.Deaths == 0 {
		return nil
	}
	bd.extinct = true
	return &Bookmark{
		Type:        BookmarkExtinction,
		Generation:  stats.WindowEnd,
		Description: fmt.Sprintf("Population died out after %d deaths in the last window", stats.Deaths),
	}
}

// checkStillLife fires once when a live grid stops changing for a full window.
func (bd *BookmarkDetector) checkStillLife(stats WindowStats) *Bookmark {
	if stats.Population == 0 || stats.Births != 0 || stats.Deaths != 0 {
		bd.still = false
		return nil
	}
	if bd.still {
		return nil
	}
	bd.still = true
	return &Bookmark{
		Type:        BookmarkStillLife,
		Generation:  stats.WindowEnd,
		Description: fmt.Sprintf("Grid settled with %d live cells", stats.Population),
	}
}

// checkBoom compares the window's final population to the rolling mean.
func (bd *BookmarkDetector) checkBoom(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += float64(h.Population)
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.Population) > avg*bd.boomMultiplier {
		return &Bookmark{
			Type:        BookmarkPopulationBoom,
			Generation:  stats.WindowEnd,
			Description: fmt.Sprintf("Population %d is %.1fx average (%.1f)", stats.Population, float64(stats.Population)/avg, avg),
		}
	}
	return nil
}
