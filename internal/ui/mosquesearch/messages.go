package mosquesearch

import "github.com/llehouerou/mawaqit-display/internal/mawaqit"

// ResultMsg is sent when a search completes.
type ResultMsg struct {
	Query   string
	Mosques []mawaqit.Mosque
	Err     error
}

// SelectedMsg is sent when a mosque is picked.
type SelectedMsg struct {
	Selection mawaqit.Selection
}

// CloseMsg is sent when the popup should be closed.
type CloseMsg struct{}
