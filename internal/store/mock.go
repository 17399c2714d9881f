package store

// MockMarkerStore returns fixed markers or a fixed error.
type MockMarkerStore struct {
	Markers          []string
	LoadMarkersError error
}

// LoadMarkers returns the mock markers.
func (m *MockMarkerStore) LoadMarkers() ([]string, error) {
	if m.LoadMarkersError != nil {
		return nil, m.LoadMarkersError
	}
	return m.Markers, nil
}
