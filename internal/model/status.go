package model

// LoadState represents the state of a list screen's collection
type LoadState string

const (
	// LoadStateIdle means the collection has not been requested yet
	LoadStateIdle LoadState = "Idle"

	// LoadStateLoading means the list fetch is in flight
	LoadStateLoading LoadState = "Loading"

	// LoadStateReady means the collection was fetched and can be rendered
	LoadStateReady LoadState = "Ready"

	// LoadStateFailed means the list fetch failed and the list is not rendered
	LoadStateFailed LoadState = "Failed"
)

// String returns the string representation of LoadState
func (ls LoadState) String() string {
	return string(ls)
}

// IsActive returns true while a fetch is outstanding
func (ls LoadState) IsActive() bool {
	return ls == LoadStateLoading
}

// IsFinished returns true once the fetch resolved (ready or failed)
func (ls LoadState) IsFinished() bool {
	return ls == LoadStateReady || ls == LoadStateFailed
}
