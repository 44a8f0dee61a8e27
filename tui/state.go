package tui

import "credcheck/types"

// Status is the request lifecycle state
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// RequestState is the single source of truth the view renders from.
// Result is set only in StatusSuccess and Message only in StatusFailed.
type RequestState struct {
	Status  Status
	Result  *types.DisplayResult
	Message string
}

// Idle is the initial state
func Idle() RequestState {
	return RequestState{Status: StatusIdle}
}

// Loading marks a request in flight with any previous outcome cleared
func Loading() RequestState {
	return RequestState{Status: StatusLoading}
}

// Succeeded holds a normalized result
func Succeeded(result types.DisplayResult) RequestState {
	return RequestState{Status: StatusSuccess, Result: &result}
}

// Failed holds a user-visible error message
func Failed(message string) RequestState {
	return RequestState{Status: StatusFailed, Message: message}
}

// IsLoading reports whether submission is currently disabled
func (s RequestState) IsLoading() bool {
	return s.Status == StatusLoading
}
