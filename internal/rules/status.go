package rules

import "bizsetu/internal/models"

// ValidStatus reports whether s is a known draft status.
func ValidStatus(s string) bool {
	switch s {
	case models.StatusDraft, models.StatusSubmitted, models.StatusPending,
		models.StatusVerified, models.StatusRejected:
		return true
	}
	return false
}

// NextStatus decides the status the merged document will carry. Once a
// draft leaves "draft", ordinary field edits cannot move its moderation
// state; the only owner-triggered transition out of a locked state is
// the explicit rejected→draft reset. Moderators act through a separate
// system and never pass through here.
func NextStatus(existing, requested string) string {
	if !ValidStatus(existing) {
		if requested == models.StatusSubmitted {
			return models.StatusSubmitted
		}
		return models.StatusDraft
	}
	if existing == models.StatusRejected && requested == models.StatusDraft {
		return models.StatusDraft
	}
	if existing != models.StatusDraft {
		return existing
	}
	if requested == models.StatusSubmitted {
		return models.StatusSubmitted
	}
	return models.StatusDraft
}
