package interfaces

import "fvg-dashboard/src/models"

// -----------------------------------------------------------------------------
// IViewPublisher receives a fresh snapshot after every view-state transition.
// The server pushes it to connected browsers; tests capture it directly.
// -----------------------------------------------------------------------------

type IViewPublisher interface {
	PublishSnapshot(snapshot *models.MViewSnapshot)
}
