package interfaces

import (
	"context"

	"recoverydesk/internal/domain/entities"
)

//go:generate mockgen -source=authorization_gate_interface.go -destination=mocks/mock_authorization_gate.go -package=mock_interfaces

// IAuthorizationGate guards the destructive whole-store operations
// (export/import/clear). The core never stores or verifies credentials
// itself; it only asks the gate and refuses to run when not granted.
//
// A denied authorization is a normal cancellation, not an error: the gate
// returns (false, nil) and the caller reports the refusal without touching
// any data.
type IAuthorizationGate interface {
	Authorize(ctx context.Context, action entities.DataAction, credential string) (bool, error)
}
