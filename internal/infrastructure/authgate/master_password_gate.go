package authgate

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"log"
	"os"
	"strings"

	"recoverydesk/internal/domain/entities"
	"recoverydesk/internal/usecase/interfaces"
)

var ErrNotConfigured = errors.New("MASTER_PASSWORD is not set")

// MasterPasswordGate authorizes the destructive data operations by checking
// the caller-supplied credential against the shop's master password. The
// ledger core only ever sees the granted/denied outcome.
type MasterPasswordGate struct {
	hash [sha256.Size]byte
}

var _ interfaces.IAuthorizationGate = (*MasterPasswordGate)(nil)

// NewMasterPasswordGateFromEnv builds the gate from the MASTER_PASSWORD
// environment variable. Only a digest of the password is retained.
func NewMasterPasswordGateFromEnv() (*MasterPasswordGate, error) {
	password := strings.TrimSpace(os.Getenv("MASTER_PASSWORD"))
	if password == "" {
		return nil, ErrNotConfigured
	}
	return &MasterPasswordGate{hash: sha256.Sum256([]byte(password))}, nil
}

// Authorize grants the action when the credential matches. A mismatch is a
// denial, never an error: denied destructive operations are a normal
// cancellation path.
func (g *MasterPasswordGate) Authorize(_ context.Context, action entities.DataAction, credential string) (bool, error) {
	supplied := sha256.Sum256([]byte(credential))
	granted := subtle.ConstantTimeCompare(supplied[:], g.hash[:]) == 1
	if granted {
		log.Printf("[authgate] granted action=%s", action)
	} else {
		log.Printf("[authgate] denied action=%s", action)
	}
	return granted, nil
}
