package domain

import (
	"strconv"
	"strings"
)

// InteractionKind tells the router what the next free-text message answers
type InteractionKind string

const (
	InteractionOwnTranslation InteractionKind = "ADD_OWN_TRANSLATION"
	InteractionBanUserID      InteractionKind = "AWAIT_BAN_USER_ID"
)

// PendingInteraction marks that a chat's next free-text message is a reply.
// A chat has at most one.
type PendingInteraction struct {
	ChatID  int64
	Kind    InteractionKind
	Payload int64
}

// Encode renders the interaction as "KIND" or "KIND:PAYLOAD"
func (p PendingInteraction) Encode() string {
	if p.Payload == 0 {
		return string(p.Kind)
	}
	return string(p.Kind) + ":" + strconv.FormatInt(p.Payload, 10)
}

// DecodePendingInteraction parses the Encode form
func DecodePendingInteraction(chatID int64, raw string) (*PendingInteraction, error) {
	kind, payload, hasPayload := strings.Cut(raw, ":")
	p := &PendingInteraction{ChatID: chatID, Kind: InteractionKind(kind)}
	if hasPayload {
		id, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return nil, err
		}
		p.Payload = id
	}
	return p, nil
}
