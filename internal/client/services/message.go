package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/deadswitch/internal/client/client"
	"github.com/dmitrijs2005/deadswitch/internal/cryptox"
	"github.com/dmitrijs2005/deadswitch/internal/netx"
)

var (
	ErrNoMessage       = errors.New("no message stored")
	ErrMessageTampered = errors.New("message does not match its recorded hash")
)

// MessageService seals a message locally, stores the ciphertext in object
// storage and records its hash and locator on the switch.
type MessageService interface {
	Store(ctx context.Context, plaintext, passphrase []byte) (hash, locator string, err error)
	Fetch(ctx context.Context, owner string, passphrase []byte) ([]byte, error)
}

type messageService struct {
	client client.Client
}

func NewMessageService(c client.Client) MessageService {
	return &messageService{client: c}
}

func (m *messageService) Store(ctx context.Context, plaintext, passphrase []byte) (string, string, error) {
	sealed, err := cryptox.SealMessage(plaintext, passphrase)
	if err != nil {
		return "", "", err
	}

	target, err := m.client.PresignMessageUpload(ctx)
	if err != nil {
		return "", "", fmt.Errorf("presign error: %w", err)
	}
	if err := netx.Put(ctx, target.GetUrl(), sealed); err != nil {
		return "", "", fmt.Errorf("upload error: %w", err)
	}

	hash := cryptox.MessageHash(sealed)
	if err := m.client.SetMessage(ctx, hash, target.Locator); err != nil {
		return "", "", err
	}
	return hash, target.Locator, nil
}

// Fetch downloads owner's sealed message, checks it against the recorded hash
// and decrypts it with passphrase.
func (m *messageService) Fetch(ctx context.Context, owner string, passphrase []byte) ([]byte, error) {
	msg, err := m.client.GetMessage(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !msg.Found {
		return nil, ErrNoMessage
	}

	src, err := m.client.PresignMessageDownload(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("presign error: %w", err)
	}
	if !src.Found {
		return nil, ErrNoMessage
	}

	sealed, err := netx.Get(ctx, src.GetUrl())
	if err != nil {
		return nil, fmt.Errorf("download error: %w", err)
	}
	if cryptox.MessageHash(sealed) != msg.Hash {
		return nil, ErrMessageTampered
	}
	return cryptox.OpenMessage(sealed, passphrase)
}
