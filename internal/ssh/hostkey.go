package ssh

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"os"

	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
)

// LoadOrCreateHostKey loads a PEM private key from path, or generates an
// ed25519 key and stores it there when the file is missing or unreadable.
// An empty path yields a key that lives only as long as the process.
// Failing to store the new key is logged, not returned.
func LoadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if path == "" {
		_, key, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generate host key: %w", err)
		}
		log.Info("using an ephemeral host key")
		return xssh.NewSignerFromKey(key)
	}
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("host key loaded", zap.String("path", path))
			return signer, nil
		}
		log.Warn("host key unreadable, generating a new one", zap.String("path", path))
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("host key signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "cavecrawler host key")
	if err != nil {
		log.Warn("host key not saved", zap.Error(err))
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		log.Warn("host key not saved", zap.String("path", path), zap.Error(err))
		return signer, nil
	}
	log.Info("host key generated", zap.String("path", path))
	return signer, nil
}
