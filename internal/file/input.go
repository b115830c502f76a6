package file

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"filippo.io/age"
	"gitlab.com/gomidi/midi/v2/smf"
)

// EncryptedSuffix marks input files encrypted with age.
const EncryptedSuffix = ".age"

// decrypt decrypts an age file protected by a passphrase.
func decrypt(ciphertext []byte, passphrase string) ([]byte, error) {
	id, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, fmt.Errorf("could not build scrypt identity: %w", err)
	}
	r, err := age.Decrypt(bytes.NewReader(ciphertext), id)
	if err != nil {
		return nil, fmt.Errorf("could not start decrypting: %w", err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not finish decrypting: %w", err)
	}
	return plaintext, nil
}

// ReadMIDI reads and parses a MIDI file. Files ending in .age are decrypted with passphrase first.
func ReadMIDI(name, passphrase string) (*smf.SMF, error) {
	inBytes, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read %v: %v", ErrInputNotFound, name, err)
	}
	if strings.HasSuffix(name, EncryptedSuffix) {
		if passphrase == "" {
			return nil, fmt.Errorf("%w: %v is encrypted but no passphrase was given", ErrInputNotFound, name)
		}
		inBytes, err = decrypt(inBytes, passphrase)
		if err != nil {
			return nil, fmt.Errorf("%w: could not decrypt %v: %v", ErrInputNotFound, name, err)
		}
	}
	mid, err := smf.ReadFrom(bytes.NewReader(inBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse %v: %v", ErrMalformedMIDI, name, err)
	}
	return mid, nil
}
