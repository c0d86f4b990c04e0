package provider

import (
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"hash"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
)

var hashConstructors = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// Verify interface compliance in compile time.
var _ NamedProvider = (*Cryptographic)(nil)

// Cryptographic type is used to generate identifiers, tokens and hashes.
// Values are derived from seeded random source and are not secure.
type Cryptographic struct {
	BaseProvider
}

// NewCryptographic creates Cryptographic provider.
func NewCryptographic(rnd *random.Random) *Cryptographic {
	return &Cryptographic{BaseProvider: newBaseProvider(rnd)}
}

// Name returns name of cryptographic provider.
func (p *Cryptographic) Name() string {
	return CryptographicName
}

// UUID returns version 4 UUID.
func (p *Cryptographic) UUID() (uuid.UUID, error) {
	id, err := uuid.NewRandomFromReader(p.random)
	if err != nil {
		return uuid.Nil, errors.WithMessage(err, "failed to generate uuid")
	}

	return id, nil
}

// Token returns URL-safe base64 text of entropy random bytes.
func (p *Cryptographic) Token(entropy int) (string, error) {
	b, err := p.bytes(entropy)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// TokenHex returns hex text of entropy random bytes.
func (p *Cryptographic) TokenHex(entropy int) (string, error) {
	b, err := p.bytes(entropy)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// Hash returns hex digest of random UUID by algorithm, "md5" if empty.
func (p *Cryptographic) Hash(algorithm string) (string, error) {
	if algorithm == "" {
		algorithm = "md5"
	}

	newHash, ok := hashConstructors[strings.ToLower(algorithm)]
	if !ok {
		return "", oneOf("algorithm", algorithm, hashAlgorithms...)
	}

	id, err := p.UUID()
	if err != nil {
		return "", err
	}

	h := newHash()
	h.Write([]byte(id.String()))

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Mnemonic returns phrase of twelve distinct words.
func (p *Cryptographic) Mnemonic() (string, error) {
	words, err := random.Sample(p.random, commonWords, 12)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return strings.Join(words, " "), nil
}

func (p *Cryptographic) bytes(entropy int) ([]byte, error) {
	if entropy <= 0 || entropy > MaxQuantity {
		return nil, paramErrorf("entropy", "must be in range [1, %d], got %d", MaxQuantity, entropy)
	}

	b := make([]byte, entropy)
	if _, err := p.random.Read(b); err != nil {
		return nil, errors.WithMessage(err, "failed to read random bytes")
	}

	return b, nil
}
