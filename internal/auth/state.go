package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Errors returned by StateSigner.Verify. Callers map all of them to an
// unauthorized callback.
var (
	// ErrStateMalformed means the state is not <payload>.<signature> or the
	// payload does not decode.
	ErrStateMalformed = errors.New("oauth state malformed")
	// ErrStateSignature means the signature does not match the payload.
	ErrStateSignature = errors.New("oauth state signature mismatch")
	// ErrStateExpired means the state is older than the configured TTL.
	ErrStateExpired = errors.New("oauth state expired")
	// ErrStateReplayed means the state's nonce was already consumed.
	ErrStateReplayed = errors.New("oauth state already used")
)

type statePayload struct {
	UserID    uuid.UUID `json:"userId"`
	Timestamp int64     `json:"timestamp"`
	Nonce     string    `json:"nonce"`
}

// StateSigner produces and verifies the OAuth "state" parameter used to bind
// a provider callback to the user who started the flow.
//
// A state is base64url(payload) + "." + base64url(HMAC-SHA256(secret, payload)).
// Each nonce is accepted once within the TTL.
type StateSigner struct {
	secret []byte
	ttl    time.Duration
	used   *cache.Cache
	now    func() time.Time
}

// NewStateSigner creates a signer. ttl bounds how long a state stays valid.
func NewStateSigner(secret string, ttl time.Duration) *StateSigner {
	return &StateSigner{
		secret: []byte(secret),
		ttl:    ttl,
		used:   cache.New(ttl, 2*ttl),
		now:    time.Now,
	}
}

// Sign returns a fresh state for userID.
func (s *StateSigner) Sign(userID uuid.UUID) (string, error) {
	payload, err := json.Marshal(statePayload{
		UserID:    userID,
		Timestamp: s.now().Unix(),
		Nonce:     uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal state: %w", err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(payload) + "." + enc.EncodeToString(s.mac(payload)), nil
}

// Verify checks signature, age and single use, and returns the user ID the
// state was issued for.
func (s *StateSigner) Verify(state string) (uuid.UUID, error) {
	encPayload, encSig, ok := strings.Cut(state, ".")
	if !ok {
		return uuid.Nil, ErrStateMalformed
	}
	enc := base64.RawURLEncoding
	payload, err := enc.DecodeString(encPayload)
	if err != nil {
		return uuid.Nil, ErrStateMalformed
	}
	sig, err := enc.DecodeString(encSig)
	if err != nil {
		return uuid.Nil, ErrStateMalformed
	}
	if !hmac.Equal(sig, s.mac(payload)) {
		return uuid.Nil, ErrStateSignature
	}

	var p statePayload
	if err := json.Unmarshal(payload, &p); err != nil || p.Nonce == "" || p.UserID == uuid.Nil {
		return uuid.Nil, ErrStateMalformed
	}

	issued := time.Unix(p.Timestamp, 0)
	if age := s.now().Sub(issued); age > s.ttl || age < -time.Minute {
		return uuid.Nil, ErrStateExpired
	}

	// Add fails when the key already exists, which makes the check-and-mark atomic.
	if err := s.used.Add(p.Nonce, struct{}{}, s.ttl); err != nil {
		return uuid.Nil, ErrStateReplayed
	}

	return p.UserID, nil
}

func (s *StateSigner) mac(payload []byte) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write(payload)
	return h.Sum(nil)
}
