package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
)

// Identity is the authenticated caller as issued by the identity provider.
type Identity struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// CreateSessionToken は署名付きセッショントークンを生成する。
// ペイロードは Identity の JSON、署名は HMAC-SHA256。
func CreateSessionToken(id Identity, secret []byte) (string, error) {
	payload, err := json.Marshal(id)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString(payload) + "." + sig, nil
}

// VerifySessionToken はトークンを検証し Identity を返す
func VerifySessionToken(token string, secret []byte) (Identity, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return Identity{}, errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return Identity{}, err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return Identity{}, errors.New("invalid signature")
	}

	var id Identity
	if err := json.Unmarshal(payload, &id); err != nil {
		return Identity{}, err
	}
	if id.UID == "" {
		return Identity{}, errors.New("token missing uid")
	}
	return id, nil
}

const sessionCookieName = "lumeo_session"
const minSecretLen = 32

// SessionCookieName はセッションクッキー名
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes は文字列からセッション署名用のバイト列を生成する（最低32バイト）
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
