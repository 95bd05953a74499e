package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long a portal token claims to be valid.
const TokenTTL = 24 * time.Hour

// PortalClaims is the payload of a member portal token. Issued and Exp are
// Unix milliseconds.
type PortalClaims struct {
	Email  string `json:"email"`
	Tier   string `json:"tier"`
	Issued int64  `json:"issued"`
	Exp    int64  `json:"exp"`
}

// NewPortalClaims stamps a payload issued at now.
func NewPortalClaims(email, tier string, now time.Time) PortalClaims {
	issued := now.UnixMilli()
	return PortalClaims{
		Email:  email,
		Tier:   tier,
		Issued: issued,
		Exp:    issued + TokenTTL.Milliseconds(),
	}
}

// TokenCodec turns portal claims into an opaque string and back.
type TokenCodec interface {
	Encode(c PortalClaims) (string, error)
	Decode(token string) (*PortalClaims, error)
}

// Base64Codec is standard base64 over the JSON payload. It is an encoding,
// not a credential: anyone holding a token can read or forge one.
type Base64Codec struct{}

func (Base64Codec) Encode(c PortalClaims) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal portal claims: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func (Base64Codec) Decode(token string) (*PortalClaims, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("decode portal token: %w", err)
	}
	var c PortalClaims
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal portal token: %w", err)
	}
	return &c, nil
}

// JWTCodec signs the same payload as an HS256 JWT. The exp claim keeps the
// millisecond unit of the plain encoding.
type JWTCodec struct {
	secret []byte
	now    func() time.Time
}

func NewJWTCodec(secret string, now func() time.Time) *JWTCodec {
	if now == nil {
		now = time.Now
	}
	return &JWTCodec{secret: []byte(secret), now: now}
}

func (j *JWTCodec) Encode(c PortalClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{c})
	return token.SignedString(j.secret)
}

func (j *JWTCodec) Decode(tokenStr string) (*PortalClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return &claims.PortalClaims, nil
}

// jwtClaims adapts PortalClaims to jwt.Claims, reading times from the
// millisecond fields.
type jwtClaims struct {
	PortalClaims
}

func (c jwtClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.Exp == 0 {
		return nil, errors.New("missing exp")
	}
	return jwt.NewNumericDate(time.UnixMilli(c.Exp)), nil
}

func (c jwtClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.UnixMilli(c.Issued)), nil
}

func (c jwtClaims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c jwtClaims) GetIssuer() (string, error)              { return "", nil }
func (c jwtClaims) GetSubject() (string, error)             { return c.Email, nil }
func (c jwtClaims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }
