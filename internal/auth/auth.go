package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/text/unicode/norm"
)

const tokenTTL = 30 * 24 * time.Hour

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidToken     = errors.New("invalid token")
)

var validate = validator.New()

// Registration is the sign-up form.
type Registration struct {
	Name            string `json:"name" validate:"required,min=2"`
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirm_password"`
}

// Credentials is the login form.
type Credentials struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// NormalizeName trims a user name and puts it in NFC so that visually identical
// names compare equal.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Validate normalizes the name and checks the form rules.
func (r *Registration) Validate() error {
	r.Name = NormalizeName(r.Name)
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := validate.Struct(r); err != nil {
		return describe(err)
	}
	return nil
}

func (c *Credentials) Validate() error {
	c.Name = NormalizeName(c.Name)
	if err := validate.Struct(c); err != nil {
		return describe(err)
	}
	return nil
}

// describe turns validator output into a short message naming the first failed field.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "min":
		return fmt.Errorf("%s must be at least %s characters", field, fe.Param())
	}
	return fmt.Errorf("%s is invalid", field)
}

// Issuer signs and verifies session tokens.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

// Issue returns a signed token naming user.
func (i *Issuer) Issue(user string) (string, error) {
	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   user,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse validates token and returns the user it names.
func (i *Issuer) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// ExtractToken reads a bearer token from the Authorization header, falling back to
// the token query parameter used by websocket clients.
func ExtractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return r.URL.Query().Get("token")
}
