package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	// ScopeMazeWrite grants regeneration and deletion of mazes.
	ScopeMazeWrite = "maze:write"

	minSecretStrengthScore = 3
	defaultTokenTTL        = 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid client id or secret")
	ErrWeakClientSecret   = errors.New("weak client secret")
)

// AuthOptions tunes the authenticator.
type AuthOptions struct {
	TokenTTL   time.Duration
	BcryptCost int
}

// Auth exchanges client credentials for tokens.
type Auth struct {
	clientID   string
	secretHash []byte
	tokenizer  i.Tokenizer
	opts       *AuthOptions
}

// NewAuth creates an authenticator for a single API client. The secret is
// rejected when it is easy to guess; only its bcrypt hash is kept.
func NewAuth(clientID, clientSecret string, tokenizer i.Tokenizer, opts *AuthOptions) (i.Authenticator, error) {
	if opts == nil {
		opts = &AuthOptions{}
	}

	if opts.TokenTTL <= 0 {
		opts.TokenTTL = defaultTokenTTL
	}

	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}

	if zxcvbn.PasswordStrength(clientSecret, []string{clientID}).Score < minSecretStrengthScore {
		return nil, ErrWeakClientSecret
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(clientSecret), opts.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &Auth{
		clientID:   clientID,
		secretHash: hash,
		tokenizer:  tokenizer,
		opts:       opts,
	}, nil
}

// IssueToken returns a token carrying ScopeMazeWrite.
func (a *Auth) IssueToken(clientID, clientSecret string) (string, error) {
	idMatch := subtle.ConstantTimeCompare([]byte(clientID), []byte(a.clientID)) == 1
	secretErr := bcrypt.CompareHashAndPassword(a.secretHash, []byte(clientSecret))
	if !idMatch || secretErr != nil {
		return "", ErrInvalidCredentials
	}

	return a.tokenizer.Generate(map[string]interface{}{
		"sub":   clientID,
		"scope": ScopeMazeWrite,
	}, a.opts.TokenTTL)
}
